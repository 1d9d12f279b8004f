package closure_test

import (
	"testing"

	"github.com/katalvlaran/prism/closure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allKinds enumerates every closure kind so the shared binding/fault/hard-core
// contract is verified uniformly.
func allKinds(applyHardCore bool) map[string]closure.AtomicClosure {
	return map[string]closure.AtomicClosure{
		"PercusYevick":               closure.NewPercusYevick(applyHardCore),
		"HyperNettedChain":           closure.NewHyperNettedChain(applyHardCore),
		"MartynovSarkisov":           closure.NewMartynovSarkisov(applyHardCore),
		"MeanSphericalApproximation": closure.NewMeanSphericalApproximation(applyHardCore),
	}
}

// TestClosure_PotentialNotSet verifies the unbound-potential fault fires for
// every kind, before any arithmetic.
func TestClosure_PotentialNotSet(t *testing.T) {
	for name, cl := range allKinds(false) {
		_, err := cl.Calculate([]float64{1, 2}, []float64{0, 0})
		assert.ErrorIs(t, err, closure.ErrPotentialNotSet, "%s must fault unbound", name)
		assert.Nil(t, cl.Value(), "%s must not cache on fault", name)
	}
}

// TestClosure_DomainMismatch verifies the length-mismatch fault for every
// kind, for both gamma-vs-potential and r-vs-gamma mismatches.
func TestClosure_DomainMismatch(t *testing.T) {
	for name, cl := range allKinds(false) {
		cl.SetPotential([]float64{0, 0, 0})

		_, err := cl.Calculate([]float64{1, 2}, []float64{0, 0})
		assert.ErrorIs(t, err, closure.ErrDomainMismatch, "%s: short gamma", name)

		_, err = cl.Calculate([]float64{1, 2}, []float64{0, 0, 0})
		assert.ErrorIs(t, err, closure.ErrDomainMismatch, "%s: short r", name)

		assert.Nil(t, cl.Value(), "%s must not cache on fault", name)
	}
}

// TestClosure_SigmaNotSet verifies the hard-core σ fault, and its check
// order after the potential check.
func TestClosure_SigmaNotSet(t *testing.T) {
	for name, cl := range allKinds(true) {
		_, err := cl.Calculate([]float64{1}, []float64{0})
		assert.ErrorIs(t, err, closure.ErrPotentialNotSet, "%s: potential checked first", name)

		cl.SetPotential([]float64{0})
		_, err = cl.Calculate([]float64{1}, []float64{0})
		assert.ErrorIs(t, err, closure.ErrSigmaNotSet, "%s: σ fault once potential bound", name)
	}
}

// TestClosure_HardCorePartition verifies, for every kind, that the grid is
// partitioned with no overlap and no gap: r ≤ σ takes −1−γ exactly, r > σ
// takes the kind's formula (checked indirectly as "not the core value").
func TestClosure_HardCorePartition(t *testing.T) {
	r := []float64{0.5, 0.99, 1.0, 1.01, 2.0}
	gamma := []float64{0.3, 0.2, 0.1, 0.2, 0.3}
	u := []float64{1e6, 1e6, 1e6, 0.5, 0.1}

	for name, cl := range allKinds(true) {
		cl.SetPotential(u)
		cl.SetSigma(1.0)

		c, err := cl.Calculate(r, gamma)
		require.NoError(t, err, name)
		require.Len(t, c, len(r), name)

		for i, ri := range r {
			if ri <= 1.0 {
				assert.Equal(t, -1-gamma[i], c[i], "%s: core value at r=%v", name, ri)
			} else {
				assert.NotEqual(t, -1-gamma[i], c[i], "%s: formula branch at r=%v", name, ri)
			}
		}
	}
}

// TestClosure_ValueCaching verifies Calculate caches exactly the returned
// array and refreshes it on the next call.
func TestClosure_ValueCaching(t *testing.T) {
	cl := closure.NewPercusYevick(false)
	cl.SetPotential([]float64{0.5, 0.5})

	c1, err := cl.Calculate([]float64{1, 2}, []float64{0.1, 0.2})
	require.NoError(t, err)
	assert.Same(t, &c1[0], &cl.Value()[0], "Value must expose the cached result")

	c2, err := cl.Calculate([]float64{1, 2}, []float64{0.3, 0.4})
	require.NoError(t, err)
	assert.Same(t, &c2[0], &cl.Value()[0], "Value must track the latest result")
	assert.NotEqual(t, c1, c2)
}

// TestClosure_Idempotent verifies repeated calls with identical inputs yield
// identical results for every kind.
func TestClosure_Idempotent(t *testing.T) {
	r := []float64{0.5, 1.0, 1.5}
	gamma := []float64{0.1, 0.0, -0.1}
	u := []float64{2.0, 1.0, 0.0}

	for name, cl := range allKinds(true) {
		cl.SetPotential(u)
		cl.SetSigma(0.75)

		c1, err := cl.Calculate(r, gamma)
		require.NoError(t, err, name)
		c2, err := cl.Calculate(r, gamma)
		require.NoError(t, err, name)
		assert.Equal(t, c1, c2, "%s must be idempotent", name)
	}
}
