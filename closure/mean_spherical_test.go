package closure_test

import (
	"testing"

	"github.com/katalvlaran/prism/closure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMeanSpherical_Formula verifies c = −u elementwise, independent of γ.
func TestMeanSpherical_Formula(t *testing.T) {
	cl := closure.NewMeanSphericalApproximation(false)
	cl.SetPotential([]float64{1.5, 0.0, -0.5})

	c, err := cl.Calculate([]float64{1, 2, 3}, []float64{9.0, -3.0, 0.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.5, 0.0, 0.5}, c)
}

// TestMeanSpherical_HardCore verifies the MSA pairing with a hard-sphere
// style potential: core value inside, −u outside.
func TestMeanSpherical_HardCore(t *testing.T) {
	cl := closure.NewMeanSphericalApproximation(true)
	cl.SetPotential([]float64{1e6, 1e6, -0.25, 0.0})
	cl.SetSigma(1.0)

	c, err := cl.Calculate([]float64{0.5, 1.0, 1.5, 2.0}, []float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)
	assert.Equal(t, -1.1, c[0])
	assert.Equal(t, -1.2, c[1], "boundary r == σ is in the core branch")
	assert.Equal(t, 0.25, c[2])
	assert.Equal(t, 0.0, c[3])
}
