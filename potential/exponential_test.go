package potential_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/prism/potential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExponential_Branches verifies the hard wall at and inside contact and
// the attractive tail strictly outside it.
func TestExponential_Branches(t *testing.T) {
	p, err := potential.NewExponential(1.0, 1.0, 0.5)
	require.NoError(t, err)

	u := p.Evaluate([]float64{0.5, 1.0, 1.5, 3.0})
	assert.Equal(t, potential.DefaultHighCoreValue, u[0], "inside the core")
	assert.Equal(t, potential.DefaultHighCoreValue, u[1], "contact belongs to the core branch")
	assert.InDelta(t, -math.Exp(-1.0), u[2], 1e-12, "tail: −ε·exp(−(r−σ)/α)")
	assert.InDelta(t, -math.Exp(-4.0), u[3], 1e-12)
}

// TestExponential_ContactDepth verifies the tail approaches −ε at contact.
func TestExponential_ContactDepth(t *testing.T) {
	p, err := potential.NewExponential(2.5, 1.0, 1.0)
	require.NoError(t, err)

	u := p.Evaluate([]float64{1.0 + 1e-9})
	assert.InDelta(t, -2.5, u[0], 1e-6, "depth −ε just outside contact")
}

// TestExponential_InvalidParameters verifies every construction fault.
func TestExponential_InvalidParameters(t *testing.T) {
	_, err := potential.NewExponential(0, 1.0, 0.5)
	assert.ErrorIs(t, err, potential.ErrNonPositiveEpsilon)

	_, err = potential.NewExponential(1.0, -1.0, 0.5)
	assert.ErrorIs(t, err, potential.ErrNonPositiveSigma)

	_, err = potential.NewExponential(1.0, 1.0, 0)
	assert.ErrorIs(t, err, potential.ErrBadRange)
}
