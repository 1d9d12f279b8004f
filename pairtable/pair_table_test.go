package pairtable_test

import (
	"testing"

	"github.com/katalvlaran/prism/pairtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPairTable_Validation verifies construction faults.
func TestNewPairTable_Validation(t *testing.T) {
	_, err := pairtable.NewPairTable[int]()
	assert.ErrorIs(t, err, pairtable.ErrNoSites)

	_, err = pairtable.NewPairTable[int]("A", "B", "A")
	assert.ErrorIs(t, err, pairtable.ErrDuplicateSite)
}

// TestPairTable_SymmetricAccess verifies (A,B) and (B,A) resolve to the same
// value.
func TestPairTable_SymmetricAccess(t *testing.T) {
	pt, err := pairtable.NewPairTable[float64]("A", "B")
	require.NoError(t, err)

	require.NoError(t, pt.Set("A", "B", 1.5))

	ab, err := pt.Get("A", "B")
	require.NoError(t, err)
	ba, err := pt.Get("B", "A")
	require.NoError(t, err)
	assert.Equal(t, 1.5, ab)
	assert.Equal(t, 1.5, ba)
}

// TestPairTable_Faults verifies the access sentinels.
func TestPairTable_Faults(t *testing.T) {
	pt, err := pairtable.NewPairTable[string]("A", "B")
	require.NoError(t, err)

	assert.ErrorIs(t, pt.Set("A", "C", "x"), pairtable.ErrUnknownSite)

	_, err = pt.Get("C", "A")
	assert.ErrorIs(t, err, pairtable.ErrUnknownSite)

	_, err = pt.Get("A", "A")
	assert.ErrorIs(t, err, pairtable.ErrPairUnset)
}

// TestPairTable_Complete walks the canonical assembly flow: incomplete until
// every distinct pair (including the diagonal) is assigned.
func TestPairTable_Complete(t *testing.T) {
	pt, err := pairtable.NewPairTable[int]("A", "B")
	require.NoError(t, err)

	require.NoError(t, pt.Set("A", "B", 1))
	assert.ErrorIs(t, pt.Complete(), pairtable.ErrPairUnset, "diagonal pairs still unset")

	require.NoError(t, pt.Set("A", "A", 2))
	require.NoError(t, pt.Set("B", "B", 3))
	assert.NoError(t, pt.Complete())
}
