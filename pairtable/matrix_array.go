package pairtable

import "fmt"

// MatrixArray stores the n×n pair functions of an n-site-type system, each of
// grid length N, in a single flat row-major buffer (pair (i,j) occupies the
// block at (i·n+j)·N). Symmetry is an invariant: Set writes both (i,j) and
// (j,i), so readers may use either orientation.
type MatrixArray struct {
	n      int       // number of site types
	length int       // grid length N per pair function
	data   []float64 // flat backing storage, length n*n*N
	set    []bool    // per-(i,j) assignment flags, length n*n
}

// matrixArrayErrorf attaches pair coordinates to a sentinel for diagnostics.
func matrixArrayErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("MatrixArray.%s(%d,%d): %w", method, i, j, err)
}

// NewMatrixArray creates a zeroed n-site container of pair functions of
// grid length N. Returns ErrBadShape on non-positive dimensions.
// Complexity: O(n²·N) time and memory.
func NewMatrixArray(n, length int) (*MatrixArray, error) {
	if n <= 0 || length <= 0 {
		return nil, ErrBadShape
	}

	return &MatrixArray{
		n:      n,
		length: length,
		data:   make([]float64, n*n*length),
		set:    make([]bool, n*n),
	}, nil
}

// Sites returns the number of site types n. Complexity: O(1).
func (m *MatrixArray) Sites() int { return m.n }

// Length returns the grid length N of every pair function. Complexity: O(1).
func (m *MatrixArray) Length() int { return m.length }

// block computes the flat offset of pair (i,j) after bounds checking.
func (m *MatrixArray) block(method string, i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, matrixArrayErrorf(method, i, j, ErrOutOfRange)
	}

	return (i*m.n + j) * m.length, nil
}

// Set copies fn into both the (i,j) and (j,i) blocks, preserving symmetry.
// Returns ErrOutOfRange on bad indices, ErrLengthMismatch if len(fn) ≠ N.
// Complexity: O(N).
func (m *MatrixArray) Set(i, j int, fn []float64) error {
	off, err := m.block("Set", i, j)
	if err != nil {
		return err
	}
	if len(fn) != m.length {
		return matrixArrayErrorf("Set", i, j, ErrLengthMismatch)
	}

	copy(m.data[off:off+m.length], fn)
	m.set[i*m.n+j] = true
	if i != j {
		off, _ = m.block("Set", j, i) // bounds already proven
		copy(m.data[off:off+m.length], fn)
		m.set[j*m.n+i] = true
	}

	return nil
}

// Get returns the stored pair function for (i,j) as a view into the backing
// buffer (no copy; callers must treat it as read-only). Returns ErrOutOfRange
// on bad indices, ErrPairUnset if the pair was never assigned.
// Complexity: O(1).
func (m *MatrixArray) Get(i, j int) ([]float64, error) {
	off, err := m.block("Get", i, j)
	if err != nil {
		return nil, err
	}
	if !m.set[i*m.n+j] {
		return nil, matrixArrayErrorf("Get", i, j, ErrPairUnset)
	}

	return m.data[off : off+m.length : off+m.length], nil
}

// Pairs returns the unique site pairs (i ≤ j) in deterministic row-major
// order, the iteration order solvers use to assemble per-pair kernels.
// Complexity: O(n²).
func (m *MatrixArray) Pairs() [][2]int {
	out := make([][2]int, 0, m.n*(m.n+1)/2)
	for i := 0; i < m.n; i++ {
		for j := i; j < m.n; j++ {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}

// Complete reports nil when every pair has been assigned, else the first
// unset pair in row-major order wrapped around ErrPairUnset.
// Complexity: O(n²).
func (m *MatrixArray) Complete() error {
	for i := 0; i < m.n; i++ {
		for j := i; j < m.n; j++ {
			if !m.set[i*m.n+j] {
				return matrixArrayErrorf("Complete", i, j, ErrPairUnset)
			}
		}
	}

	return nil
}
