package pairtable

import "fmt"

// PairTable is a symmetric table of per-pair values keyed by site-type
// labels: one Potential, one AtomicClosure, one contact distance per distinct
// pair. Writing (A,B) also writes (B,A). The site set is fixed at
// construction.
type PairTable[V any] struct {
	sites []string
	index map[string]int
	vals  []V
	set   []bool
}

// NewPairTable constructs a table over the given ordered site labels.
// Returns ErrNoSites for an empty set, ErrDuplicateSite on repeats.
// Complexity: O(n²) memory, O(n) time.
func NewPairTable[V any](sites ...string) (*PairTable[V], error) {
	if len(sites) == 0 {
		return nil, ErrNoSites
	}
	index := make(map[string]int, len(sites))
	for i, s := range sites {
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("site %q: %w", s, ErrDuplicateSite)
		}
		index[s] = i
	}
	n := len(sites)

	return &PairTable[V]{
		sites: append([]string(nil), sites...),
		index: index,
		vals:  make([]V, n*n),
		set:   make([]bool, n*n),
	}, nil
}

// Sites returns the ordered site labels. The slice is shared; treat it as
// read-only. Complexity: O(1).
func (t *PairTable[V]) Sites() []string { return t.sites }

// at resolves a label pair to a flat index. Complexity: O(1).
func (t *PairTable[V]) at(a, b string) (int, int, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, 0, fmt.Errorf("site %q: %w", a, ErrUnknownSite)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, 0, fmt.Errorf("site %q: %w", b, ErrUnknownSite)
	}

	return i, j, nil
}

// Set assigns v to pair (a,b) and its mirror (b,a).
// Returns ErrUnknownSite on unregistered labels. Complexity: O(1).
func (t *PairTable[V]) Set(a, b string, v V) error {
	i, j, err := t.at(a, b)
	if err != nil {
		return err
	}
	n := len(t.sites)
	t.vals[i*n+j], t.set[i*n+j] = v, true
	t.vals[j*n+i], t.set[j*n+i] = v, true

	return nil
}

// Get returns the value assigned to (a,b) in either orientation.
// Returns ErrUnknownSite on unregistered labels, ErrPairUnset if the pair
// was never assigned. Complexity: O(1).
func (t *PairTable[V]) Get(a, b string) (V, error) {
	var zero V
	i, j, err := t.at(a, b)
	if err != nil {
		return zero, err
	}
	n := len(t.sites)
	if !t.set[i*n+j] {
		return zero, fmt.Errorf("pair (%q,%q): %w", a, b, ErrPairUnset)
	}

	return t.vals[i*n+j], nil
}

// Complete reports nil when every distinct pair (i ≤ j) has been assigned,
// else the first unset pair in row-major order wrapped around ErrPairUnset.
// Solvers call this once before iterating. Complexity: O(n²).
func (t *PairTable[V]) Complete() error {
	n := len(t.sites)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if !t.set[i*n+j] {
				return fmt.Errorf("pair (%q,%q): %w", t.sites[i], t.sites[j], ErrPairUnset)
			}
		}
	}

	return nil
}
