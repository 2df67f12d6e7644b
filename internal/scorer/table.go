package scorer

// Ranking is an ordered preference list; earlier entries are preferred
type Ranking[K comparable] []K

// Rank returns the position of k, or Len() when k is not listed
func (r Ranking[K]) Rank(k K) int {
	for i, v := range r {
		if v == k {
			return i
		}
	}
	return len(r)
}

// Len returns the number of listed entries
func (r Ranking[K]) Len() int { return len(r) }

// Contains reports whether k is listed
func (r Ranking[K]) Contains(k K) bool {
	return r.Rank(k) < len(r)
}

// Score turns a rank into a "higher is better" value for SelectBest.
// Unlisted keys score lowest.
func (r Ranking[K]) Score(k K) int {
	return len(r) - r.Rank(k)
}

// PriorityTable maps a discriminator to its preference list.
// Lookups that miss fall back to Default, never an error.
type PriorityTable[D comparable, K comparable] struct {
	entries []tableEntry[D, K]
	Default Ranking[K]
}

type tableEntry[D comparable, K comparable] struct {
	key     D
	ranking Ranking[K]
}

// NewPriorityTable creates an empty table with the fallback ranking
func NewPriorityTable[D comparable, K comparable](fallback Ranking[K]) *PriorityTable[D, K] {
	return &PriorityTable[D, K]{Default: fallback}
}

// Add appends or replaces the ranking for key and returns the table
func (t *PriorityTable[D, K]) Add(key D, ranking Ranking[K]) *PriorityTable[D, K] {
	for i := range t.entries {
		if t.entries[i].key == key {
			t.entries[i].ranking = ranking
			return t
		}
	}
	t.entries = append(t.entries, tableEntry[D, K]{key: key, ranking: ranking})
	return t
}

// Lookup returns the ranking for key and whether it was listed
func (t *PriorityTable[D, K]) Lookup(key D) (Ranking[K], bool) {
	for _, e := range t.entries {
		if e.key == key {
			return e.ranking, true
		}
	}
	return t.Default, false
}

// Keys returns the discriminators in insertion order
func (t *PriorityTable[D, K]) Keys() []D {
	keys := make([]D, 0, len(t.entries))
	for _, e := range t.entries {
		keys = append(keys, e.key)
	}
	return keys
}
