// Package scorer picks the best candidate out of a set.
//
// Every selection policy in the bot goes through SelectBest so that ordering
// and tie-break rules are the same everywhere: higher score wins, equal
// scores go to the tie-break, and if that is undecided the earliest
// candidate is kept.
package scorer

import "cmp"

// TieBreak compares a challenger against the current best candidate of equal
// score. A positive result lets the challenger win; zero or negative keeps
// the incumbent.
type TieBreak[T any] func(challenger, incumbent T) int

// FirstSeen is the tie-break that always keeps the earliest candidate
func FirstSeen[T any](_, _ T) int { return 0 }

// SelectBest returns the index of the highest scoring candidate.
// It returns false for an empty set. A nil tieBreak behaves like FirstSeen.
func SelectBest[T any, S cmp.Ordered](candidates []T, score func(T) S, tieBreak TieBreak[T]) (int, bool) {
	if len(candidates) == 0 {
		return -1, false
	}

	best := 0
	bestScore := score(candidates[0])
	for i := 1; i < len(candidates); i++ {
		s := score(candidates[i])
		switch {
		case s > bestScore:
			best, bestScore = i, s
		case s == bestScore && tieBreak != nil && tieBreak(candidates[i], candidates[best]) > 0:
			best = i
		}
	}
	return best, true
}

// SelectMin returns the index of the lowest scoring candidate, earliest on ties.
func SelectMin[T any, S cmp.Ordered](candidates []T, score func(T) S) (int, bool) {
	if len(candidates) == 0 {
		return -1, false
	}

	best := 0
	bestScore := score(candidates[0])
	for i := 1; i < len(candidates); i++ {
		if s := score(candidates[i]); s < bestScore {
			best, bestScore = i, s
		}
	}
	return best, true
}
