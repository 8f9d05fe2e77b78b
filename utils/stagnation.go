package utils

// historyLen is how many recent board hashes are kept; cycles up to this period are detected
const historyLen = 5

// StagnationTracker detects boards that stopped changing or fell into a short cycle
type StagnationTracker struct {
	history []string
	streak  int
}

// Observe records the hash of the current board and reports whether it repeats a recent one.
// Consecutive repeats are counted by Streak.
func (t *StagnationTracker) Observe(hash string) bool {
	stagnant := false
	for _, h := range t.history {
		if h == hash {
			stagnant = true
			break
		}
	}

	t.history = append(t.history, hash)
	if len(t.history) > historyLen {
		t.history = t.history[1:]
	}

	if stagnant {
		t.streak++
	} else {
		t.streak = 0
	}
	return stagnant
}

// Streak returns the number of consecutive stagnant observations
func (t *StagnationTracker) Streak() int {
	return t.streak
}

// Reset forgets all history, used after the board is reseeded
func (t *StagnationTracker) Reset() {
	t.history = nil
	t.streak = 0
}
