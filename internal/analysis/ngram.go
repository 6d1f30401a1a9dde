// Package analysis finds patterns in solver output: repeated move
// sequences and how often each face and turn is used.
package analysis

import (
	"sort"

	"github.com/SeamusWaldron/gocube_solver/pkg/types"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Tokens      []uint8           `json:"-"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	SolveID    string `json:"solve_id,omitempty"`
	StartIndex int    `json:"start_index"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// maxOccurrences caps the sample occurrences kept per n-gram.
const maxOccurrences = 10

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31, // Prime base
		n:      n,
		window: make([]uint8, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint8
	count       int
	occurrences []NGramOccurrence
}

func (e *ngramEntry) add(occ NGramOccurrence) {
	e.count++
	if len(e.occurrences) < maxOccurrences {
		e.occurrences = append(e.occurrences, occ)
	}
}

// Solution is one move sequence to mine, tagged with where it came from.
type Solution struct {
	SolveID string
	Moves   []types.Move
}

// MineNGrams finds the topK most frequent n-grams for each n in
// [minN, maxN] across solutions. Only n-grams seen at least twice are
// reported.
func MineNGrams(solutions []Solution, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	for n := minN; n <= maxN; n++ {
		// Keyed by hash, with a chain for collisions.
		counts := make(map[uint64][]*ngramEntry)
		for _, s := range solutions {
			countNGrams(counts, s, n)
		}
		if ngrams := topNGrams(counts, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func countNGrams(counts map[uint64][]*ngramEntry, s Solution, n int) {
	rh := NewRollingHash(n)
	for i, m := range s.Moves {
		rh.Roll(m.Token())
		if !rh.Ready() {
			continue
		}

		occ := NGramOccurrence{SolveID: s.SolveID, StartIndex: i - n + 1}
		hash := rh.Hash()
		window := rh.Window()

		found := false
		for _, entry := range counts[hash] {
			if slicesEqual(entry.tokens, window) {
				entry.add(occ)
				found = true
				break
			}
		}
		if !found {
			entry := &ngramEntry{tokens: window}
			entry.add(occ)
			counts[hash] = append(counts[hash], entry)
		}
	}
}

func topNGrams(counts map[uint64][]*ngramEntry, n, topK int) []NGram {
	var entries []*ngramEntry
	for _, chain := range counts {
		for _, entry := range chain {
			if entry.count >= 2 {
				entries = append(entries, entry)
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return ngramKey(entries[i].tokens) < ngramKey(entries[j].tokens)
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, entry := range entries {
		sequence := make([]string, len(entry.tokens))
		for j, token := range entry.tokens {
			sequence[j] = types.MoveFromToken(token).Notation()
		}

		result[i] = NGram{
			N:           n,
			Sequence:    sequence,
			Tokens:      entry.tokens,
			Count:       entry.count,
			Occurrences: entry.occurrences,
		}
	}

	return result
}

func slicesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ngramKey creates a sortable string key for a token sequence.
func ngramKey(tokens []uint8) string {
	result := make([]byte, len(tokens))
	for i, t := range tokens {
		result[i] = t + 'A' // Make printable
	}
	return string(result)
}
