// Package winners draws giveaway winners with probability proportional to points.
//
// Every point is one ticket in a pool. The pool is shuffled with Fisher–Yates and
// walked from the front, and the first ticket of each entry not yet drawn wins.
// Entries with zero points hold no tickets and can never win.
package winners

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// MaxPoolSize caps the in-memory ticket pool. Larger totals are drawn by successive
// cumulative-weight sampling, which yields the same distribution.
const MaxPoolSize = 1_000_000

// AnonymousName is recorded for winners who did not give a name.
const AnonymousName = "Anonymous"

// Source is the randomness used for a draw. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
}

// NewSource returns a ChaCha8 generator seeded from the operating system.
func NewSource() (*rand.Rand, error) {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("failed to seed winner source: %w", err)
	}
	return rand.New(rand.NewChaCha8(seed)), nil
}

// Candidate is an entry eligible for the draw.
type Candidate struct {
	EntryID uuid.UUID
	Email   string
	Name    string
	Points  int
}

// Winner is a drawn entry with its points at selection time.
type Winner struct {
	EntryID uuid.UUID `json:"entry_id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Points  int       `json:"points"`
}

// PoolEntry is one ticket. It references its candidate by position.
type PoolEntry struct {
	EntryID   uuid.UUID
	candidate int
}

// TotalTickets sums the positive point totals.
func TotalTickets(cands []Candidate) int {
	total := 0
	for _, c := range cands {
		if c.Points > 0 {
			total += c.Points
		}
	}
	return total
}

// BuildPool appends one ticket per point, in candidate order.
func BuildPool(cands []Candidate) []PoolEntry {
	pool := make([]PoolEntry, 0, TotalTickets(cands))
	for i, c := range cands {
		for p := 0; p < c.Points; p++ {
			pool = append(pool, PoolEntry{EntryID: c.EntryID, candidate: i})
		}
	}
	return pool
}

// Shuffle permutes pool in place, walking from the last index down to 1 and
// swapping with a uniform index in [0, i].
func Shuffle(pool []PoolEntry, src Source) {
	for i := len(pool) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
}

// Draw selects up to numWinners distinct candidates. Fewer are returned only when
// fewer candidates hold tickets.
func Draw(cands []Candidate, numWinners int, src Source) []Winner {
	return draw(cands, numWinners, src, MaxPoolSize)
}

func draw(cands []Candidate, numWinners int, src Source, maxPool int) []Winner {
	if numWinners <= 0 {
		return nil
	}
	total := TotalTickets(cands)
	if total == 0 {
		return []Winner{}
	}
	if total > maxPool {
		return drawCumulative(cands, numWinners, total, src)
	}

	pool := BuildPool(cands)
	Shuffle(pool, src)

	picked := make(map[uuid.UUID]struct{}, numWinners)
	result := make([]Winner, 0, numWinners)
	for _, ticket := range pool {
		if _, ok := picked[ticket.EntryID]; ok {
			continue
		}
		picked[ticket.EntryID] = struct{}{}
		result = append(result, newWinner(cands[ticket.candidate]))
		if len(result) == numWinners {
			break
		}
	}
	return result
}

// drawCumulative picks one ticket at a time from the remaining weight and removes
// the winner's tickets before the next pick.
func drawCumulative(cands []Candidate, numWinners, total int, src Source) []Winner {
	weights := make([]int, len(cands))
	for i, c := range cands {
		if c.Points > 0 {
			weights[i] = c.Points
		}
	}

	result := make([]Winner, 0, numWinners)
	for len(result) < numWinners && total > 0 {
		r := src.IntN(total)
		for i, w := range weights {
			if r < w {
				result = append(result, newWinner(cands[i]))
				total -= w
				weights[i] = 0
				break
			}
			r -= w
		}
	}
	return result
}

func newWinner(c Candidate) Winner {
	name := c.Name
	if name == "" {
		name = AnonymousName
	}
	return Winner{
		EntryID: c.EntryID,
		Email:   c.Email,
		Name:    name,
		Points:  c.Points,
	}
}
