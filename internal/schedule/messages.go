package schedule

import (
	"fmt"
	"math/rand"
)

// Message is one commit subject with a selection weight. A message with
// weight w is w times as likely to be picked as one with weight 1.
type Message struct {
	Text   string
	Weight int
}

// Pool is a static weighted set of commit messages.
type Pool struct {
	entries []Message
	total   int
}

// NewPool builds a pool from entries. Every weight must be positive.
func NewPool(entries []Message) (Pool, error) {
	if len(entries) == 0 {
		return Pool{}, fmt.Errorf("message pool is empty")
	}

	total := 0
	for _, m := range entries {
		if m.Weight <= 0 {
			return Pool{}, fmt.Errorf("message %q has non-positive weight %d", m.Text, m.Weight)
		}
		total += m.Weight
	}

	pool := Pool{entries: make([]Message, len(entries)), total: total}
	copy(pool.entries, entries)
	return pool, nil
}

// DefaultPool returns the built-in message set.
func DefaultPool() Pool {
	pool, err := NewPool([]Message{
		{"Add a new feature", 10},
		{"Fix a bug", 8},
		{"Refactor some code", 6},
		{"Add a new test", 5},
		{"Update the requirements", 4},
		{"Update the documentation", 3},
		{"Update the README", 3},
		{"Update the license", 2},
		{"Update the gitignore", 1},
		{"Update the CI/CD pipeline", 1},
		{"Update the Dockerfile", 1},
		{"Update the Makefile", 1},
		{"Update the GitHub Actions", 1},
		{"Update the Jenkinsfile", 1},
		{"Update the AWS config", 1},
		{"Update the GCP config", 1},
		{"Update the Azure config", 1},
	})
	if err != nil {
		panic(err) // static data, cannot happen
	}
	return pool
}

// Pick chooses a message with probability weight/totalWeight. This walks the
// cumulative weights instead of expanding the pool into a multiset, which is
// distribution-equivalent.
func (p Pool) Pick(rnd *rand.Rand) string {
	k := rnd.Intn(p.total)
	for _, m := range p.entries {
		k -= m.Weight
		if k < 0 {
			return m.Text
		}
	}
	// Unreachable: the cumulative weights cover [0, total).
	return p.entries[len(p.entries)-1].Text
}

// Len returns the number of distinct messages in the pool.
func (p Pool) Len() int {
	return len(p.entries)
}

// TotalWeight returns the sum of all weights.
func (p Pool) TotalWeight() int {
	return p.total
}
