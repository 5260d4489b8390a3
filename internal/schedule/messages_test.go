package schedule

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewPool_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		entries []Message
	}{
		{name: "empty", entries: nil},
		{name: "zero weight", entries: []Message{{Text: "x", Weight: 0}}},
		{name: "negative weight", entries: []Message{{Text: "x", Weight: 5}, {Text: "y", Weight: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPool(tt.entries); err == nil {
				t.Errorf("NewPool(%v) succeeded, expected error", tt.entries)
			}
		})
	}
}

func TestDefaultPool(t *testing.T) {
	pool := DefaultPool()
	if pool.Len() != 17 {
		t.Errorf("Len = %d, expected 17", pool.Len())
	}
	if pool.TotalWeight() != 50 {
		t.Errorf("TotalWeight = %d, expected 50", pool.TotalWeight())
	}
}

func TestPick_WeightedFrequency(t *testing.T) {
	pool, err := NewPool([]Message{
		{Text: "common", Weight: 10},
		{Text: "regular", Weight: 5},
		{Text: "rare", Weight: 1},
	})
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	rnd := rand.New(rand.NewSource(11))
	const trials = 50000
	hits := make(map[string]int)
	for i := 0; i < trials; i++ {
		hits[pool.Pick(rnd)]++
	}

	expected := map[string]float64{
		"common":  10.0 / 16,
		"regular": 5.0 / 16,
		"rare":    1.0 / 16,
	}
	for text, want := range expected {
		got := float64(hits[text]) / trials
		if math.Abs(got-want) > 0.01 {
			t.Errorf("frequency of %q = %.4f, expected ~%.4f", text, got, want)
		}
	}
}

func TestPick_SingleMessage(t *testing.T) {
	pool, err := NewPool([]Message{{Text: "only", Weight: 3}})
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	rnd := rand.New(rand.NewSource(12))
	for i := 0; i < 100; i++ {
		if got := pool.Pick(rnd); got != "only" {
			t.Fatalf("Pick = %q, expected %q", got, "only")
		}
	}
}
