package dice

import "testing"

// scripted returns canned float draws and is never asked for ints.
type scripted struct {
	floats []float64
	next   int
}

func (s *scripted) Intn(n int) int {
	panic("scripted source has no int draws")
}

func (s *scripted) Float64() float64 {
	v := s.floats[s.next]
	s.next++
	return v
}

func TestNewSameSeedSameStream(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if got, want := RollDie(a), RollDie(b); got != want {
			t.Fatalf("draw %d: sources diverged, got %d and %d", i, got, want)
		}
	}
}

func TestNewZeroSeed(t *testing.T) {
	src := New(0)
	if src == nil {
		t.Fatal("expected a usable source for seed 0")
	}
	// Must behave like seed 1
	same := New(1)
	for i := 0; i < 20; i++ {
		if got, want := src.Intn(1000), same.Intn(1000); got != want {
			t.Fatalf("draw %d: seed 0 did not fall back to seed 1, got %d want %d", i, got, want)
		}
	}
}

func TestRollDieRange(t *testing.T) {
	src := New(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		roll := RollDie(src)
		if roll < 1 || roll > 6 {
			t.Fatalf("roll %d outside [1,6]", roll)
		}
		seen[roll] = true
	}
	for face := 1; face <= 6; face++ {
		if !seen[face] {
			t.Errorf("face %d never rolled in 1000 draws", face)
		}
	}
}

func TestCoinTossBoundary(t *testing.T) {
	tests := []struct {
		name string
		draw float64
		want bool
	}{
		{"below half is false", 0.4999, false},
		{"exactly half is true", 0.5, true},
		{"above half is true", 0.75, true},
		{"zero is false", 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scripted{floats: []float64{tt.draw}}
			if got := CoinToss(src); got != tt.want {
				t.Errorf("CoinToss(%v) = %t, want %t", tt.draw, got, tt.want)
			}
		})
	}
}

func TestBetweenInclusive(t *testing.T) {
	src := New(11)
	tests := []struct {
		low, high int
	}{
		{1, 6},
		{1, 1},
		{0, 19},
		{-3, 3},
	}

	for _, tt := range tests {
		lowSeen, highSeen := false, false
		for i := 0; i < 2000; i++ {
			v := Between(src, tt.low, tt.high)
			if v < tt.low || v > tt.high {
				t.Fatalf("Between(%d, %d) = %d outside range", tt.low, tt.high, v)
			}
			lowSeen = lowSeen || v == tt.low
			highSeen = highSeen || v == tt.high
		}
		if !lowSeen || !highSeen {
			t.Errorf("Between(%d, %d) never hit both ends", tt.low, tt.high)
		}
	}
}

func TestBetweenReversedBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for reversed bounds")
		}
	}()
	Between(New(1), 5, 4)
}
