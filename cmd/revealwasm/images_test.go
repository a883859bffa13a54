package main

import (
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/reveal"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		complete       bool
		naturalWidth   int
		loaded, broken bool
	}{
		{"loading", false, 0, false, false},
		{"loading with stale width", false, 120, false, false},
		{"cached", true, 120, true, false},
		{"broken before tracking", true, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loaded, broken := classify(tt.complete, tt.naturalWidth)
			if loaded != tt.loaded || broken != tt.broken {
				t.Fatalf("classify = (%v, %v), want (%v, %v)", loaded, broken, tt.loaded, tt.broken)
			}
		})
	}
}

func TestRetrierTriesAlternativeOnce(t *testing.T) {
	var r retrier
	alt, ok := r.next("/images/hobby-pool.jpg")
	if !ok || alt != "images/hobby-pool.jpg" {
		t.Fatalf("first retry = %q, %v", alt, ok)
	}
	if _, ok := r.next(alt); ok {
		t.Fatal("second failure should be final")
	}
}

func TestRetrierWithoutAlternative(t *testing.T) {
	var r retrier
	if _, ok := r.next("images/hobby-pool.jpg"); ok {
		t.Fatal("relative source has no alternative")
	}
	if _, ok := r.next("/images/hobby-pool.jpg"); ok {
		t.Fatal("retry budget already spent")
	}
}

type idleScheduler struct{}

func (idleScheduler) Now() time.Time                 { return time.Unix(0, 0) }
func (idleScheduler) AfterFunc(time.Duration, func()) {}

func TestStartRevealSettlesBrokenAfterInitialize(t *testing.T) {
	coord := reveal.New(reveal.DefaultConfig(), idleScheduler{}, nil)
	if err := startReveal(coord, reveal.Images{true, false, false}, []int{1, 2}); err != nil {
		t.Fatalf("startReveal: %v", err)
	}
	r := coord.Snapshot()
	if r.Loaded != 1 || r.Failed != 2 || r.Pending != 0 {
		t.Fatalf("report = %+v", r)
	}
	if !coord.ImagesReady() || r.ForcedByTimeout {
		t.Fatal("images should be ready without the fallback")
	}
	if coord.State() != reveal.Waiting {
		t.Fatal("reveal must still wait for the intro")
	}
}

func TestStartRevealManyBroken(t *testing.T) {
	const n = 200
	broken := make([]int, n)
	for i := range broken {
		broken[i] = i
	}
	coord := reveal.New(reveal.DefaultConfig(), idleScheduler{}, nil)
	if err := startReveal(coord, make(reveal.Images, n), broken); err != nil {
		t.Fatalf("startReveal: %v", err)
	}
	if coord.Snapshot().Failed != n || !coord.ImagesReady() {
		t.Fatalf("report = %+v", coord.Snapshot())
	}
}

func TestDomPending(t *testing.T) {
	for state, want := range map[string]bool{"loading": true, "interactive": false, "complete": false} {
		if got := domPending(state); got != want {
			t.Errorf("domPending(%q) = %v, want %v", state, got, want)
		}
	}
}
