// Package reveal decides when a page switches from its loading overlay to
// visible content.
//
// Two conditions gate the switch: every image on the page has settled
// (loaded or failed) and the intro animation has finished. Both are
// monotonic flags. An unconditional fallback timer forces the image
// condition so a single stuck image cannot hold the page hostage. The
// reveal plan runs at most once per Coordinator.
//
// A Coordinator is not safe for concurrent use. Drive it from a single
// goroutine, normally a Loop, which also serves as its Scheduler.
package reveal

import (
	"errors"
	"time"
)

// LoadState is the per-image outcome tracked by the registry.
type LoadState int

const (
	Pending LoadState = iota
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the coordinator's reveal state.
type State int

const (
	Waiting State = iota
	Revealed
)

func (s State) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "waiting"
}

var (
	ErrNotInitialized     = errors.New("reveal: coordinator not initialized")
	ErrAlreadyInitialized = errors.New("reveal: coordinator already initialized")
	ErrUnknownImage       = errors.New("reveal: image index out of range")
	ErrInvalidOutcome     = errors.New("reveal: outcome must be loaded or failed")
)

// ImageSet is the collection of image elements discovered at page init.
// Load and error subscriptions stay with the caller, which forwards them
// through Coordinator.ImageSettled.
type ImageSet interface {
	Len() int
	// Complete reports whether image i had already finished loading when
	// the set was inspected (for example served from cache).
	Complete(i int) bool
}

// Layer receives the one-way presentation commands of the reveal plan.
type Layer interface {
	// Exists reports whether the page has the named region. Absent regions
	// are skipped.
	Exists(r Region) bool
	Apply(r Region)
}

// ProgressReporter is implemented by layers that render loading progress.
type ProgressReporter interface {
	ShowProgress(settled, total int)
}

// Scheduler supplies time to the coordinator. Callbacks passed to
// AfterFunc must run on the same goroutine as every other coordinator
// call; Loop guarantees that.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func())
}

// Images is an ImageSet backed by a slice of complete flags.
type Images []bool

func (im Images) Len() int { return len(im) }

func (im Images) Complete(i int) bool { return im[i] }
