package reveal

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultIntroDuration = 6 * time.Second
	DefaultImageTimeout  = 8 * time.Second
)

// Config holds the only tunables of the coordinator.
type Config struct {
	// IntroDuration is how long the decorative intro animation runs.
	IntroDuration time.Duration
	// ImageTimeout forces images-ready even if some images never settle.
	ImageTimeout time.Duration
	Plan         Plan
	// Strict panics on malformed events instead of ignoring them.
	Strict bool
}

// DefaultConfig returns the durations and plan used by the portfolio page.
func DefaultConfig() Config {
	return Config{
		IntroDuration: DefaultIntroDuration,
		ImageTimeout:  DefaultImageTimeout,
		Plan:          DefaultPlan(),
	}
}

// Report summarizes how a reveal came about. Offsets are measured from
// Initialize.
type Report struct {
	Images          int
	Loaded          int
	Failed          int
	Pending         int
	ForcedByTimeout bool
	IntroAt         time.Duration
	ImagesReadyAt   time.Duration
	RevealedAt      time.Duration
}

type Option func(*Coordinator)

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Coordinator) { c.log = logger }
}

// WithRevealHook registers f to receive the Report when the reveal fires.
func WithRevealHook(f func(Report)) Option {
	return func(c *Coordinator) { c.onReveal = f }
}

type Coordinator struct {
	cfg      Config
	sched    Scheduler
	layer    Layer
	log      zerolog.Logger
	onReveal func(Report)

	initialized bool
	start       time.Time
	registry    []LoadState
	loaded      int
	failed      int

	imagesReady bool
	introDone   bool
	forced      bool
	state       State

	introAt  time.Duration
	imagesAt time.Duration
	revealAt time.Duration
}

// New builds a coordinator. Zero durations and a nil plan fall back to the
// defaults.
func New(cfg Config, sched Scheduler, layer Layer, opts ...Option) *Coordinator {
	if cfg.IntroDuration <= 0 {
		cfg.IntroDuration = DefaultIntroDuration
	}
	if cfg.ImageTimeout <= 0 {
		cfg.ImageTimeout = DefaultImageTimeout
	}
	if cfg.Plan == nil {
		cfg.Plan = DefaultPlan()
	}
	if layer == nil {
		layer = nopLayer{}
	}
	c := &Coordinator{
		cfg:   cfg,
		sched: sched,
		layer: layer,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize registers the page's images and starts both timers.
func (c *Coordinator) Initialize(images ImageSet) error {
	if c.initialized {
		return c.malformed(ErrAlreadyInitialized)
	}
	c.initialized = true
	c.start = c.sched.Now()

	n := 0
	if images != nil {
		n = images.Len()
	}
	c.registry = make([]LoadState, n)
	for i := range c.registry {
		if images.Complete(i) {
			c.registry[i] = Loaded
			c.loaded++
		}
	}
	c.log.Debug().Int("images", n).Int("complete", c.loaded).Msg("reveal initialized")

	c.sched.AfterFunc(c.cfg.IntroDuration, c.IntroElapsed)
	c.sched.AfterFunc(c.cfg.ImageTimeout, c.ImageLoadTimeout)

	if n > 0 {
		c.reportProgress()
	}
	if c.settled() == len(c.registry) {
		c.markImagesReady(false)
	}
	return nil
}

// ImageSettled records the outcome of image index. Repeats for an already
// settled image are ignored.
func (c *Coordinator) ImageSettled(index int, outcome LoadState) error {
	if !c.initialized {
		return c.malformed(ErrNotInitialized)
	}
	if index < 0 || index >= len(c.registry) {
		return c.malformed(fmt.Errorf("%w: %d of %d", ErrUnknownImage, index, len(c.registry)))
	}
	if outcome != Loaded && outcome != Failed {
		return c.malformed(fmt.Errorf("%w: %s", ErrInvalidOutcome, outcome))
	}
	if c.registry[index] != Pending {
		return nil
	}

	c.registry[index] = outcome
	if outcome == Loaded {
		c.loaded++
	} else {
		c.failed++
		c.log.Warn().Int("image", index).Msg("image failed to load")
	}

	c.reportProgress()
	if c.settled() == len(c.registry) {
		c.markImagesReady(false)
	}
	return nil
}

// ImageLoadTimeout forces images-ready regardless of pending images.
func (c *Coordinator) ImageLoadTimeout() {
	if !c.initialized || c.imagesReady {
		return
	}
	c.log.Info().Int("pending", len(c.registry)-c.settled()).Msg("image load timeout, forcing ready")
	c.markImagesReady(true)
}

// IntroElapsed marks the intro animation as finished.
func (c *Coordinator) IntroElapsed() {
	if !c.initialized || c.introDone {
		return
	}
	c.introDone = true
	c.introAt = c.elapsed()
	c.attemptReveal()
}

func (c *Coordinator) State() State { return c.state }

// Snapshot reports the current progress without side effects.
func (c *Coordinator) Snapshot() Report {
	return Report{
		Images:          len(c.registry),
		Loaded:          c.loaded,
		Failed:          c.failed,
		Pending:         len(c.registry) - c.settled(),
		ForcedByTimeout: c.forced,
		IntroAt:         c.introAt,
		ImagesReadyAt:   c.imagesAt,
		RevealedAt:      c.revealAt,
	}
}

// ImagesReady and IntroDone expose the readiness flags.
func (c *Coordinator) ImagesReady() bool { return c.imagesReady }
func (c *Coordinator) IntroDone() bool   { return c.introDone }

func (c *Coordinator) reportProgress() {
	if p, ok := c.layer.(ProgressReporter); ok && c.state == Waiting {
		p.ShowProgress(c.settled(), len(c.registry))
	}
}

func (c *Coordinator) settled() int { return c.loaded + c.failed }

func (c *Coordinator) elapsed() time.Duration { return c.sched.Now().Sub(c.start) }

func (c *Coordinator) markImagesReady(forced bool) {
	if c.imagesReady {
		return
	}
	c.imagesReady = true
	c.forced = forced
	c.imagesAt = c.elapsed()
	c.attemptReveal()
}

func (c *Coordinator) attemptReveal() {
	if c.state != Waiting || !c.imagesReady || !c.introDone {
		return
	}
	c.state = Revealed
	c.revealAt = c.elapsed()

	report := c.Snapshot()
	c.log.Info().
		Int("images", report.Images).
		Int("failed", report.Failed).
		Int("pending", report.Pending).
		Bool("forced", report.ForcedByTimeout).
		Dur("at", report.RevealedAt).
		Msg("revealing content")

	for _, batch := range c.cfg.Plan.batches() {
		batch := batch
		run := func() { c.apply(batch) }
		if batch[0].Delay <= 0 {
			run()
			continue
		}
		c.sched.AfterFunc(batch[0].Delay, run)
	}

	if c.onReveal != nil {
		c.onReveal(report)
	}
}

func (c *Coordinator) apply(steps []Step) {
	for _, s := range steps {
		if !c.layer.Exists(s.Region) {
			c.log.Debug().Stringer("region", s.Region).Msg("region absent, skipping")
			continue
		}
		c.layer.Apply(s.Region)
	}
}

func (c *Coordinator) malformed(err error) error {
	if c.cfg.Strict {
		panic(err)
	}
	c.log.Error().Err(err).Msg("ignoring malformed reveal event")
	return err
}

type nopLayer struct{}

func (nopLayer) Exists(Region) bool { return false }
func (nopLayer) Apply(Region)       {}
