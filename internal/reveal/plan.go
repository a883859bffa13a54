package reveal

import (
	"sort"
	"time"
)

// Region names a part of the page touched by the reveal plan.
type Region int

const (
	RegionOverlay Region = iota
	RegionBody
	RegionContent
	RegionHeader
	RegionScrollIndicator
	RegionHobbyImages
)

var regionNames = map[Region]string{
	RegionOverlay:         "overlay",
	RegionBody:            "body",
	RegionContent:         "content",
	RegionHeader:          "header",
	RegionScrollIndicator: "scroll-indicator",
	RegionHobbyImages:     "hobby-images",
}

func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return "unknown"
}

// Step applies Region once Delay has passed since the reveal fired.
type Step struct {
	Region Region
	Delay  time.Duration
}

// Plan is the ordered reveal sequence. Steps sharing a delay run in plan
// order within a single callback.
type Plan []Step

// DefaultPlan hides the overlay, then staggers body, header, scroll
// indicator and hobby animations behind it.
func DefaultPlan() Plan {
	return Plan{
		{Region: RegionOverlay, Delay: 0},
		{Region: RegionBody, Delay: 500 * time.Millisecond},
		{Region: RegionContent, Delay: 500 * time.Millisecond},
		{Region: RegionHeader, Delay: 800 * time.Millisecond},
		{Region: RegionScrollIndicator, Delay: 1100 * time.Millisecond},
		{Region: RegionHobbyImages, Delay: 1300 * time.Millisecond},
	}
}

// batches groups steps by delay, ascending, preserving plan order inside a
// group.
func (p Plan) batches() [][]Step {
	steps := make([]Step, len(p))
	copy(steps, p)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Delay < steps[j].Delay })

	var out [][]Step
	for _, s := range steps {
		n := len(out)
		if n > 0 && out[n-1][0].Delay == s.Delay {
			out[n-1] = append(out[n-1], s)
			continue
		}
		out = append(out, []Step{s})
	}
	return out
}
