// Package motion holds the scroll- and resize-linked formulas of the
// portfolio page. Every function is pure; the browser client feeds it
// measurements and writes the results back as inline styles.
package motion

import (
	"fmt"
	"math"
	"strings"
)

const (
	// HeaderScrollThreshold is the scroll offset after which the header
	// switches to its compact background.
	HeaderScrollThreshold = 100.0
	// RevealZone is the fraction of the viewport height an element's top
	// must pass before it is revealed.
	RevealZone = 0.7
	// MobileBreakpoint disables the profile parallax at or below this width.
	MobileBreakpoint = 768.0
	// NameBreakWidth is the width below which the name wraps onto two lines.
	NameBreakWidth = 380.0
	// SectionThreshold is the intersection ratio that reveals a section.
	SectionThreshold = 0.2
)

// Rect is the subset of a bounding client rect the formulas need.
type Rect struct {
	Top    float64
	Bottom float64
	Height float64
}

// BackgroundOffset moves the page background up at half the scroll speed.
func BackgroundOffset(scrollY float64) float64 {
	return -scrollY / 2
}

// BackgroundHeight is tall enough that the shifted background never
// exposes its edge.
func BackgroundHeight(documentHeight, viewportHeight float64) float64 {
	return documentHeight + viewportHeight
}

// TranslateY renders a vertical translation.
func TranslateY(px float64) string {
	return "translateY(" + formatFloat(px) + "px)"
}

func HeaderScrolled(scrollY float64) bool {
	return scrollY > HeaderScrollThreshold
}

// InRevealZone reports whether an element has scrolled far enough into the
// viewport to be revealed.
func InRevealZone(r Rect, viewportHeight float64) bool {
	return r.Top <= viewportHeight*RevealZone && r.Bottom >= 0
}

// Parallax is the computed presentation of the floating profile photo.
type Parallax struct {
	Progress  float64
	Transform string
	BoxShadow string
}

// ProfileParallax computes the profile transform for the about section's
// rect. ok is false when the effect does not apply: narrow viewports and a
// section outside the viewport.
func ProfileParallax(section Rect, viewportWidth, viewportHeight float64) (Parallax, bool) {
	if viewportWidth <= MobileBreakpoint {
		return Parallax{}, false
	}
	if section.Top >= viewportHeight || section.Bottom <= 0 {
		return Parallax{}, false
	}

	progress := (viewportHeight - section.Top) / (viewportHeight + section.Height)
	vertical := (progress - 0.5) * 60
	horizontal := math.Sin(progress*math.Pi) * 25
	rotation := -5 + (progress-0.5)*8
	scale := 1 + (progress-0.5)*0.16
	rotateX := math.Sin(progress*math.Pi) * 5

	transform := strings.Join([]string{
		"translateY(calc(-50% + " + formatFloat(vertical) + "px))",
		"translateX(" + formatFloat(horizontal) + "px)",
		"rotate(" + formatFloat(rotation) + "deg)",
		"scale(" + formatFloat(scale) + ")",
		"rotateX(" + formatFloat(rotateX) + "deg)",
	}, " ")

	move := math.Abs(vertical)
	shadow := fmt.Sprintf("0 %spx %spx rgba(0, 0, 0, 0.3), 0 0 %spx rgba(255, 128, 171, %s)",
		formatFloat(10+move/3),
		formatFloat(10+move/2),
		formatFloat(15+move/2),
		formatFloat(0.5+math.Abs(progress-0.5)*0.5),
	)

	return Parallax{Progress: progress, Transform: transform, BoxShadow: shadow}, true
}

// NameFontSize scales the assembled name with the viewport.
func NameFontSize(viewportWidth float64) string {
	switch {
	case viewportWidth < 480:
		return "2rem"
	case viewportWidth < MobileBreakpoint:
		return "2.8rem"
	default:
		return "4rem"
	}
}

// BreakName inserts a line break after the second word on very narrow
// screens and removes it again on wider ones. changed is false when html
// is already in the right shape.
func BreakName(html string, viewportWidth float64) (out string, changed bool) {
	hasBreak := strings.Contains(html, "<br>")
	if viewportWidth < NameBreakWidth && !hasBreak {
		parts := strings.Split(html, " ")
		if len(parts) < 3 {
			return html, false
		}
		return strings.Join(parts[:2], " ") + "<br>" + strings.Join(parts[2:], " "), true
	}
	if viewportWidth >= NameBreakWidth && hasBreak {
		return strings.Replace(html, "<br>", " ", 1), true
	}
	return html, false
}

// formatFloat renders px values with at most three decimals and no
// trailing zeros.
func formatFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
