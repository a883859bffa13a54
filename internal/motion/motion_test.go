package motion

import (
	"strings"
	"testing"
)

func TestBackground(t *testing.T) {
	if got := BackgroundOffset(300); got != -150 {
		t.Fatalf("offset = %v, want -150", got)
	}
	if got := BackgroundHeight(2400, 800); got != 3200 {
		t.Fatalf("height = %v, want 3200", got)
	}
	if got := TranslateY(BackgroundOffset(0)); got != "translateY(0px)" {
		t.Fatalf("translate = %q", got)
	}
	if got := TranslateY(-12.5); got != "translateY(-12.5px)" {
		t.Fatalf("translate = %q", got)
	}
}

func TestHeaderScrolled(t *testing.T) {
	if HeaderScrolled(100) {
		t.Fatal("threshold itself should not count as scrolled")
	}
	if !HeaderScrolled(101) {
		t.Fatal("expected scrolled past threshold")
	}
}

func TestInRevealZone(t *testing.T) {
	tests := []struct {
		rect Rect
		want bool
	}{
		{Rect{Top: 500, Bottom: 900}, true},
		{Rect{Top: 700, Bottom: 1100}, true},
		{Rect{Top: 701, Bottom: 1100}, false},
		{Rect{Top: -900, Bottom: -1}, false},
		{Rect{Top: -900, Bottom: 0}, true},
	}
	for _, tt := range tests {
		if got := InRevealZone(tt.rect, 1000); got != tt.want {
			t.Fatalf("InRevealZone(%+v) = %v, want %v", tt.rect, got, tt.want)
		}
	}
}

func TestProfileParallax(t *testing.T) {
	if _, ok := ProfileParallax(Rect{Top: 100, Bottom: 700, Height: 600}, 768, 1000); ok {
		t.Fatal("parallax must be disabled at the mobile breakpoint")
	}
	if _, ok := ProfileParallax(Rect{Top: 1000, Bottom: 1600, Height: 600}, 1280, 1000); ok {
		t.Fatal("parallax must be disabled below the viewport")
	}
	if _, ok := ProfileParallax(Rect{Top: -600, Bottom: 0, Height: 600}, 1280, 1000); ok {
		t.Fatal("parallax must be disabled above the viewport")
	}

	// progress = (1000 - 200) / (1000 + 600) = 0.5: the neutral position.
	p, ok := ProfileParallax(Rect{Top: 200, Bottom: 800, Height: 600}, 1280, 1000)
	if !ok {
		t.Fatal("expected parallax in view")
	}
	if p.Progress != 0.5 {
		t.Fatalf("progress = %v, want 0.5", p.Progress)
	}
	for _, part := range []string{
		"translateY(calc(-50% + 0px))",
		"translateX(25px)",
		"rotate(-5deg)",
		"scale(1)",
		"rotateX(5deg)",
	} {
		if !strings.Contains(p.Transform, part) {
			t.Fatalf("transform %q missing %q", p.Transform, part)
		}
	}
	want := "0 10px 10px rgba(0, 0, 0, 0.3), 0 0 15px rgba(255, 128, 171, 0.5)"
	if p.BoxShadow != want {
		t.Fatalf("shadow = %q, want %q", p.BoxShadow, want)
	}
}

func TestProfileParallaxMovesWithScroll(t *testing.T) {
	early, _ := ProfileParallax(Rect{Top: 900, Bottom: 1500, Height: 600}, 1280, 1000)
	late, _ := ProfileParallax(Rect{Top: -400, Bottom: 200, Height: 600}, 1280, 1000)
	if early.Progress >= late.Progress {
		t.Fatalf("progress should grow as the section scrolls up: %v >= %v", early.Progress, late.Progress)
	}
	if !strings.Contains(early.Transform, "calc(-50% + -") {
		t.Fatalf("early transform should lift the photo: %q", early.Transform)
	}
}

func TestNameFontSize(t *testing.T) {
	cases := map[float64]string{320: "2rem", 479: "2rem", 480: "2.8rem", 767: "2.8rem", 768: "4rem", 1920: "4rem"}
	for width, want := range cases {
		if got := NameFontSize(width); got != want {
			t.Fatalf("NameFontSize(%v) = %q, want %q", width, got, want)
		}
	}
}

func TestBreakName(t *testing.T) {
	got, changed := BreakName("Ana Maria Silva Costa", 360)
	if !changed || got != "Ana Maria<br>Silva Costa" {
		t.Fatalf("break = %q, %v", got, changed)
	}
	back, changed := BreakName(got, 400)
	if !changed || back != "Ana Maria Silva Costa" {
		t.Fatalf("unbreak = %q, %v", back, changed)
	}
	if _, changed := BreakName("Ana Silva", 360); changed {
		t.Fatal("two-word names should not wrap")
	}
	if _, changed := BreakName("Ana Maria Silva", 1024); changed {
		t.Fatal("wide screens should leave the name alone")
	}
}
