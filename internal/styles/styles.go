// Package styles defines the decorative animation presets of the portfolio
// page: the hobby image float keyframes, blob shapes and default image
// dimensions. The host serves them as a stylesheet and the browser client
// applies the same declarations inline.
package styles

import (
	"strconv"
	"strings"
)

// Declaration is one CSS property and value.
type Declaration struct {
	Property string
	Value    string
}

// Declarations keeps insertion order so rendered CSS is deterministic.
type Declarations []Declaration

// CSSText renders the declarations as an inline style string.
func (d Declarations) CSSText() string {
	var b strings.Builder
	for i, decl := range d {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(decl.Property)
		b.WriteString(": ")
		b.WriteString(decl.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// Get returns the value set for property.
func (d Declarations) Get(property string) (string, bool) {
	for _, decl := range d {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// Keyframe is a single stop of an animation.
type Keyframe struct {
	Stops     string
	Transform string
}

// Animation is a named keyframe set.
type Animation struct {
	Name   string
	Frames []Keyframe
}

// CSS renders the @keyframes block.
func (a Animation) CSS() string {
	var b strings.Builder
	b.WriteString("@keyframes ")
	b.WriteString(a.Name)
	b.WriteString(" {\n")
	for _, f := range a.Frames {
		b.WriteString("  ")
		b.WriteString(f.Stops)
		b.WriteString(" { transform: ")
		b.WriteString(f.Transform)
		b.WriteString("; }\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// HobbyAnimations float the three hobby images on slightly different
// paths.
var HobbyAnimations = []Animation{
	{Name: "floatHobby1", Frames: []Keyframe{
		{"0%, 100%", "translate(-50%, -50%) rotate(-2deg)"},
		{"30%", "translate(-48%, -53%) rotate(1deg)"},
		{"70%", "translate(-52%, -47%) rotate(-1deg)"},
	}},
	{Name: "floatHobby2", Frames: []Keyframe{
		{"0%, 100%", "translate(-50%, -50%) rotate(0deg)"},
		{"40%", "translate(-53%, -52%) rotate(-2deg)"},
		{"70%", "translate(-47%, -53%) rotate(2deg)"},
	}},
	{Name: "floatHobby3", Frames: []Keyframe{
		{"0%, 100%", "translate(-50%, -50%) rotate(0deg)"},
		{"25%", "translate(-48%, -55%) rotate(-1deg)"},
		{"60%", "translate(-52%, -46%) rotate(1deg)"},
		{"85%", "translate(-53%, -48%) rotate(0deg)"},
	}},
}

var hobbyTimings = []string{
	"8s ease-in-out infinite",
	"9s ease-in-out infinite 0.5s",
	"7.5s ease-in-out infinite 1s",
}

// BlobShapes are the border radii that turn square photos into blobs.
var BlobShapes = []string{
	"40% 60% 70% 30% / 40% 50% 60% 50%",
	"60% 40% 30% 70% / 50% 60% 40% 50%",
	"50% 50% 35% 65% / 65% 35% 50% 50%",
}

const (
	hobbyShadow   = "0 10px 20px rgba(0, 0, 0, 0.3), 0 0 15px rgba(255, 128, 171, 0.4)"
	profileShadow = "0 10px 30px rgba(0, 0, 0, 0.3), 0 0 20px rgba(255, 128, 171, 0.5)"
)

// HobbyImage returns the inline style for the index-th hobby image.
func HobbyImage(index int) Declarations {
	i := cycle(index, len(HobbyAnimations))
	return Declarations{
		{"position", "absolute"},
		{"top", "50%"},
		{"left", "50%"},
		{"transform", "translate(-50%, -50%)"},
		{"border-radius", BlobShapes[i]},
		{"animation", HobbyAnimations[i].Name + " " + hobbyTimings[i]},
		{"box-shadow", hobbyShadow},
		{"clip-path", "none"},
	}
}

// HobbyContainer keeps the blob shape from being clipped.
func HobbyContainer() Declarations {
	return Declarations{
		{"position", "relative"},
		{"overflow", "visible"},
		{"z-index", "1"},
		{"animation", "none"},
	}
}

// ProfileImage returns the inline style of the floating profile photo.
func ProfileImage() Declarations {
	return Declarations{
		{"position", "absolute"},
		{"top", "50%"},
		{"left", "50%"},
		{"transform", "translate(-50%, -50%)"},
		{"object-fit", "cover"},
		{"border-radius", BlobShapes[0]},
		{"box-shadow", profileShadow},
		{"clip-path", "none"},
	}
}

// Dimensions are the fixed box an image class is laid out in before it
// loads. Zero means unconstrained.
type Dimensions struct {
	Width  int
	Height int
}

var imageDimensions = map[string]Dimensions{
	"hobby-image":   {Width: 200, Height: 200},
	"profile-image": {Width: 260, Height: 260},
	"org-logo":      {Height: 30},
}

// ImageDimensions returns the default box for the first known class.
func ImageDimensions(classes ...string) (Dimensions, bool) {
	for _, c := range classes {
		if d, ok := imageDimensions[c]; ok {
			return d, true
		}
	}
	return Dimensions{}, false
}

// Declarations renders d as width/height constraints.
func (d Dimensions) Declarations() Declarations {
	var out Declarations
	if d.Width > 0 {
		w := px(d.Width)
		out = append(out, Declaration{"width", w}, Declaration{"max-width", w})
	}
	if d.Height > 0 {
		h := px(d.Height)
		out = append(out, Declaration{"height", h}, Declaration{"max-height", h})
	}
	return out
}

// Stylesheet renders every keyframe set plus the class rules that use
// them.
func Stylesheet() string {
	var b strings.Builder
	for _, a := range HobbyAnimations {
		b.WriteString(a.CSS())
	}
	b.WriteString(".hobby-image-container { " + HobbyContainer().CSSText() + " }\n")
	for i := range HobbyAnimations {
		b.WriteString(".hobby-card:nth-child(3n+" + strconv.Itoa(i+1) + ") .hobby-image { " + HobbyImage(i).CSSText() + " }\n")
	}
	b.WriteString(".profile-image { " + ProfileImage().CSSText() + " }\n")
	return b.String()
}

func cycle(index, n int) int {
	i := index % n
	if i < 0 {
		i += n
	}
	return i
}

func px(v int) string { return strconv.Itoa(v) + "px" }
