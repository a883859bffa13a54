//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/Zachkp/portfolio/internal/assetpath"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/styles"
)

var regionSelectors = map[reveal.Region]string{
	reveal.RegionOverlay:         ".loading-indicator",
	reveal.RegionBody:            "body",
	reveal.RegionContent:         ".content-reveal",
	reveal.RegionHeader:          "header",
	reveal.RegionScrollIndicator: ".scroll-indicator",
	reveal.RegionHobbyImages:     ".hobby-image",
}

// page is the coordinator's presentation layer over the live document.
type page struct {
	doc  js.Value
	body js.Value
	log  zerolog.Logger
	lang string
}

func newPage(doc js.Value, logger zerolog.Logger) *page {
	return &page{doc: doc, body: doc.Get("body"), log: logger}
}

func (p *page) query(selector string) js.Value {
	return p.doc.Call("querySelector", selector)
}

func (p *page) each(selector string, f func(i int, el js.Value)) {
	list := p.doc.Call("querySelectorAll", selector)
	for i := 0; i < list.Length(); i++ {
		f(i, list.Index(i))
	}
}

func (p *page) Exists(r reveal.Region) bool {
	sel, ok := regionSelectors[r]
	if !ok {
		return false
	}
	return truthy(p.query(sel))
}

func (p *page) Apply(r reveal.Region) {
	switch r {
	case reveal.RegionOverlay:
		p.query(".loading-indicator").Get("style").Set("display", "none")
	case reveal.RegionBody:
		p.body.Get("classList").Call("remove", "loading")
		p.body.Get("classList").Call("add", "loaded")
	case reveal.RegionContent:
		p.query(".content-reveal").Get("classList").Call("add", "visible")
	case reveal.RegionHeader:
		header := p.query("header")
		style := header.Get("style")
		style.Set("opacity", "1")
		style.Set("pointerEvents", "auto")
		header.Get("classList").Call("add", "visible")
	case reveal.RegionScrollIndicator:
		p.query(".scroll-indicator").Get("style").Set("opacity", "1")
	case reveal.RegionHobbyImages:
		p.each(".hobby-image-container", func(_ int, el js.Value) {
			setStyle(el, styles.HobbyContainer())
		})
		p.each(".hobby-image", func(i int, el js.Value) {
			setStyle(el, styles.HobbyImage(i))
			el.Get("classList").Call("add", "visible")
		})
	}
	p.log.Debug().Stringer("region", r).Msg("revealed")
}

func (p *page) ShowProgress(settled, total int) {
	el := p.query(".loading-text")
	if !truthy(el) {
		return
	}
	label := el.Get("dataset").Get(p.lang)
	if !truthy(label) {
		return
	}
	el.Set("textContent", progressText(label.String(), settled, total))
}

// trackImages prepares every image on the page and routes its load and
// error events through post. broken lists images that finished loading
// before tracking started but have no pixels.
func (p *page) trackImages(resolver *assetpath.Resolver, post func(index int, outcome reveal.LoadState)) (images reveal.Images, broken []int) {
	list := p.doc.Get("images")
	n := list.Length()
	images = make(reveal.Images, n)
	for i := 0; i < n; i++ {
		el := list.Index(i)
		p.prepare(el)

		if src, changed := resolver.Resolve(attr(el, "src")); changed {
			el.Set("src", src)
		}

		loaded, isBroken := classify(el.Get("complete").Bool(), el.Get("naturalWidth").Int())
		if loaded || isBroken {
			images[i] = loaded
			if isBroken {
				broken = append(broken, i)
			}
			continue
		}

		index := i
		retry := &retrier{}
		el.Call("addEventListener", "load", js.FuncOf(func(js.Value, []js.Value) any {
			post(index, reveal.Loaded)
			return nil
		}))
		el.Call("addEventListener", "error", js.FuncOf(func(js.Value, []js.Value) any {
			if alt, ok := retry.next(attr(el, "src")); ok {
				p.log.Warn().Str("src", alt).Msg("image failed, retrying without leading slash")
				el.Set("src", alt)
				return nil
			}
			post(index, reveal.Failed)
			return nil
		}))
	}
	return images, broken
}

// prepare fixes an image's box before it loads so the layout does not
// jump when it arrives.
func (p *page) prepare(el js.Value) {
	classes := el.Get("classList")
	names := make([]string, classes.Length())
	for i := range names {
		names[i] = classes.Index(i).String()
	}
	if d, ok := styles.ImageDimensions(names...); ok {
		setStyle(el, d.Declarations())
	}
	if classes.Call("contains", "profile-image").Bool() {
		setStyle(el, styles.ProfileImage())
	}
}

func setStyle(el js.Value, decls styles.Declarations) {
	style := el.Get("style")
	for _, d := range decls {
		style.Call("setProperty", d.Property, d.Value)
	}
}

func rectOf(el js.Value) motion.Rect {
	r := el.Call("getBoundingClientRect")
	return motion.Rect{
		Top:    r.Get("top").Float(),
		Bottom: r.Get("bottom").Float(),
		Height: r.Get("height").Float(),
	}
}

// attr returns the attribute value, or "" when it is absent.
func attr(el js.Value, name string) string {
	v := el.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

func truthy(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined() && v.Truthy()
}
