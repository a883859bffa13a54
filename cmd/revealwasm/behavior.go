//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/motion"
)

// setLanguage swaps every bilingual element to lang and persists the choice
// for both the browser and the host.
func (p *page) setLanguage(lang string) {
	p.lang = lang
	p.each("[data-en]", func(_ int, el js.Value) {
		if text := el.Get("dataset").Get(lang); truthy(text) {
			el.Set("innerHTML", text)
		}
	})
	p.each("[data-en-placeholder]", func(_ int, el js.Value) {
		if text := el.Call("getAttribute", "data-"+lang+"-placeholder"); truthy(text) {
			el.Set("placeholder", text)
		}
	})
	p.doc.Get("documentElement").Set("lang", lang)
	p.body.Get("dataset").Set("lang", lang)

	for _, prefix := range []string{"#lang-", "#mobile-lang-"} {
		for _, code := range []string{"en", "pt"} {
			if btn := p.query(prefix + code); truthy(btn) {
				btn.Get("classList").Call("toggle", "active", code == lang)
			}
		}
	}

	if storage := js.Global().Get("localStorage"); truthy(storage) {
		storage.Call("setItem", "preferredLanguage", lang)
	}
	p.doc.Set("cookie", languageCookie(lang))
	p.resize()
}

func (p *page) storedLanguage() string {
	storage := js.Global().Get("localStorage")
	if !truthy(storage) {
		return ""
	}
	v := storage.Call("getItem", "preferredLanguage")
	if !truthy(v) {
		return ""
	}
	return v.String()
}

func (p *page) bindLanguage() {
	for _, prefix := range []string{"#lang-", "#mobile-lang-"} {
		for _, code := range []string{"en", "pt"} {
			lang := code
			p.onClick(p.query(prefix+code), func() { p.setLanguage(lang) })
		}
	}
}

func (p *page) bindMenu() {
	menu := p.query(".mobile-menu")
	if !truthy(menu) {
		return
	}
	p.onClick(p.query(".mobile-menu-toggle"), func() {
		menu.Get("classList").Call("toggle", "open")
	})
	closeMenu := func() { menu.Get("classList").Call("remove", "open") }
	p.onClick(p.query(".close-menu-btn"), closeMenu)
	p.each(".mobile-nav-link", func(_ int, el js.Value) { p.onClick(el, closeMenu) })
}

func (p *page) onClick(el js.Value, f func()) {
	if !truthy(el) {
		return
	}
	el.Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) any {
		f()
		return nil
	}))
}

// bindScroll wires the scroll- and resize-linked effects and runs them once
// for the initial position.
func (p *page) bindScroll() {
	win := js.Global()
	win.Call("addEventListener", "scroll", js.FuncOf(func(js.Value, []js.Value) any {
		p.scroll()
		return nil
	}), map[string]any{"passive": true})
	win.Call("addEventListener", "resize", js.FuncOf(func(js.Value, []js.Value) any {
		p.resize()
		p.scroll()
		return nil
	}))
	p.resize()
	p.scroll()
}

func (p *page) scroll() {
	win := js.Global()
	scrollY := win.Get("scrollY").Float()
	vw := win.Get("innerWidth").Float()
	vh := win.Get("innerHeight").Float()

	if bg := p.query("#background"); truthy(bg) {
		bg.Get("style").Set("transform", motion.TranslateY(motion.BackgroundOffset(scrollY)))
	}
	if header := p.query("header"); truthy(header) {
		header.Get("classList").Call("toggle", "scrolled", motion.HeaderScrolled(scrollY))
	}

	p.each("section", func(_ int, el js.Value) {
		if motion.InRevealZone(rectOf(el), vh) {
			el.Get("classList").Call("add", "visible")
		}
	})

	about, profile := p.query("#about"), p.query(".floating-profile")
	if !truthy(about) || !truthy(profile) {
		return
	}
	if motion.InRevealZone(rectOf(profile), vh) {
		profile.Get("classList").Call("add", "revealed")
	}
	style := profile.Get("style")
	if px, ok := motion.ProfileParallax(rectOf(about), vw, vh); ok {
		style.Set("transform", px.Transform)
		style.Set("boxShadow", px.BoxShadow)
	} else if vw <= motion.MobileBreakpoint {
		style.Set("transform", "")
		style.Set("boxShadow", "")
	}
}

func (p *page) resize() {
	win := js.Global()
	vw := win.Get("innerWidth").Float()
	vh := win.Get("innerHeight").Float()

	if bg := p.query("#background"); truthy(bg) {
		docHeight := p.doc.Get("documentElement").Get("scrollHeight").Float()
		bg.Get("style").Set("height", formatPx(motion.BackgroundHeight(docHeight, vh)))
	}
	p.each(".assembled-name", func(_ int, el js.Value) {
		el.Get("style").Set("fontSize", motion.NameFontSize(vw))
		if html, changed := motion.BreakName(el.Get("innerHTML").String(), vw); changed {
			el.Set("innerHTML", html)
		}
	})
}
