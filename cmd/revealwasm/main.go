//go:build js && wasm

// Command revealwasm runs the page reveal coordinator in the browser. It
// reads its settings from data attributes on <body> and drives the intro
// overlay, the staged reveal and the page's scroll effects.
package main

import (
	"context"
	"os"
	"strconv"
	"syscall/js"
	"time"

	"github.com/rs/zerolog"

	"github.com/Zachkp/portfolio/internal/assetpath"
	"github.com/Zachkp/portfolio/internal/reveal"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true, TimeFormat: time.RFC3339}).
		With().Timestamp().Str("app", "revealwasm").Logger()

	doc := js.Global().Get("document")
	waitForDOM(doc)
	p := newPage(doc, logger)

	data := dataset(p.body)
	cfg, err := parseConfig(data)
	if err != nil {
		logger.Warn().Err(err).Msg("invalid reveal settings, using defaults")
	}
	if cfg.Strict {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
	p.log = logger

	resolver, err := assetpath.NewResolver(js.Global().Get("location").Get("href").String())
	if err != nil {
		logger.Warn().Err(err).Msg("parse page location")
		resolver, _ = assetpath.NewResolver("")
	}

	js.Global().Call("scrollTo", 0, 0)
	p.setLanguage(pickLanguage(p.storedLanguage(), data[attrLang]))
	p.bindLanguage()
	p.bindMenu()
	p.bindScroll()

	loop := reveal.NewLoop(0)
	coord := reveal.New(cfg, loop, p,
		reveal.WithLogger(logger),
		reveal.WithRevealHook(func(r reveal.Report) {
			logger.Info().
				Int("images", r.Images).
				Int("loaded", r.Loaded).
				Int("failed", r.Failed).
				Bool("forced", r.ForcedByTimeout).
				Dur("revealed_at", r.RevealedAt).
				Msg("page revealed")
		}),
	)

	settle := func(index int, outcome reveal.LoadState) {
		loop.Post(func() {
			if err := coord.ImageSettled(index, outcome); err != nil {
				logger.Debug().Err(err).Int("image", index).Msg("ignored image event")
			}
		})
	}
	images, broken := p.trackImages(resolver, settle)
	loop.Post(func() {
		if err := startReveal(coord, images, broken); err != nil {
			logger.Error().Err(err).Msg("initialize reveal")
		}
	})

	if err := loop.Run(context.Background()); err != nil {
		logger.Error().Err(err).Msg("reveal loop stopped")
	}
}

// waitForDOM blocks until the document has been parsed, so <body> and
// every <img> exist before tracking starts.
func waitForDOM(doc js.Value) {
	if !domPending(doc.Get("readyState").String()) {
		return
	}
	ready := make(chan struct{})
	var onReady js.Func
	onReady = js.FuncOf(func(js.Value, []js.Value) any {
		onReady.Release()
		close(ready)
		return nil
	})
	doc.Call("addEventListener", "DOMContentLoaded", onReady)
	<-ready
}

// dataset copies the element's data attributes into a map.
func dataset(el js.Value) map[string]string {
	out := map[string]string{}
	ds := el.Get("dataset")
	keys := js.Global().Get("Object").Call("keys", ds)
	for i := 0; i < keys.Length(); i++ {
		k := keys.Index(i).String()
		out[k] = ds.Get(k).String()
	}
	return out
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
