package main

import (
	"github.com/Zachkp/portfolio/internal/assetpath"
	"github.com/Zachkp/portfolio/internal/reveal"
)

// classify reads an image's state when tracking starts. A complete image
// without pixels failed before we could listen for its error event.
func classify(complete bool, naturalWidth int) (loaded, broken bool) {
	if !complete {
		return false, false
	}
	if naturalWidth > 0 {
		return true, false
	}
	return false, true
}

// retrier allows one reload of a failed image from its alternative source.
type retrier struct {
	tried bool
}

// next returns the source to retry with. ok is false once the failure is
// final and should be reported.
func (r *retrier) next(src string) (alt string, ok bool) {
	if r.tried {
		return "", false
	}
	r.tried = true
	return assetpath.Alternative(src)
}

// startReveal initializes the coordinator and then settles images that were
// already broken, in that order.
func startReveal(coord *reveal.Coordinator, images reveal.Images, broken []int) error {
	if err := coord.Initialize(images); err != nil {
		return err
	}
	for _, i := range broken {
		if err := coord.ImageSettled(i, reveal.Failed); err != nil {
			return err
		}
	}
	return nil
}

// domPending reports whether the document is still being parsed and the
// client must wait for DOMContentLoaded.
func domPending(readyState string) bool {
	return readyState == "loading"
}
