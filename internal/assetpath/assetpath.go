// Package assetpath rewrites relative image sources for pages served from
// a sub-path host such as a GitHub Pages project site.
package assetpath

import (
	"net/url"
	"strings"
)

// subPathHostSuffix marks hosts that serve each project under /<repo>/.
const subPathHostSuffix = "github.io"

// Resolver maps image sources onto the page's base path.
type Resolver struct {
	base string
}

// NewResolver derives the base path from the page location. Hosts that do
// not serve from a sub-path get an empty base and Resolve is the identity.
func NewResolver(pageURL string) (*Resolver, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}
	r := &Resolver{}
	if !strings.HasSuffix(u.Hostname(), subPathHostSuffix) {
		return r, nil
	}
	segment := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)[0]
	if segment != "" {
		r.base = "/" + segment + "/"
	}
	return r, nil
}

// Base returns the sub-path prefix, or "" when none applies.
func (r *Resolver) Base() string { return r.base }

// Resolve returns src rewritten against the base and whether it changed.
func (r *Resolver) Resolve(src string) (string, bool) {
	if r.base == "" || !isRelative(src) {
		return src, false
	}
	return r.base + strings.TrimPrefix(src, "./"), true
}

// Alternative returns the source to retry after a failed load: the same
// path without its leading slash.
func Alternative(src string) (string, bool) {
	if u, err := url.Parse(src); err == nil && u.IsAbs() {
		src = u.Path
	}
	if !strings.HasPrefix(src, "/") || strings.HasPrefix(src, "//") {
		return "", false
	}
	alt := strings.TrimPrefix(src, "/")
	if alt == "" {
		return "", false
	}
	return alt, true
}

func isRelative(src string) bool {
	switch {
	case src == "":
		return false
	case strings.HasPrefix(src, "./"):
		return true
	case strings.HasPrefix(src, "/"):
		return false
	case strings.HasPrefix(src, "http"):
		return false
	case strings.HasPrefix(src, "data:"):
		return false
	}
	return true
}
