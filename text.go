package main

import (
	"embed"

	"github.com/Zachkp/portfolio/internal/i18n"
)

//go:embed content/site.yaml
var contentFS embed.FS

//go:embed templates/*.html
var templateFS embed.FS

// loadCatalog reads the content override at path, or the embedded catalog
// when path is empty.
func loadCatalog(path string) (*i18n.Catalog, error) {
	if path == "" {
		return i18n.LoadFS(contentFS, "content/site.yaml")
	}
	return i18n.LoadFile(path)
}

// localized is a catalog string prepared for a template: both languages
// for the client toggle plus the one rendered now.
type localized struct {
	EN      string
	PT      string
	Current string
}

func localize(t i18n.Text, lang string) localized {
	l := localized{EN: t.EN, PT: t.PT, Current: t.EN}
	if l.PT == "" {
		l.PT = l.EN
	}
	if lang == "pt" {
		l.Current = l.PT
	}
	return l
}
