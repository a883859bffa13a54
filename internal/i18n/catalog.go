package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync/atomic"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Text is a string in both page languages.
type Text struct {
	EN string `yaml:"en"`
	PT string `yaml:"pt"`
}

// In returns the text for tag, falling back to English.
func (t Text) In(tag language.Tag) string {
	if Code(tag) == "pt" && t.PT != "" {
		return t.PT
	}
	return t.EN
}

// Project is a portfolio project card.
type Project struct {
	Title Text   `yaml:"title"`
	Body  Text   `yaml:"body"`
	Link  string `yaml:"link"`
	Image string `yaml:"image"`
}

// Entry is a work or education timeline entry.
type Entry struct {
	Title   Text   `yaml:"title"`
	Place   string `yaml:"place"`
	Start   Text   `yaml:"start"`
	End     Text   `yaml:"end"`
	Logo    string `yaml:"logo"`
	Bullets []Text `yaml:"bullets"`
}

// Catalog is the bilingual page content.
type Catalog struct {
	Name      string          `yaml:"name"`
	Strings   map[string]Text `yaml:"strings"`
	About     Text            `yaml:"about"`
	Projects  []Project       `yaml:"projects"`
	Hobbies   []Project       `yaml:"hobbies"`
	Work      []Entry         `yaml:"work"`
	Education []Entry         `yaml:"education"`
}

var ErrEmptyCatalog = errors.New("i18n: catalog has no strings")

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(c.Strings) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &c, nil
}

// LoadFS reads and parses name from fsys.
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	return Parse(data)
}

// LoadFile reads and parses a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Text returns key in tag, falling back to English and then to the key.
func (c *Catalog) Text(tag language.Tag, key string) string {
	t, ok := c.Strings[key]
	if !ok {
		return key
	}
	if s := t.In(tag); s != "" {
		return s
	}
	return key
}

// Store holds the live catalog; readers never block a reload.
type Store struct {
	cur atomic.Pointer[Catalog]
}

func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.cur.Store(c)
	return s
}

func (s *Store) Catalog() *Catalog { return s.cur.Load() }

func (s *Store) Swap(c *Catalog) { s.cur.Store(c) }
