package assetpath

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		src     string
		want    string
		changed bool
	}{
		{"dot relative on pages", "https://someone.github.io/portfolio/", "./images/me.jpg", "/portfolio/images/me.jpg", true},
		{"bare relative on pages", "https://someone.github.io/portfolio/index.html", "images/me.jpg", "/portfolio/images/me.jpg", true},
		{"absolute path kept", "https://someone.github.io/portfolio/", "/images/me.jpg", "/images/me.jpg", false},
		{"remote url kept", "https://someone.github.io/portfolio/", "https://cdn.example.com/a.png", "https://cdn.example.com/a.png", false},
		{"data uri kept", "https://someone.github.io/portfolio/", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA", false},
		{"user site has no segment", "https://someone.github.io/", "images/me.jpg", "images/me.jpg", false},
		{"other host untouched", "http://localhost:8080/portfolio/", "images/me.jpg", "images/me.jpg", false},
		{"empty src", "https://someone.github.io/portfolio/", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewResolver(tt.page)
			if err != nil {
				t.Fatalf("new resolver: %v", err)
			}
			got, changed := r.Resolve(tt.src)
			if got != tt.want || changed != tt.changed {
				t.Fatalf("Resolve(%q) = %q, %v; want %q, %v", tt.src, got, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestNewResolverRejectsBadURL(t *testing.T) {
	if _, err := NewResolver("http://[::1"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestBase(t *testing.T) {
	r, err := NewResolver("https://someone.github.io/site/about")
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	if r.Base() != "/site/" {
		t.Fatalf("base = %q, want /site/", r.Base())
	}
}

func TestAlternative(t *testing.T) {
	tests := []struct {
		src  string
		want string
		ok   bool
	}{
		{"/images/me.jpg", "images/me.jpg", true},
		{"https://someone.github.io/images/me.jpg", "images/me.jpg", true},
		{"images/me.jpg", "", false},
		{"//cdn.example.com/a.png", "", false},
		{"/", "", false},
	}
	for _, tt := range tests {
		got, ok := Alternative(tt.src)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("Alternative(%q) = %q, %v; want %q, %v", tt.src, got, ok, tt.want, tt.ok)
		}
	}
}
