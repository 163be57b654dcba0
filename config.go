package sitegen

import "log/slog"

// SiteConfig holds the site-wide values of a generator run.
type SiteConfig struct {
	Name          string // Brand in header and footer (default "IntelliCloud")
	URL           string // Canonical base URL, used only for sitemap.xml
	OutputDir     string // Base output directory (default "public")
	Stylesheet    string // Stylesheet href (default "/src/styles/tailwind.css")
	NavRoot       string // Prefix of the absolute nav links (default "/src/pages/en")
	CopyrightYear int    // Footer year (default 2025)
	Sitemap       bool   // Write sitemap.xml after the pages; requires URL
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "IntelliCloud"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if c.Stylesheet == "" {
		c.Stylesheet = "/src/styles/tailwind.css"
	}
	if c.NavRoot == "" {
		c.NavRoot = "/src/pages/en"
	}
	if c.CopyrightYear == 0 {
		c.CopyrightYear = 2025
	}
}

// Option configures additional Writer behavior.
type Option func(*Writer)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(w *Writer) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithOnWrite registers a callback invoked with the table-relative path of
// every page after it has been written.
func WithOnWrite(fn func(path string)) Option {
	return func(w *Writer) {
		w.onWrite = append(w.onWrite, fn)
	}
}
