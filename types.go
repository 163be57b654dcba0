package sitegen

import "github.com/eringen/sitegen/views"

// PageConfig is the per-page metadata record driving template substitution.
type PageConfig struct {
	Title      string   `yaml:"title"`
	H1         string   `yaml:"h1"`
	Desc       string   `yaml:"desc"`
	Breadcrumb string   `yaml:"breadcrumb,omitempty"` // reserved, not rendered
	Color      string   `yaml:"color,omitempty"`
	Services   []string `yaml:"services,omitempty"`
	Stats      []string `yaml:"stats,omitempty"`
}

// ColorTheme is the bundle of class fragments a color name resolves to.
type ColorTheme = views.Theme

// ThemeFor resolves a color name, falling back to the blue theme.
func ThemeFor(color string) ColorTheme {
	return views.ThemeFor(color)
}

// Page binds a PageConfig to its output path relative to the output directory.
type Page struct {
	Path   string
	Config PageConfig
}

// Breadcrumb returns the configured breadcrumb, or one derived from the path
// when the config leaves it empty.
func (p Page) Breadcrumb() string {
	if p.Config.Breadcrumb != "" {
		return p.Config.Breadcrumb
	}
	return DefaultBreadcrumb(p.Path)
}
