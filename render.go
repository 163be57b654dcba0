package sitegen

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/sitegen/views"
)

// Render returns the complete HTML document for cfg using the default site
// settings. It has no side effects and cannot fail.
func Render(cfg PageConfig) string {
	return RenderSite(SiteConfig{}, cfg)
}

// RenderSite is Render with explicit site settings; zero fields take defaults.
func RenderSite(site SiteConfig, cfg PageConfig) string {
	var b strings.Builder
	// Writes into a strings.Builder never fail and the components have no
	// other error source.
	_ = PageComponent(site, cfg).Render(context.Background(), &b)
	return b.String()
}

// PageComponent returns the templ component rendering cfg as a full document.
func PageComponent(site SiteConfig, cfg PageConfig) templ.Component {
	site.setDefaults()
	return views.Page(viewSite(site), viewPage(cfg))
}

func viewSite(c SiteConfig) views.Site {
	return views.Site{
		Name:          c.Name,
		Stylesheet:    c.Stylesheet,
		NavRoot:       c.NavRoot,
		CopyrightYear: c.CopyrightYear,
	}
}

func viewPage(cfg PageConfig) views.PageData {
	return views.PageData{
		Title:    cfg.Title,
		H1:       cfg.H1,
		Desc:     cfg.Desc,
		Theme:    views.ThemeFor(cfg.Color),
		Services: cfg.Services,
		Stats:    cfg.Stats,
	}
}
