package sitegen

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PageURL joins a base URL with a table path. Unlike directory-style URLs no
// trailing slash is added, since table paths name .html files.
func PageURL(base, pagePath string) string {
	u, err := url.Parse(base)
	if err != nil {
		return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(pagePath, "/")
	}
	u.Path = path.Join("/", u.Path, pagePath)
	return u.String()
}

// DefaultBreadcrumb derives a breadcrumb label from a table path:
// "services/ecommerce/shopify.html" gives "Shopify" and an index page takes
// its directory name, so "lead-generation/sem/index.html" gives "Sem".
func DefaultBreadcrumb(pagePath string) string {
	clean := path.Clean("/" + pagePath)
	name := strings.TrimSuffix(path.Base(clean), path.Ext(clean))
	if name == "index" {
		name = path.Base(path.Dir(clean))
	}
	if name == "/" || name == "." || name == "" {
		return ""
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(name)
}
