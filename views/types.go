package views

// Site holds the site-wide values baked into every page skeleton.
// The generator fills it from its own SiteConfig so nothing is hardcoded here.
type Site struct {
	Name          string // brand shown in the header and footer
	Stylesheet    string // href of the single stylesheet link
	NavRoot       string // prefix of the absolute nav links, no trailing slash
	CopyrightYear int
}

// PageData carries one page's fields into the Page component.
type PageData struct {
	Title    string
	H1       string
	Desc     string
	Theme    Theme
	Services []string
	Stats    []string
}

// Theme is a named bundle of Tailwind class fragments for one accent color.
type Theme struct {
	From   string // gradient start
	To     string // gradient end
	Text   string // accent text
	Bg     string // accent background
	Border string // accent border
}
