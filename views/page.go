package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const headHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <meta name="description" content="%s">
  <link rel="stylesheet" href="%s">
</head>
<body class="bg-white">
`

const headerHTML = `  <header class="bg-white border-b border-gray-200 sticky top-0 z-50">
    <nav class="container mx-auto px-4 py-4">
      <div class="flex items-center justify-between">
        <a href="%[1]s" class="text-2xl font-bold">%[4]s</a>
        <div class="hidden md:flex items-center space-x-8">
          <a href="%[1]s" class="paragraph hover:text-blue-600">Home</a>
          <a href="%[2]s" class="paragraph hover:text-blue-600">Services</a>
          <a href="%[3]s" class="paragraph hover:text-blue-600">Lead Generation</a>
          <a href="#contact" class="paragraph hover:text-blue-600">Contact</a>
        </div>
        <a href="#contact" class="btn btn-primary btn-sm hidden md:inline-flex">Get Started</a>
      </div>
    </nav>
  </header>

`

const heroHTML = `  <section class="bg-gradient-to-br %s %s text-white py-20">
    <div class="container mx-auto px-4">
      <div class="max-w-4xl mx-auto text-center">
        <h1 class="text-4xl md:text-6xl font-bold mb-6">%s</h1>
        <p class="text-xl text-white/90 mb-8">%s</p>
      </div>
    </div>
  </section>

`

const servicesOpenHTML = `  <section class="py-16 bg-white">
    <div class="container mx-auto px-4">
      <div class="max-w-4xl mx-auto">
        <h2 class="heading heading-2 mb-8 text-center">Our Services</h2>
        <ul class="grid grid-cols-1 md:grid-cols-2 gap-4 mb-12">`

const servicesMidHTML = `</ul>
        <div class="grid grid-cols-2 md:grid-cols-4 gap-8 max-w-4xl mx-auto">`

const servicesCloseHTML = `</div>
      </div>
    </div>
  </section>

`

const serviceItemHTML = `<li class="flex items-start"><svg class="w-5 h-5 %s mr-2 mt-0.5" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M5 13l4 4L19 7"></path></svg><span class="paragraph paragraph-small">%s</span></li>`

const statItemHTML = `<div class="text-center"><div class="text-4xl font-bold %s mb-2">%s</div><p class="text-gray-600">%s</p></div>`

const ctaHTML = `  <section id="contact" class="py-16 bg-gradient-to-br %s %s text-white">
    <div class="container mx-auto px-4">
      <div class="max-w-4xl mx-auto text-center">
        <h2 class="text-4xl font-bold mb-6">Get Started Today</h2>
        <p class="text-xl text-white/90 mb-8">Let's discuss how we can help your business grow</p>
        <a href="%s#contact" class="btn btn-primary btn-lg bg-white %s hover:bg-gray-100">Contact Us</a>
      </div>
    </div>
  </section>

`

const footerHTML = `  <footer class="bg-gray-900 text-white py-12">
    <div class="container mx-auto px-4 text-center text-gray-400">
      <p>&copy; %d %s. All rights reserved.</p>
    </div>
  </footer>
</body>
</html>`

// Page returns the complete HTML document for one page. Text fields are
// HTML-escaped; class fragments and hrefs come from trusted configuration.
func Page(site Site, p PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sections := []templ.Component{
			Head(site, p.Title, p.Desc),
			Header(site),
			Hero(p.Theme, p.H1, p.Desc),
			Services(p.Theme, p.Services, p.Stats),
			CallToAction(site, p.Theme),
			Footer(site),
		}
		for _, s := range sections {
			if err := s.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Head renders the doctype, <head> and the opening <body> tag.
func Head(site Site, title, desc string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, headHTML, templ.EscapeString(title), templ.EscapeString(desc), site.Stylesheet)
		return err
	})
}

// Header renders the sticky site header with its nav links.
func Header(site Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, headerHTML,
			navHref(site.NavRoot, "index.html"),
			navHref(site.NavRoot, "services/index.html"),
			navHref(site.NavRoot, "lead-generation/index.html"),
			templ.EscapeString(site.Name),
		)
		return err
	})
}

// Hero renders the gradient hero section.
func Hero(theme Theme, h1, desc string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, heroHTML, theme.From, theme.To, templ.EscapeString(h1), templ.EscapeString(desc))
		return err
	})
}

// Services renders the services section holding the checklist and the stat grid.
func Services(theme Theme, services, stats []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, servicesOpenHTML); err != nil {
			return err
		}
		if err := ServiceList(theme, services).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, servicesMidHTML); err != nil {
			return err
		}
		if err := StatGrid(theme, stats).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, servicesCloseHTML)
		return err
	})
}

// ServiceList renders one check-marked <li> per service, in order.
func ServiceList(theme Theme, services []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, s := range services {
			if _, err := fmt.Fprintf(w, serviceItemHTML, theme.Text, templ.EscapeString(s)); err != nil {
				return err
			}
		}
		return nil
	})
}

// StatGrid renders one callout per stat: the headline token large, the rest as caption.
func StatGrid(theme Theme, stats []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, s := range stats {
			headline, caption := SplitStat(s)
			if _, err := fmt.Fprintf(w, statItemHTML, theme.Text, templ.EscapeString(headline), templ.EscapeString(caption)); err != nil {
				return err
			}
		}
		return nil
	})
}

// CallToAction renders the #contact section.
func CallToAction(site Site, theme Theme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, ctaHTML, theme.From, theme.To, navHref(site.NavRoot, "index.html"), theme.Text)
		return err
	})
}

// Footer renders the copyright footer and closes the document.
func Footer(site Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, footerHTML, site.CopyrightYear, templ.EscapeString(site.Name))
		return err
	})
}
