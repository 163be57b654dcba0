package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return b.String()
}

func TestSplitStat(t *testing.T) {
	tests := []struct {
		stat         string
		wantHeadline string
		wantCaption  string
	}{
		{"300+ Websites Built", "300+", "Websites Built"},
		{"Proven", "Proven", ""},
		{"$50M+ Ad Spend", "$50M+", "Ad Spend"},
		{"  98%   Performance \t Score ", "98%", "Performance Score"},
		{"", "", ""},
		{"   ", "", ""},
	}
	for _, tt := range tests {
		headline, caption := SplitStat(tt.stat)
		if headline != tt.wantHeadline || caption != tt.wantCaption {
			t.Errorf("SplitStat(%q) = (%q, %q), want (%q, %q)", tt.stat, headline, caption, tt.wantHeadline, tt.wantCaption)
		}
	}
}

func TestThemeForKnownColors(t *testing.T) {
	for _, c := range []string{"blue", "purple", "green", "orange", "indigo", "pink", "cyan"} {
		theme := ThemeFor(c)
		if theme.From != "from-"+c+"-600" || theme.To != "to-"+c+"-700" {
			t.Errorf("ThemeFor(%q) gradient = %q %q", c, theme.From, theme.To)
		}
		if theme.Text != "text-"+c+"-600" {
			t.Errorf("ThemeFor(%q).Text = %q", c, theme.Text)
		}
		if theme.Bg != "bg-"+c+"-100" || theme.Border != "border-"+c+"-200" {
			t.Errorf("ThemeFor(%q) accents = %q %q", c, theme.Bg, theme.Border)
		}
		if !KnownColor(c) {
			t.Errorf("KnownColor(%q) = false", c)
		}
	}
	if got := len(Colors()); got != 7 {
		t.Errorf("Colors() has %d entries, want 7", got)
	}
}

func TestThemeForUnknownFallsBackToBlue(t *testing.T) {
	for _, c := range []string{"magenta", "", "Blue"} {
		if got, want := ThemeFor(c), ThemeFor(DefaultColor); got != want {
			t.Errorf("ThemeFor(%q) = %+v, want default %+v", c, got, want)
		}
		if KnownColor(c) {
			t.Errorf("KnownColor(%q) = true", c)
		}
	}
}

func TestServiceListOrderAndCount(t *testing.T) {
	services := []string{"Search Ads", "Display Ads", "Shopping Ads"}
	out := renderString(t, ServiceList(ThemeFor("green"), services))

	if got := strings.Count(out, "<li "); got != len(services) {
		t.Fatalf("rendered %d items, want %d", got, len(services))
	}
	last := -1
	for _, s := range services {
		i := strings.Index(out, `<span class="paragraph paragraph-small">`+s+`</span>`)
		if i < 0 {
			t.Fatalf("service %q missing from %s", s, out)
		}
		if i < last {
			t.Errorf("service %q out of order", s)
		}
		last = i
	}
	if !strings.Contains(out, `<svg class="w-5 h-5 text-green-600 mr-2 mt-0.5"`) {
		t.Errorf("check icon does not carry the theme text class: %s", out)
	}
}

func TestServiceListEmpty(t *testing.T) {
	if out := renderString(t, ServiceList(ThemeFor("blue"), nil)); out != "" {
		t.Errorf("empty service list rendered %q", out)
	}
}

func TestStatGrid(t *testing.T) {
	out := renderString(t, StatGrid(ThemeFor("orange"), []string{"300+ Websites Built", "Proven"}))

	want := `<div class="text-center"><div class="text-4xl font-bold text-orange-600 mb-2">300+</div><p class="text-gray-600">Websites Built</p></div>` +
		`<div class="text-center"><div class="text-4xl font-bold text-orange-600 mb-2">Proven</div><p class="text-gray-600"></p></div>`
	if out != want {
		t.Errorf("StatGrid =\n%s\nwant\n%s", out, want)
	}
}

func TestPageEscapesText(t *testing.T) {
	site := Site{Name: "Acme", Stylesheet: "/s.css", NavRoot: "/en", CopyrightYear: 2030}
	out := renderString(t, Page(site, PageData{
		Title:    `<script>alert(1)</script>`,
		Desc:     `say "hi" & go`,
		H1:       "Tom's",
		Theme:    ThemeFor("pink"),
		Services: []string{"<b>bold</b>"},
	}))

	for _, bad := range []string{"<script>", "<b>bold</b>", `"hi"`} {
		if strings.Contains(out, bad) {
			t.Errorf("unescaped %q in output", bad)
		}
	}
	for _, want := range []string{
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		`content="say &#34;hi&#34; &amp; go"`,
		`<a href="/en/services/index.html"`,
		`<link rel="stylesheet" href="/s.css">`,
		"&copy; 2030 Acme. All rights reserved.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestNavHref(t *testing.T) {
	tests := []struct {
		root, page, want string
	}{
		{"/src/pages/en", "index.html", "/src/pages/en/index.html"},
		{"/src/pages/en/", "services/index.html", "/src/pages/en/services/index.html"},
		{"", "index.html", "/index.html"},
	}
	for _, tt := range tests {
		if got := navHref(tt.root, tt.page); got != tt.want {
			t.Errorf("navHref(%q, %q) = %q, want %q", tt.root, tt.page, got, tt.want)
		}
	}
}
