package sitegen

import "testing"

func TestPageURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"https://example.com", "services/index.html", "https://example.com/services/index.html"},
		{"https://example.com/", "services/index.html", "https://example.com/services/index.html"},
		{"https://example.com/en", "/lead-generation/sem/index.html", "https://example.com/en/lead-generation/sem/index.html"},
		{"https://example.com", "", "https://example.com/"},
	}
	for _, tt := range tests {
		if got := PageURL(tt.base, tt.path); got != tt.want {
			t.Errorf("PageURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestDefaultBreadcrumb(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"services/ecommerce/shopify.html", "Shopify"},
		{"services/cloud-architecture/google-cloud.html", "Google Cloud"},
		{"lead-generation/sem/index.html", "Sem"},
		{"lead-generation/index.html", "Lead Generation"},
		{"services/web_apps.html", "Web Apps"},
		{"index.html", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DefaultBreadcrumb(tt.path); got != tt.want {
			t.Errorf("DefaultBreadcrumb(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestThemeForResolvesPalette(t *testing.T) {
	if got := ThemeFor("purple"); got.From != "from-purple-600" || got.Text != "text-purple-600" {
		t.Errorf("ThemeFor(purple) = %+v", got)
	}
	if got, want := ThemeFor("chartreuse"), ThemeFor("blue"); got != want {
		t.Errorf("ThemeFor(chartreuse) = %+v, want blue %+v", got, want)
	}
}
