package sitegen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testTable() Table {
	return NewTable(
		Page{Path: "services/index.html", Config: PageConfig{Title: "Services", H1: "Services", Desc: "All services", Color: "blue"}},
		Page{Path: "services/ecommerce/shopify.html", Config: shopify},
		Page{Path: "lead-generation/sem/index.html", Config: PageConfig{Title: "SEM", H1: "SEM", Desc: "Paid search", Color: "orange"}},
	)
}

func TestGenerateWritesEveryPage(t *testing.T) {
	dir := t.TempDir()
	table := testTable()

	n, err := Generate(table, dir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if n != len(table) {
		t.Fatalf("Generate wrote %d pages, want %d", n, len(table))
	}

	for _, p := range table {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(p.Path)))
		if err != nil {
			t.Fatalf("page %s not written: %v", p.Path, err)
		}
		if got, want := string(data), Render(p.Config); got != want {
			t.Errorf("page %s content differs from Render", p.Path)
		}
	}

	info, err := os.Stat(filepath.Join(dir, "services", "index.html"))
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Errorf("new page mode = %o, want 644", perm)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	table := testTable()

	if _, err := Generate(table, dir); err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	path := filepath.Join(dir, "services", "ecommerce", "shopify.html")
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if _, err := Generate(table, dir); err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(first) != string(second) {
		t.Error("second run changed the page")
	}
}

func TestGenerateOverwritesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "services", "index.html")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("stale content that is much longer than nothing"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Generate(testTable(), dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("existing file was not replaced")
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Errorf("unexpected content: %q", string(data[:20]))
	}
}

func TestGenerateEmptyTable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")

	n, err := Generate(nil, dir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if n != 0 {
		t.Errorf("wrote %d pages, want 0", n)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestGenerateBaseDirIsFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "public")
	if err := os.WriteFile(base, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := Generate(testTable(), base)
	if err == nil {
		t.Fatal("expected an error when the base directory is a file")
	}
	if n != 0 {
		t.Errorf("wrote %d pages, want 0", n)
	}
	var fsErr *FSError
	if !errors.As(err, &fsErr) {
		t.Fatalf("error %v is not an *FSError", err)
	}
	if fsErr.Op != "mkdir" {
		t.Errorf("Op = %q, want mkdir", fsErr.Op)
	}
}

func TestGenerateStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	table := NewTable(
		Page{Path: "a.html", Config: PageConfig{Title: "A"}},
		Page{Path: "../escape.html", Config: PageConfig{Title: "Escape"}},
		Page{Path: "c.html", Config: PageConfig{Title: "C"}},
	)

	n, err := Generate(table, dir)
	if !errors.Is(err, ErrUnsafePath) {
		t.Fatalf("err = %v, want ErrUnsafePath", err)
	}
	if n != 1 {
		t.Errorf("wrote %d pages before failing, want 1", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.html")); err != nil {
		t.Errorf("page before the failure should exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "c.html")); !os.IsNotExist(err) {
		t.Error("page after the failure should not be written")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.html")); !os.IsNotExist(err) {
		t.Error("page escaped the output directory")
	}
}

func TestWriterRejectsUnsafePaths(t *testing.T) {
	for _, p := range []string{"", "/etc/passwd.html", "../x.html", "a/../../x.html"} {
		w := NewWriter(SiteConfig{OutputDir: t.TempDir()})
		_, err := w.Write(Table{{Path: p}})
		var fsErr *FSError
		if !errors.As(err, &fsErr) || fsErr.Op != "resolve" {
			t.Errorf("path %q: err = %v, want resolve FSError", p, err)
		}
	}
}

func TestWriterOnWriteOrder(t *testing.T) {
	var got []string
	w := NewWriter(SiteConfig{OutputDir: t.TempDir()}, WithOnWrite(func(path string) {
		got = append(got, path)
	}))

	table := testTable()
	if _, err := w.Write(table); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := table.Paths()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("onWrite order = %v, want %v", got, want)
	}
}

func TestWriterDefaults(t *testing.T) {
	cfg := NewWriter(SiteConfig{}, WithLogger(nil)).Config()
	if cfg.Name != "IntelliCloud" || cfg.OutputDir != "public" || cfg.CopyrightYear != 2025 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Stylesheet != "/src/styles/tailwind.css" || cfg.NavRoot != "/src/pages/en" {
		t.Errorf("unexpected link defaults: %+v", cfg)
	}
}

func TestWriterSitemap(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(SiteConfig{OutputDir: dir, URL: "https://example.com/site/", Sitemap: true})
	if _, err := w.Write(testTable()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SitemapFile))
	if err != nil {
		t.Fatalf("sitemap not written: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("sitemap missing XML header: %q", out)
	}
	for _, want := range []string{
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		"<loc>https://example.com/site/services/index.html</loc>",
		"<loc>https://example.com/site/services/ecommerce/shopify.html</loc>",
		"<loc>https://example.com/site/lead-generation/sem/index.html</loc>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("sitemap missing %q", want)
		}
	}
}

func TestWriterSitemapNeedsURL(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(SiteConfig{OutputDir: dir, Sitemap: true})
	if _, err := w.Write(testTable()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, SitemapFile)); !os.IsNotExist(err) {
		t.Error("sitemap written without a base URL")
	}
}

func TestFSErrorMessage(t *testing.T) {
	err := &FSError{Op: "write", Path: "public/a.html", Err: os.ErrPermission}
	if got, want := err.Error(), "sitegen: write public/a.html: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("FSError should unwrap to its cause")
	}
}
