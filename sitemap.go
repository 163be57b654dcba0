package sitegen

import (
	"bytes"
	"encoding/xml"
	"path/filepath"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// SitemapFile is the name of the sitemap written next to the pages.
const SitemapFile = "sitemap.xml"

func renderSitemap(base string, table Table) ([]byte, error) {
	urls := make([]sitemapURL, 0, len(table))
	for _, p := range table {
		urls = append(urls, sitemapURL{Loc: PageURL(base, p.Path)})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeSitemap(dir, baseURL string, table Table) error {
	data, err := renderSitemap(baseURL, table)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, SitemapFile), bytes.NewReader(data))
}
