package sitegen

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// tableFile is the on-disk YAML shape of a Table. A list keeps the table
// order explicit:
//
//	pages:
//	  - path: services/ecommerce/shopify.html
//	    title: Shopify Development | IntelliCloud
//	    color: green
//	    services: [Store Setup & Design, App Integration]
type tableFile struct {
	Pages []tableEntry `yaml:"pages"`
}

type tableEntry struct {
	Path       string `yaml:"path"`
	PageConfig `yaml:",inline"`
}

// ParseTable decodes a YAML page table. Repeated paths collapse the way
// NewTable collapses them.
func ParseTable(data []byte) (Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("sitegen: parse page table: %w", err)
	}
	pages := make([]Page, 0, len(f.Pages))
	for _, e := range f.Pages {
		pages = append(pages, Page{Path: e.Path, Config: e.PageConfig})
	}
	return NewTable(pages...), nil
}

// LoadTable reads and decodes the YAML page table at path.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sitegen: read page table: %w", err)
	}
	return ParseTable(data)
}

// MarshalTable encodes t in the format ParseTable reads.
func MarshalTable(t Table) ([]byte, error) {
	f := tableFile{Pages: make([]tableEntry, 0, len(t))}
	for _, p := range t {
		f.Pages = append(f.Pages, tableEntry{Path: p.Path, PageConfig: p.Config})
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("sitegen: encode page table: %w", err)
	}
	return data, nil
}

// SaveTable writes t as YAML to path, replacing any existing file atomically.
func SaveTable(path string, t Table) error {
	data, err := MarshalTable(t)
	if err != nil {
		return err
	}
	return writeFile(path, bytes.NewReader(data))
}
