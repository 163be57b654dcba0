// Package pages holds the compiled page table of the site.
package pages

import "github.com/eringen/sitegen"

// All returns the Services pages followed by the Lead Generation pages.
func All() sitegen.Table {
	return Services().Union(LeadGeneration())
}
