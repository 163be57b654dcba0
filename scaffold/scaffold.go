// Package scaffold embeds the starter files written by "sitegen init".
package scaffold

import "embed"

// Templates holds the starter config and page table. Files use Go
// text/template syntax and have a .tmpl suffix.
//
//go:embed templates
var Templates embed.FS
