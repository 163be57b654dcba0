package views

import "strings"

// SplitStat splits a stat callout such as "300+ Websites Built" into its
// headline token ("300+") and caption ("Websites Built"). Runs of whitespace
// collapse to single spaces in the caption. A single-token stat has an empty
// caption and a blank stat yields two empty strings.
func SplitStat(stat string) (headline, caption string) {
	fields := strings.Fields(stat)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// navHref joins the nav root with a page path below it.
func navHref(root, page string) string {
	return strings.TrimRight(root, "/") + "/" + page
}
