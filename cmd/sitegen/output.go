package main

import (
	"fmt"
	"io"
	"os"
)

// output prints user-facing progress lines, colored when writing to a terminal.
type output struct {
	w            io.Writer
	enableColors bool
}

func newOutput(w io.Writer) *output {
	o := &output{w: w}
	if f, ok := w.(*os.File); ok {
		o.enableColors = isTerminal(f)
	}
	return o
}

func (o *output) green(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[32m" + text + "\033[0m"
}

func (o *output) yellow(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[33m" + text + "\033[0m"
}

func (o *output) gray(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[90m" + text + "\033[0m"
}

func (o *output) created(path string) {
	fmt.Fprintf(o.w, "Created: %s\n", path)
}

func (o *output) success(msg string, args ...any) {
	fmt.Fprintf(o.w, "\n"+o.green("✓ ")+"%s\n", fmt.Sprintf(msg, args...))
}

func (o *output) warning(msg string, args ...any) {
	fmt.Fprintf(o.w, o.yellow("⚠ ")+"%s\n", fmt.Sprintf(msg, args...))
}

func (o *output) note(msg string, args ...any) {
	fmt.Fprintln(o.w, o.gray(fmt.Sprintf(msg, args...)))
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
