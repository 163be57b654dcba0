package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/sitegen/scaffold"
	"github.com/eringen/sitegen/views"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	SiteName string
	Colors   string
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter sitegen.yaml and pages.yaml",
		Long: `init writes a config file and a two-page YAML table into dir (default:
the current directory). Existing files are never overwritten. Build the
result with "sitegen --config sitegen.yaml" from that directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			name, _ := cmd.Flags().GetString("name")
			return runInit(dir, name, newOutput(cmd.OutOrStdout()))
		},
	}
}

func runInit(dir, name string, out *output) error {
	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		name = toTitle(filepath.Base(abs))
	}
	data := scaffoldData{
		SiteName: name,
		Colors:   strings.Join(views.Colors(), ", "),
	}

	files, err := renderScaffold(dir, data)
	if err != nil {
		return err
	}

	// Check every target first so a partial scaffold is never left behind.
	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			return fmt.Errorf("%s already exists", f.path)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var written []string
	for _, f := range files {
		if err := os.WriteFile(f.path, f.content, 0o644); err != nil {
			for _, p := range written {
				os.Remove(p)
			}
			return fmt.Errorf("create %s: %w", f.path, err)
		}
		written = append(written, f.path)
		out.created(f.path)
	}

	out.success("Initialized %s", name)
	out.note("  cd %s && sitegen --config sitegen.yaml", dir)
	return nil
}

type scaffoldFile struct {
	path    string
	content []byte
}

var scaffoldFuncs = template.FuncMap{
	"yaml": yamlScalar,
}

// renderScaffold executes every embedded template in memory.
func renderScaffold(dir string, data scaffoldData) ([]scaffoldFile, error) {
	root := "templates"
	entries, err := fs.ReadDir(scaffold.Templates, root)
	if err != nil {
		return nil, err
	}

	files := make([]scaffoldFile, 0, len(entries))
	for _, e := range entries {
		path := root + "/" + e.Name()
		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		tmpl, err := template.New(e.Name()).Funcs(scaffoldFuncs).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", path, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("execute template %s: %w", path, err)
		}
		files = append(files, scaffoldFile{
			path:    filepath.Join(dir, strings.TrimSuffix(e.Name(), ".tmpl")),
			content: buf.Bytes(),
		})
	}
	return files, nil
}

// yamlScalar encodes s as a single-line YAML scalar, quoted when it holds
// characters such as " #" or ": ".
func yamlScalar(s string) (string, error) {
	if strings.ContainsAny(s, "\r\n") {
		return "", fmt.Errorf("value %q spans multiple lines", s)
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string:
// "my-agency" gives "My Agency".
func toTitle(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return cases.Title(language.English).String(s)
}
