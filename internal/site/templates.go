package site

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed templates/*.html templates/*.css templates/*.js
var embeddedTemplates embed.FS

// Templates holds the page shells and client assets the build inlines
// into its output.
type Templates struct {
	Page   string // index page shell
	Detail string // per-role page shell
	Styles string
	Script string
}

// LoadTemplates returns the embedded template set, or the contents of
// overrideDir when given. A missing or incomplete override directory
// is an error; templates are the one resource the build cannot
// degrade around.
func LoadTemplates(overrideDir string) (*Templates, error) {
	read := func(name string) (string, error) {
		if overrideDir != "" {
			data, err := os.ReadFile(filepath.Join(overrideDir, name))
			if err != nil {
				return "", fmt.Errorf("failed to read template %s from %s: %w", name, overrideDir, err)
			}
			return string(data), nil
		}
		data, err := embeddedTemplates.ReadFile("templates/" + name)
		if err != nil {
			return "", fmt.Errorf("failed to read embedded template %s: %w", name, err)
		}
		return string(data), nil
	}

	var t Templates
	var err error
	if t.Page, err = read("template.html"); err != nil {
		return nil, err
	}
	if t.Detail, err = read("detail.html"); err != nil {
		return nil, err
	}
	if t.Styles, err = read("styles.css"); err != nil {
		return nil, err
	}
	if t.Script, err = read("script.js"); err != nil {
		return nil, err
	}
	return &t, nil
}
