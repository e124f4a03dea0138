// Package assemble merges rendered fragments into page templates with
// a single-pass, flat placeholder substitution. It is deliberately not
// a template engine: no nesting, no conditionals, no rescanning of
// substituted values.
package assemble

import (
	"fmt"
	"regexp"
)

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Apply substitutes {{KEY}} markers in the template from values. A
// marker with no supplied value stays in the output verbatim and is
// reported as a warning; visible leftovers are how substitution bugs
// get caught in the built page.
func Apply(template string, values map[string]string) (string, []string) {
	var warnings []string
	out := placeholderRe.ReplaceAllStringFunc(template, func(marker string) string {
		key := marker[2 : len(marker)-2]
		if v, ok := values[key]; ok {
			return v
		}
		warnings = append(warnings, fmt.Sprintf("unreplaced placeholder: %s", marker))
		return marker
	})
	return out, warnings
}
