// Package slug derives URL-path-safe identifiers for per-role detail
// pages. Slugs are build-scoped: they are recomputed every run, so the
// numeric collision suffixes depend only on input ordering, not on any
// previous build.
package slug

import (
	"strconv"
	"strings"

	"github.com/jonathan/status-page/internal/types"
)

// Make normalizes company and role into a base slug: lowercased,
// non-alphanumeric runs collapsed to single hyphens, edge hyphens trimmed.
func Make(company, role string) string {
	var b strings.Builder
	lastHyphen := true // swallows leading separators
	for _, r := range strings.ToLower(company + " " + role) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Key is the identity under which a role's slug is stored: "Company|Role".
func Key(company, role string) string {
	return company + "|" + role
}

// Map associates role identity with its assigned slug.
type Map map[string]string

// Build assigns a slug to every role across all three collections, in
// encounter order. The first role to produce a base slug keeps it bare;
// later collisions get -1, -2, ... appended. Because suffixing depends
// on encounter order, Build must see roles in a fixed order.
func Build(tracker types.TrackerData) Map {
	m := make(Map)
	seen := make(map[string]int)
	assign := func(roles []types.Role) {
		for _, r := range roles {
			base := Make(r.Company, r.Role)
			s := base
			if n, ok := seen[base]; ok {
				s = base + "-" + strconv.Itoa(n)
				seen[base] = n + 1
			} else {
				seen[base] = 1
			}
			m[Key(r.Company, r.Role)] = s
		}
	}
	assign(tracker.Active)
	assign(tracker.Closed)
	assign(tracker.Skipped)
	return m
}

// Lookup returns the slug for a role, or "" when the role was not part
// of the build.
func (m Map) Lookup(company, role string) string {
	return m[Key(company, role)]
}
