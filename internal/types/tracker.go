// Package types provides type definitions for the tracked job-search records
// consumed by the status page build.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Role represents one tracked role. The same shape covers all three
// lifecycle variants: active roles carry Stage and Next, closed roles
// carry Outcome and Closed, skipped roles carry Reason.
type Role struct {
	Company string `json:"company" validate:"required"`
	Role    string `json:"role" validate:"required"`
	URL     string `json:"url,omitempty" validate:"required"`
	Folder  string `json:"folder,omitempty"` // relative path to per-role documents; stripped before embedding
	Stage   string `json:"stage,omitempty"`
	Outcome string `json:"outcome,omitempty"`
	Added   string `json:"added,omitempty" validate:"required"`
	Updated string `json:"updated,omitempty"`
	Closed  string `json:"closed,omitempty"`
	Next    string `json:"next,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// TrackerData is the full tracker document: active, closed, and skipped
// roles. The build never mutates these records; display copies are
// derived where needed.
type TrackerData struct {
	Active  []Role `json:"active"`
	Closed  []Role `json:"closed"`
	Skipped []Role `json:"skipped"`
}

// Sanitized returns a deep copy of the tracker data with folder paths
// stripped, safe for embedding in generated output.
func (t TrackerData) Sanitized() TrackerData {
	return TrackerData{
		Active:  stripFolders(t.Active),
		Closed:  stripFolders(t.Closed),
		Skipped: stripFolders(t.Skipped),
	}
}

func stripFolders(roles []Role) []Role {
	out := make([]Role, len(roles))
	for i, r := range roles {
		r.Folder = ""
		out[i] = r
	}
	return out
}
