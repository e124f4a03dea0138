package types

// Interaction is a single touchpoint with a contact. Type is a small
// tag vocabulary (call, email, coffee, ...) used as a styling class.
type Interaction struct {
	Date       string   `json:"date" validate:"required"`
	Type       string   `json:"type,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	LinkedJobs []string `json:"linkedJobs,omitempty"` // "Company - Role" references
}

// Contact represents one person in the network, with their interaction
// history. Interactions are usually stored in chronological order but
// the build does not rely on it: most-recent lookups scan by date.
type Contact struct {
	ID           string        `json:"id,omitempty"`
	Name         string        `json:"name" validate:"required"`
	Company      string        `json:"company,omitempty"`
	Title        string        `json:"title,omitempty"`
	LinkedIn     string        `json:"linkedin,omitempty"`
	Added        string        `json:"added,omitempty"`
	Interactions []Interaction `json:"interactions,omitempty"`
}

// LastInteraction returns the most recent interaction by date, or nil
// when the contact has none. Ties resolve to the later element so that
// chronologically stored input behaves as recorded.
func (c Contact) LastInteraction() *Interaction {
	var last *Interaction
	for i := range c.Interactions {
		if last == nil || c.Interactions[i].Date >= last.Date {
			last = &c.Interactions[i]
		}
	}
	return last
}

// NetworkData is the full network document.
type NetworkData struct {
	Contacts []Contact `json:"contacts"`
}
