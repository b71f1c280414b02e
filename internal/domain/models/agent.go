package models

// Agent is one member of the configured booking roster. The roster is data
// loaded at startup, not hardcoded branches; engine folds iterate it.
type Agent struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color"`
}

// Roster is the ordered set of agents eligible for assignment and settlement.
type Roster []Agent

// Contains reports whether id belongs to the roster.
func (r Roster) Contains(id string) bool {
	for _, a := range r {
		if a.ID == id {
			return true
		}
	}
	return false
}

// IDs returns roster ids in configured order.
func (r Roster) IDs() []string {
	out := make([]string, 0, len(r))
	for _, a := range r {
		out = append(out, a.ID)
	}
	return out
}
