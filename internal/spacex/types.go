package spacex

import "strings"

// Launchpad mirrors an element of the /v4/launchpads payload.
type Launchpad struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Region          string   `json:"region"`
	Locality        string   `json:"locality"`
	Status          string   `json:"status"`
	LaunchAttempts  int      `json:"launch_attempts"`
	LaunchSuccesses int      `json:"launch_successes"`
	Images          *Images  `json:"images,omitempty"`
	Launches        []string `json:"launches,omitempty"`
}

// Images groups the image URLs published for a launchpad.
type Images struct {
	Large []string `json:"large"`
}

// FirstImage returns the first large image URL when one is present.
func (l Launchpad) FirstImage() (string, bool) {
	if l.Images == nil {
		return "", false
	}
	for _, u := range l.Images.Large {
		if strings.TrimSpace(u) != "" {
			return u, true
		}
	}
	return "", false
}

// DisplayName returns the short name, falling back to the full name or ID.
func (l Launchpad) DisplayName() string {
	if name := strings.TrimSpace(l.Name); name != "" {
		return name
	}
	if name := strings.TrimSpace(l.FullName); name != "" {
		return name
	}
	return "Launchpad " + l.ID
}
