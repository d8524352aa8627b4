package profile

import (
	"net/url"
	"strings"
)

// Profile holds the optional descriptive fields a user submits with a
// roadmap request. All fields are freeform untrusted text; an empty string
// means the field was never supplied.
type Profile struct {
	Name         string
	Age          string
	Experience   string
	CurrentCerts string
	Interest     string
}

// FromValues builds a Profile from request query parameters. Each field is
// whitespace-trimmed; a blank parameter falls back to the corresponding
// field of prior (typically the profile stored for the session). There is
// no validation beyond trimming.
func FromValues(values url.Values, prior Profile) Profile {
	return Profile{
		Name:         pick(values.Get("name"), prior.Name),
		Age:          pick(values.Get("age"), prior.Age),
		Experience:   pick(values.Get("experience"), prior.Experience),
		CurrentCerts: pick(values.Get("current_certs"), prior.CurrentCerts),
		Interest:     pick(values.Get("interest"), prior.Interest),
	}
}

func pick(raw, fallback string) string {
	if v := strings.TrimSpace(raw); v != "" {
		return v
	}
	return fallback
}

// IsEmpty reports whether no field is populated.
func (p Profile) IsEmpty() bool {
	return p == Profile{}
}

// Lines renders the populated fields as labeled lines, one per field, in a
// fixed order. Absent fields produce no line. The result is empty for an
// empty profile.
func (p Profile) Lines() string {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, "- "+label+": "+value)
		}
	}
	add("Name", p.Name)
	add("Age", p.Age)
	add("Experience Level", p.Experience)
	add("Current Certifications", p.CurrentCerts)
	add("Areas of Interest", p.Interest)
	return strings.Join(lines, "\n")
}
