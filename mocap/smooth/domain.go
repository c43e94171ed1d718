package smooth

import (
	"fmt"
	"strings"
)

// Domain is a set of signal domains.
type Domain uint8

const (
	// Markers selects the X and Y components of every marker trajectory.
	Markers Domain = 1 << iota
	// Forces selects the analog channels owned by force platforms.
	Forces
	// Analog selects the analog channels not owned by any force platform.
	Analog

	// AllDomains selects every domain.
	AllDomains = Markers | Forces | Analog
)

// Has reports whether every domain in o is part of d.
func (d Domain) Has(o Domain) bool { return o != 0 && d&o == o }

// Empty reports whether no domain is selected.
func (d Domain) Empty() bool { return d&AllDomains == 0 }

// String returns the selected domains joined by "+", e.g. "markers+analog".
func (d Domain) String() string {
	if d.Empty() {
		return "none"
	}
	var parts []string
	for _, e := range domainNames {
		if d.Has(e.domain) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "+")
}

var domainNames = []struct {
	name   string
	domain Domain
}{
	{"markers", Markers},
	{"forces", Forces},
	{"analog", Analog},
}

// ParseDomains parses a comma or plus separated list of domain names.
// "all" selects every domain. An empty string yields an empty set.
func ParseDomains(s string) (Domain, error) {
	var d Domain
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '+' || r == ' ' })
	for _, f := range fields {
		name := strings.ToLower(strings.TrimSpace(f))
		if name == "all" {
			d |= AllDomains
			continue
		}
		found := false
		for _, e := range domainNames {
			if e.name == name {
				d |= e.domain
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown domain %q (want markers, forces, analog or all)", f)
		}
	}
	return d, nil
}
