package models

import "regexp"

// uuidPattern is the canonical 8-4-4-4-12 hexadecimal textual UUID form.
var uuidPattern = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ProfileRef references a security profile either by its human readable name
// or by its opaque identifier. Exactly one of the two is set.
type ProfileRef struct {
	name string
	id   string
}

// ProfileByName returns a reference to the profile called name.
func ProfileByName(name string) ProfileRef {
	return ProfileRef{name: name}
}

// ProfileByID returns a reference to the profile with identifier id.
func ProfileByID(id string) ProfileRef {
	return ProfileRef{id: id}
}

// ClassifyProfile treats values shaped like a canonical UUID as identifiers
// and everything else as names.
func ClassifyProfile(value string) ProfileRef {
	if uuidPattern.MatchString(value) {
		return ProfileByID(value)
	}
	return ProfileByName(value)
}

// Name returns the profile name and whether the reference is by name.
func (p ProfileRef) Name() (string, bool) {
	return p.name, p.id == ""
}

// ID returns the profile id and whether the reference is by id.
func (p ProfileRef) ID() (string, bool) {
	return p.id, p.id != ""
}

// IsZero reports whether the reference names no profile at all.
func (p ProfileRef) IsZero() bool {
	return p.name == "" && p.id == ""
}

// AIProfile converts the reference to its wire form.
func (p ProfileRef) AIProfile() AIProfile {
	if p.id != "" {
		return AIProfile{ProfileID: p.id}
	}
	return AIProfile{ProfileName: p.name}
}
