// Package models holds the versioned model types shipped with this module.
// Each model declares its full schema history and decodes through the
// versionable protocol; instances constructed in code always carry the
// latest version.
package models

import (
	versionable "github.com/CenterforYouthEngagement/Versionable"
)

// Profile is a person record.
//
// Schema history:
//
//	v0: firstName, lastName
//	v1: adds optional middleName
type Profile struct {
	FirstName  string              `json:"firstName"`
	MiddleName *string             `json:"middleName,omitempty"`
	LastName   string              `json:"lastName"`
	Version    versionable.Version `json:"version"`
}

// NewProfile builds a Profile at the current schema version.
func NewProfile(first, last string) Profile {
	return Profile{
		FirstName: first,
		LastName:  last,
		Version:   profileVersions.Latest(),
	}
}

// Versions declares the schema history of Profile.
func (Profile) Versions() versionable.Set[Profile] {
	return profileVersions
}

var profileVersions versionable.Set[Profile]

// The extractors read profileVersions back for Latest, so the set is built
// in init rather than in the variable initializer.
func init() {
	profileVersions = versionable.Declare("profile",
		versionable.Case[Profile]{Version: 0, Explanation: "initial shape", Extract: extractProfileV0},
		versionable.Case[Profile]{Version: 1, Explanation: "added optional middleName", Extract: extractProfileV1},
	)
}

// middleName is optional in the current shape, so the initial layout decodes
// through the current extractor with an empty delta.
func extractProfileV0(c *versionable.Container) (Profile, error) {
	return extractProfileV1(c)
}

func extractProfileV1(c *versionable.Container) (Profile, error) {
	first, err := c.String("firstName")
	if err != nil {
		return Profile{}, err
	}
	last, err := c.String("lastName")
	if err != nil {
		return Profile{}, err
	}
	middle, err := c.OptionalString("middleName")
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		FirstName:  first,
		MiddleName: middle,
		LastName:   last,
		Version:    profileVersions.Latest(),
	}, nil
}
