package versionable

import "fmt"

// Version is the integer-backed schema discriminant carried by every
// versioned model. Raw values are totally ordered; contiguity is not
// required.
type Version int

// Compare returns -1, 0 or 1 as v sorts before, equal to, or after o.
func (v Version) Compare(o Version) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	}
	return 0
}

// Case declares one schema version of model M: its raw discriminant value,
// a human-readable note on what changed (documentation only), and the
// extraction routine that reads that version's field layout out of a
// container and produces a current-shape instance.
type Case[M any] struct {
	Version     Version
	Explanation string
	Extract     func(*Container) (M, error)
}

// Set is the closed enumeration of every schema version of one model.
// It is fixed at Declare time; there is no registration afterwards.
type Set[M any] struct {
	name  string
	cases []Case[M]
}

// Declare builds the version set for a model. Cases must be listed in
// ascending version order; Validate checks that contract.
func Declare[M any](name string, cases ...Case[M]) Set[M] {
	cs := make([]Case[M], len(cases))
	copy(cs, cases)
	return Set[M]{name: name, cases: cs}
}

// Name returns the stable model name used for metrics labels and fixture
// filenames.
func (s Set[M]) Name() string {
	return s.name
}

// All returns every declared case in declaration order.
func (s Set[M]) All() []Case[M] {
	cs := make([]Case[M], len(s.cases))
	copy(cs, s.cases)
	return cs
}

// Latest returns the maximum declared version. It is recomputed from the
// full set on every call so a newly declared case is picked up without a
// hand-maintained constant.
func (s Set[M]) Latest() Version {
	var latest Version
	for i, c := range s.cases {
		if i == 0 || c.Version.Compare(latest) > 0 {
			latest = c.Version
		}
	}
	return latest
}

// ByValue looks up the case carrying the given raw version value.
func (s Set[M]) ByValue(v Version) (Case[M], bool) {
	for _, c := range s.cases {
		if c.Version == v {
			return c, true
		}
	}
	return Case[M]{}, false
}

// Explanation returns the documentation note for one declared version.
func (s Set[M]) Explanation(v Version) (string, bool) {
	c, ok := s.ByValue(v)
	if !ok {
		return "", false
	}
	return c.Explanation, true
}

// Validate checks the declaration contract: the set is non-empty, raw
// values are unique and declared in ascending order, and every case has an
// extractor. Decode never calls this; tests should, for every model.
func (s Set[M]) Validate() error {
	if len(s.cases) == 0 {
		return fmt.Errorf("versionable: %s: empty version set", s.name)
	}
	for i, c := range s.cases {
		if c.Extract == nil {
			return fmt.Errorf("versionable: %s: version %d has no extractor", s.name, c.Version)
		}
		if i == 0 {
			continue
		}
		prev := s.cases[i-1].Version
		switch c.Version.Compare(prev) {
		case 0:
			return fmt.Errorf("versionable: %s: duplicate version %d", s.name, c.Version)
		case -1:
			return fmt.Errorf("versionable: %s: version %d declared after %d", s.name, c.Version, prev)
		}
	}
	return nil
}
