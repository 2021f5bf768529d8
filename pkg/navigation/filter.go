package navigation

import (
	"fmt"

	"github.com/gobwas/glob"
)

// RemovePathMatching removes every destination whose ID matches the glob
// pattern, e.g. "profile/*" to drop all profile screens after a logout.
// Returns an error only when the pattern itself does not compile; matching
// nothing is not an error.
func (s *State) RemovePathMatching(pattern string) error {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return fmt.Errorf("invalid destination pattern %q: %w", pattern, err)
	}
	s.RemovePath(func(d Destination) bool {
		return g.Match(d.ID())
	})
	return nil
}

// PathMatching returns the destinations on the path whose IDs match the
// glob pattern, oldest first.
func (s *State) PathMatching(pattern string) ([]Destination, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid destination pattern %q: %w", pattern, err)
	}
	var matched []Destination
	for _, d := range s.path {
		if g.Match(d.ID()) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}
