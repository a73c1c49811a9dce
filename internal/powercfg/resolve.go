package powercfg

import "strings"

// nameID is a resolution candidate: a display name and the opaque GUID
// powercfg wants on the command line.
type nameID struct {
	Name string
	ID   string
}

// filterContains returns the candidates whose name contains query as a
// case-sensitive, unanchored substring. An empty query selects everything.
func filterContains(cands []nameID, query string) []nameID {
	if query == "" {
		return cands
	}
	var matched []nameID
	for _, c := range cands {
		if strings.Contains(c.Name, query) {
			matched = append(matched, c)
		}
	}
	return matched
}

// resolveUnique narrows candidates to exactly one match.
// Zero matches is NotFoundError, more than one is AmbiguousMatchError.
func resolveUnique(cands []nameID, query string) (nameID, error) {
	matched := filterContains(cands, query)
	switch len(matched) {
	case 0:
		return nameID{}, &NotFoundError{Query: query}
	case 1:
		return matched[0], nil
	default:
		return nameID{}, &AmbiguousMatchError{Query: query, Matches: len(matched)}
	}
}
