package cards

import "slices"

// Filter returns all cards that match the include tag set and do not match
// the exclude tag set. Exclusion is applied after inclusion. A card without
// tags matches a set only through the untagged sentinel. The input slice is
// never modified.
func Filter(in []Card, include []Tag, exclude []Tag) []Card {
	out := make([]Card, 0, len(in))
	for _, c := range in {
		if !matchesAny(c, include) {
			continue
		}
		if matchesAny(c, exclude) {
			continue
		}
		out = append(out, c)
	}

	return out
}

func matchesAny(c Card, tags []Tag) bool {
	if len(c.Tags) == 0 {
		return slices.Contains(tags, TagUntagged)
	}

	for _, t := range c.Tags {
		if slices.Contains(tags, t) {
			return true
		}
	}

	return false
}
