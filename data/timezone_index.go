package data

import "strings"

// timezoneCandidate is one declared spelling of a timezone, tagged with
// the territory it's scoped to (empty means unscoped).
type timezoneCandidate struct {
	territory     string
	offsetMinutes int
}

// timezoneIndex resolves a timezone name to a UTC offset following a
// territory-priority rule: a name shared by more than one
// zone prefers, in order, the candidate whose territory matches the
// configured user locale's region, then the "001" (world) candidate,
// then the first candidate with no territory, then simply the first
// declared candidate. Candidates are kept in declaration order (a slice,
// not a map) so "first declared" is deterministic.
type timezoneIndex struct {
	byName map[string][]timezoneCandidate
}

func buildTimezoneIndex(doc TimezonesDocument) *timezoneIndex {
	idx := &timezoneIndex{byName: make(map[string][]timezoneCandidate)}
	for _, tz := range doc.Timezones {
		for _, n := range tz.Names {
			key := strings.ToLower(n.Name)
			idx.byName[key] = append(idx.byName[key], timezoneCandidate{
				territory:     strings.ToUpper(n.Territory),
				offsetMinutes: tz.OffsetMinutes,
			})
		}
	}
	return idx
}

func (idx *timezoneIndex) has(name string) bool {
	_, ok := idx.byName[strings.ToLower(name)]
	return ok
}

func (idx *timezoneIndex) resolve(name, userLocale string) (int, bool) {
	candidates, ok := idx.byName[strings.ToLower(name)]
	if !ok || len(candidates) == 0 {
		return 0, false
	}

	region := localeRegion(userLocale)
	if region != "" {
		for _, c := range candidates {
			if c.territory == region {
				return c.offsetMinutes, true
			}
		}
	}
	for _, c := range candidates {
		if c.territory == "001" {
			return c.offsetMinutes, true
		}
	}
	for _, c := range candidates {
		if c.territory == "" {
			return c.offsetMinutes, true
		}
	}
	return candidates[0].offsetMinutes, true
}

// localeRegion extracts the region subtag from a BCP-47 locale tag, e.g.
// "en-US" -> "US", "ka-GE" -> "GE". Tags without a region yield "".
func localeRegion(locale string) string {
	parts := strings.Split(locale, "-")
	for _, p := range parts[1:] {
		if len(p) == 2 {
			return strings.ToUpper(p)
		}
	}
	return ""
}
