package matcher

import (
	"strings"

	"vipwatch/internal/models"
	"vipwatch/internal/reference"
)

// Result pairs a live aircraft with the reference entry it matched, if any,
// and the country it was flying over once the annotator has run. Results are
// computed fresh each poll cycle.
type Result struct {
	Aircraft    models.Aircraft
	Entry       *reference.Entry // nil when the aircraft matched nothing
	OverCountry string
}

// Matched reports whether the aircraft hit a reference entry.
func (r *Result) Matched() bool {
	return r.Entry != nil
}

// Tier returns the display tier of the matched entry, or TierNone.
func (r *Result) Tier() reference.Tier {
	if r.Entry == nil {
		return reference.TierNone
	}
	return r.Entry.Category.Tier()
}

// Match returns the best reference entry for a live aircraft, or nil.
//
// An exact hex match always wins, regardless of callsign. Otherwise callsign
// patterns are tried: a pattern with a trailing '*' matches any callsign
// sharing its prefix, a pattern without one must equal the whole callsign,
// both case-insensitively. Among overlapping pattern matches the longest
// prefix wins; equal lengths resolve to the earlier table entry, so results
// are deterministic for a given load order.
func Match(ac *models.Aircraft, table *reference.Table) *reference.Entry {
	if entry := table.ByHex(ac.Hex); entry != nil {
		return entry
	}

	callsign := strings.ToUpper(strings.TrimSpace(ac.Callsign))
	if callsign == "" {
		return nil
	}

	var best *reference.Entry
	bestLen := -1
	for _, entry := range table.PatternEntries() {
		n, ok := patternMatch(entry.Identifier, callsign)
		if ok && n > bestLen {
			best = entry
			bestLen = n
		}
	}
	return best
}

// patternMatch reports whether callsign matches pattern and, if so, the
// length of the matched prefix used for precedence.
func patternMatch(pattern, callsign string) (int, bool) {
	pattern = strings.ToUpper(pattern)
	if prefix, isWildcard := strings.CutSuffix(pattern, "*"); isWildcard {
		if prefix != "" && strings.HasPrefix(callsign, prefix) {
			return len(prefix), true
		}
		return 0, false
	}
	if pattern == callsign {
		return len(pattern), true
	}
	return 0, false
}

// MatchAll matches every aircraft in a poll response against the table.
// Duplicate hexes within one response are collapsed to the first record.
// Unmatched aircraft are kept in the result set with a nil Entry so the
// presenter can decide whether to show them generically.
func MatchAll(aircraft []models.Aircraft, table *reference.Table) []Result {
	results := make([]Result, 0, len(aircraft))
	seen := make(map[string]bool, len(aircraft))

	for i := range aircraft {
		ac := &aircraft[i]
		if seen[ac.Hex] {
			continue
		}
		seen[ac.Hex] = true
		results = append(results, Result{
			Aircraft: *ac,
			Entry:    Match(ac, table),
		})
	}
	return results
}
