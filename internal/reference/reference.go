package reference

import (
	"log/slog"
	"strings"
)

// Category buckets a reference entry for display prioritization.
type Category int

const (
	CategoryOther Category = iota
	CategoryGovernment
	CategoryDictatorAlert
	CategoryOxcart
	CategorySpecialForces
	CategoryGunship
	CategoryMilitary
)

func (c Category) String() string {
	switch c {
	case CategoryGovernment:
		return "Government"
	case CategoryDictatorAlert:
		return "Dictator Alert"
	case CategoryOxcart:
		return "Oxcart"
	case CategorySpecialForces:
		return "Special Forces"
	case CategoryGunship:
		return "Gunship"
	case CategoryMilitary:
		return "Military"
	default:
		return "Other"
	}
}

// Tier is the display grouping derived from a category.
type Tier int

const (
	TierNone Tier = iota
	TierAlert
	TierHighInterest
	TierMilitary
)

// Tier maps a category to its display tier. Categories outside the three
// tiers still count toward the summary but are not listed in a tier table.
func (c Category) Tier() Tier {
	switch c {
	case CategoryGovernment, CategoryDictatorAlert:
		return TierAlert
	case CategoryOxcart, CategorySpecialForces, CategoryGunship:
		return TierHighInterest
	case CategoryMilitary:
		return TierMilitary
	default:
		return TierNone
	}
}

// militaryCategories are the plane-alert-db category names that fold into
// the generic military tier.
var militaryCategories = map[string]bool{
	"usaf":                       true,
	"raf":                        true,
	"gaf":                        true,
	"united states navy":         true,
	"united states marine corps": true,
	"royal navy fleet air arm":   true,
	"other navies":               true,
	"other air forces":           true,
	"coastguard":                 true,
	"toy soldiers":               true,
	"zoomies":                    true,
}

// ParseCategory maps a plane-alert-db category string to a Category.
// Unrecognized names fold into CategoryOther rather than failing the row.
func ParseCategory(s string) Category {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "dictator alert":
		return CategoryDictatorAlert
	case "governments", "government":
		return CategoryGovernment
	case "oxcart":
		return CategoryOxcart
	case "special forces":
		return CategorySpecialForces
	case "gunship":
		return CategoryGunship
	default:
		if militaryCategories[name] {
			return CategoryMilitary
		}
		return CategoryOther
	}
}

// Entry is one known aircraft or callsign pattern in the reference table.
// Entries are immutable once the table is built.
type Entry struct {
	Identifier   string // 6-char lowercase ICAO hex, or a callsign pattern
	Name         string // operator or display name
	Registration string
	Type         string // ICAO type code
	Category     Category
	Tags         []string
	InfoURL      string
}

// IsPattern reports whether the identifier is a callsign pattern rather
// than an ICAO hex address. A trailing '*' marks a prefix wildcard; a
// pattern without one must match the whole callsign.
//
// Any six hex characters classify as an ICAO address, so an exact callsign
// pattern that happens to be six hex characters (e.g. "DEF123") would be
// indexed as a hex and never match a callsign. Give such a pattern a
// trailing '*' to force callsign classification.
func (e *Entry) IsPattern() bool {
	return !isHexIdentifier(e.Identifier)
}

func isHexIdentifier(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Table is an order-preserving, read-only reference table. It is built once
// at startup and passed into the matcher explicitly; load order is kept so
// matching stays reproducible.
type Table struct {
	entries  []Entry
	byHex    map[string]int
	patterns []int // indexes of pattern entries, in table order
}

// New builds a table from entries, preserving their order. Entries without
// an identifier are skipped with a warning, matching the loader contract.
// When two entries share a hex, the first one wins.
func New(entries []Entry) *Table {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byHex:   make(map[string]int),
	}

	for _, e := range entries {
		if e.Identifier == "" {
			slog.Warn("Skipping reference entry without identifier", "name", e.Name)
			continue
		}
		if isHexIdentifier(e.Identifier) {
			e.Identifier = strings.ToLower(e.Identifier)
			if _, dup := t.byHex[e.Identifier]; dup {
				continue
			}
			t.entries = append(t.entries, e)
			t.byHex[e.Identifier] = len(t.entries) - 1
		} else {
			e.Identifier = strings.ToUpper(e.Identifier)
			t.entries = append(t.entries, e)
			t.patterns = append(t.patterns, len(t.entries)-1)
		}
	}

	return t
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// ByHex returns the entry for an ICAO hex address, or nil. Lookup is
// case-insensitive.
func (t *Table) ByHex(hex string) *Entry {
	if i, ok := t.byHex[strings.ToLower(hex)]; ok {
		return &t.entries[i]
	}
	return nil
}

// PatternEntries returns the callsign-pattern entries in table order.
func (t *Table) PatternEntries() []*Entry {
	out := make([]*Entry, len(t.patterns))
	for i, idx := range t.patterns {
		out[i] = &t.entries[idx]
	}
	return out
}

// Entries returns all entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
