package matcher

import (
	"testing"

	"vipwatch/internal/models"
	"vipwatch/internal/reference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *reference.Table {
	return reference.New([]Entry{
		{Identifier: "adf001", Name: "Air Force One", Category: reference.CategoryGovernment},
		{Identifier: "AF1*", Name: "USA VIP flight", Category: reference.CategoryGovernment},
		{Identifier: "AF1SPECIAL*", Name: "USA special mission", Category: reference.CategoryGovernment},
		{Identifier: "RRR*", Name: "UK VIP flight", Category: reference.CategoryGovernment},
		{Identifier: "SAM29000", Name: "SAM exact", Category: reference.CategoryGovernment},
	})
}

type Entry = reference.Entry

func aircraft(hex, callsign string) *models.Aircraft {
	return &models.Aircraft{Hex: hex, Callsign: callsign}
}

func TestMatch_ExactHexBeatsCallsign(t *testing.T) {
	table := testTable()

	// Hex matches Air Force One even though the callsign would match a
	// different pattern entry.
	entry := Match(aircraft("adf001", "RRR4556"), table)
	require.NotNil(t, entry)
	assert.Equal(t, "Air Force One", entry.Name)

	// Hex match holds regardless of callsign
	entry = Match(aircraft("ADF001", "SAM29000"), table)
	require.NotNil(t, entry)
	assert.Equal(t, "Air Force One", entry.Name)
}

func TestMatch_WildcardPrefix(t *testing.T) {
	table := testTable()

	entry := Match(aircraft("aaaaaa", "AF1MISSION"), table)
	require.NotNil(t, entry)
	assert.Equal(t, "USA VIP flight", entry.Name)

	// Case-insensitive on the live callsign
	entry = Match(aircraft("aaaaaa", "af1mission"), table)
	require.NotNil(t, entry)
	assert.Equal(t, "USA VIP flight", entry.Name)
}

func TestMatch_LongestPrefixWins(t *testing.T) {
	table := testTable()

	entry := Match(aircraft("aaaaaa", "AF1SPECIAL7"), table)
	require.NotNil(t, entry)
	assert.Equal(t, "USA special mission", entry.Name)
}

func TestMatch_TieResolvesToTableOrder(t *testing.T) {
	table := reference.New([]Entry{
		{Identifier: "AF1*", Name: "first"},
		{Identifier: "AF2*", Name: "other"},
		{Identifier: "AF1*", Name: "duplicate"},
	})

	entry := Match(aircraft("aaaaaa", "AF1MISSION"), table)
	require.NotNil(t, entry)
	assert.Equal(t, "first", entry.Name)
}

func TestMatch_ExactPatternNeedsWholeCallsign(t *testing.T) {
	table := reference.New([]Entry{
		{Identifier: "SAM29000", Name: "SAM exact"},
	})

	require.NotNil(t, Match(aircraft("aaaaaa", "SAM29000"), table))
	assert.Nil(t, Match(aircraft("aaaaaa", "SAM29000X"), table))
	assert.Nil(t, Match(aircraft("aaaaaa", "SAM2900"), table))
}

func TestMatch_NoMatch(t *testing.T) {
	table := testTable()

	assert.Nil(t, Match(aircraft("bbbbbb", "RCH123"), table))
	assert.Nil(t, Match(aircraft("bbbbbb", ""), table))
}

func TestMatchAll(t *testing.T) {
	table := testTable()
	aircraftList := []models.Aircraft{
		{Hex: "adf001", Callsign: "SAM29000"},
		{Hex: "bbbbbb", Callsign: "RCH123"},
		{Hex: "cccccc", Callsign: "RRR4556"},
	}

	results := MatchAll(aircraftList, table)
	require.Len(t, results, 3)

	assert.True(t, results[0].Matched())
	assert.Equal(t, reference.TierAlert, results[0].Tier())

	assert.False(t, results[1].Matched())
	assert.Equal(t, reference.TierNone, results[1].Tier())

	assert.True(t, results[2].Matched())
	assert.Equal(t, "UK VIP flight", results[2].Entry.Name)
}

func TestMatchAll_DeduplicatesHex(t *testing.T) {
	table := testTable()
	aircraftList := []models.Aircraft{
		{Hex: "adf001", Callsign: "SAM29000"},
		{Hex: "adf001", Callsign: "SAM29000"},
	}

	results := MatchAll(aircraftList, table)
	assert.Len(t, results, 1)
}
