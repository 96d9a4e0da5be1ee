package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"vipwatch/internal/matcher"
	"vipwatch/internal/models"
	"vipwatch/internal/reference"
)

func init() {
	color.NoColor = true
}

func fixedPresenter(buf *bytes.Buffer, showUnmatched bool) *Presenter {
	p := NewPresenter(buf, showUnmatched)
	p.now = func() time.Time {
		return time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	}
	return p
}

func floatPtr(v float64) *float64 { return &v }

func sampleResults() []matcher.Result {
	af1 := &reference.Entry{
		Identifier:   "ae001f",
		Name:         "Air Force One (VC-25A)",
		Registration: "82-8000",
		Type:         "VC25",
		Category:     reference.CategoryGovernment,
		Tags:         []string{"USA"},
		InfoURL:      "https://en.wikipedia.org/wiki/Boeing_VC-25",
	}
	u2 := &reference.Entry{
		Identifier: "ae094d",
		Name:       "Lockheed U-2S",
		Type:       "U2",
		Category:   reference.CategoryOxcart,
	}
	c17 := &reference.Entry{
		Identifier: "ae11c2",
		Name:       "Boeing C-17A",
		Type:       "C17",
		Category:   reference.CategoryMilitary,
	}

	return []matcher.Result{
		{
			Aircraft: models.Aircraft{
				Hex: "ae001f", Callsign: "SAM29000",
				Lat: floatPtr(38.950), Lon: floatPtr(-77.456),
				Altitude: 31000, GroundSpeed: floatPtr(480), Track: floatPtr(270),
			},
			Entry:       af1,
			OverCountry: "USA",
		},
		{
			Aircraft: models.Aircraft{Hex: "ae094d", Callsign: "DRAGN01", Altitude: 60000},
			Entry:    u2,
		},
		{
			Aircraft: models.Aircraft{Hex: "ae11c2", Callsign: "RCH427", OnGround: true},
			Entry:    c17,
		},
		{
			Aircraft: models.Aircraft{Hex: "aaaaaa", Callsign: "RCH123", Altitude: 28000},
		},
	}
}

func TestPresenter_Render(t *testing.T) {
	var buf bytes.Buffer
	p := fixedPresenter(&buf, false)

	p.Render(sampleResults(), Stats{TableSize: 15887, Scanned: 312})
	out := buf.String()

	assert.Contains(t, out, "Scan at 2024-06-10 12:00:00 UTC")
	assert.Contains(t, out, "GOVERNMENTS & DICTATOR ALERT (1 aircraft)")
	assert.Contains(t, out, "Air Force One (VC-25A)")
	assert.Contains(t, out, "Callsign: SAM29000")
	assert.Contains(t, out, "Flying over: USA")
	assert.Contains(t, out, "Altitude: 31,000 ft")
	assert.Contains(t, out, "SPY PLANES & SPECIAL FORCES (1 aircraft)")
	assert.Contains(t, out, "Lockheed U-2S")
	assert.Contains(t, out, "MILITARY AIRCRAFT (1 aircraft)")
	assert.Contains(t, out, "GND")
	assert.Contains(t, out, "Reference table: 15,887 entries")
	assert.Contains(t, out, "Matched in reference table: 3")
	assert.Contains(t, out, "PRIORITY ALERT: 1 aircraft")

	// Unmatched aircraft excluded from tiered output
	assert.NotContains(t, out, "RCH123")
	assert.Contains(t, out, "Unmatched military aircraft (not shown): 1")
}

func TestPresenter_RenderShowUnmatched(t *testing.T) {
	var buf bytes.Buffer
	p := fixedPresenter(&buf, true)

	p.Render(sampleResults(), Stats{TableSize: 158, Scanned: 312})
	out := buf.String()

	assert.Contains(t, out, "OTHER MILITARY AIRCRAFT (1, not in reference table)")
	assert.Contains(t, out, "RCH123")
	assert.NotContains(t, out, "not shown")
}

func TestPresenter_RenderEmptyCycle(t *testing.T) {
	var buf bytes.Buffer
	p := fixedPresenter(&buf, false)

	p.Render(nil, Stats{TableSize: 158, Scanned: 0})
	out := buf.String()

	assert.Contains(t, out, "No government or dictator aircraft currently detected.")
	assert.Contains(t, out, "No priority aircraft currently detected")
	assert.NotContains(t, out, "SPY PLANES")
}

func TestComma(t *testing.T) {
	assert.Equal(t, "0", comma(0))
	assert.Equal(t, "999", comma(999))
	assert.Equal(t, "1,000", comma(1000))
	assert.Equal(t, "15,887", comma(15887))
	assert.Equal(t, "1,234,567", comma(1234567))
}

func TestSpeedAndHeadingLabels(t *testing.T) {
	// 0 kts and a due-north 0° track are real values, not missing data
	assert.Equal(t, "0", speedLabel(floatPtr(0)))
	assert.Equal(t, "480", speedLabel(floatPtr(480.4)))
	assert.Equal(t, "-", speedLabel(nil))

	assert.Equal(t, "0°", headingLabel(floatPtr(0)))
	assert.Equal(t, "270°", headingLabel(floatPtr(270)))
	assert.Equal(t, "-", headingLabel(nil))
}

func TestAltitudeLabel(t *testing.T) {
	ground := matcher.Result{Aircraft: models.Aircraft{OnGround: true}}
	cruising := matcher.Result{Aircraft: models.Aircraft{Altitude: 31000}}
	unknown := matcher.Result{}

	assert.Equal(t, "GND", altitudeLabel(&ground))
	assert.Equal(t, "31,000", altitudeLabel(&cruising))
	assert.Equal(t, "-", altitudeLabel(&unknown))
}
