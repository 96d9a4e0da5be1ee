package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"vipwatch/internal/matcher"
	"vipwatch/internal/reference"
)

// Stats carries per-cycle context for the summary block.
type Stats struct {
	TableSize int // reference entries loaded
	Scanned   int // aircraft returned by the API this cycle
}

// Presenter renders one cycle's match results as a grouped console report:
// alert-tier detail blocks, color tables for the remaining tiers, and a
// summary with per-category counts. Unmatched aircraft are omitted unless
// showUnmatched is set, in which case they appear in a generic listing.
type Presenter struct {
	out           io.Writer
	showUnmatched bool
	now           func() time.Time
}

func NewPresenter(out io.Writer, showUnmatched bool) *Presenter {
	return &Presenter{
		out:           out,
		showUnmatched: showUnmatched,
		now:           time.Now,
	}
}

var (
	alertColor = color.New(color.FgRed, color.Bold)
	highColor  = color.New(color.FgMagenta, color.Bold)
	milColor   = color.New(color.FgBlue, color.Bold)
	headColor  = color.New(color.FgCyan)
)

const ruleWidth = 70

// Render writes the full report for one poll cycle.
func (p *Presenter) Render(results []matcher.Result, stats Stats) {
	var alert, high, mil, unmatched []matcher.Result
	counts := make(map[reference.Category]int)
	matched := 0

	for _, r := range results {
		if !r.Matched() {
			unmatched = append(unmatched, r)
			continue
		}
		matched++
		counts[r.Entry.Category]++
		switch r.Tier() {
		case reference.TierAlert:
			alert = append(alert, r)
		case reference.TierHighInterest:
			high = append(high, r)
		case reference.TierMilitary:
			mil = append(mil, r)
		}
	}

	sortTier(alert)
	sortTier(high)
	sortTier(mil)

	fmt.Fprintf(p.out, "\nScan at %s — %d aircraft scanned, %d matched\n",
		p.now().UTC().Format("2006-01-02 15:04:05 MST"), stats.Scanned, matched)

	p.renderAlertTier(alert)
	p.renderTierTable(high, highColor, fmt.Sprintf("SPY PLANES & SPECIAL FORCES (%d aircraft)", len(high)))
	p.renderTierTable(mil, milColor, fmt.Sprintf("MILITARY AIRCRAFT (%d aircraft)", len(mil)))

	if p.showUnmatched && len(unmatched) > 0 {
		p.renderUnmatched(unmatched)
	}

	p.renderSummary(counts, stats, matched, len(alert), len(high), len(unmatched))
}

func sortTier(results []matcher.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Entry, results[j].Entry
		if a.Category != b.Category {
			return a.Category.String() < b.Category.String()
		}
		return a.Name < b.Name
	})
}

// renderAlertTier prints government and dictator-alert aircraft as detail
// blocks rather than table rows; these are the matches the report exists for.
func (p *Presenter) renderAlertTier(results []matcher.Result) {
	rule := strings.Repeat("=", ruleWidth)
	alertColor.Fprintln(p.out, "\n"+rule)
	alertColor.Fprintf(p.out, "* GOVERNMENTS & DICTATOR ALERT (%d aircraft)\n", len(results))
	alertColor.Fprintln(p.out, rule)

	if len(results) == 0 {
		fmt.Fprintln(p.out, "No government or dictator aircraft currently detected.")
		return
	}

	for i := range results {
		r := &results[i]
		ac, entry := &r.Aircraft, r.Entry

		fmt.Fprintln(p.out)
		alertColor.Fprintf(p.out, "[%s] ", entry.Category)
		fmt.Fprintln(p.out, entry.Name)

		registration := entry.Registration
		if ac.Registration != "" {
			registration = ac.Registration
		}
		fmt.Fprintf(p.out, "  Callsign: %s   Registration: %s   Type: %s\n",
			orDash(ac.Callsign), orDash(registration), orDash(typeOf(r)))

		if ac.HasPosition() {
			over := r.OverCountry
			if over == "" {
				over = "Unknown"
			}
			fmt.Fprintf(p.out, "  Flying over: %s   Position: %.3f, %.3f\n", over, *ac.Lat, *ac.Lon)
		}
		alt := altitudeLabel(r)
		if alt != "GND" && alt != "-" {
			alt += " ft"
		}
		spd := speedLabel(ac.GroundSpeed)
		if spd != "-" {
			spd += " kts"
		}
		fmt.Fprintf(p.out, "  Altitude: %s   Speed: %s   Heading: %s\n", alt, spd, headingLabel(ac.Track))

		if len(entry.Tags) > 0 {
			fmt.Fprintf(p.out, "  Tags: %s\n", strings.Join(entry.Tags, " | "))
		}
		if entry.InfoURL != "" {
			fmt.Fprintf(p.out, "  More info: %s\n", entry.InfoURL)
		}
	}
}

func (p *Presenter) renderTierTable(results []matcher.Result, c *color.Color, title string) {
	if len(results) == 0 {
		return
	}

	rule := strings.Repeat("=", ruleWidth)
	c.Fprintln(p.out, "\n"+rule)
	c.Fprintln(p.out, title)
	c.Fprintln(p.out, rule)

	table := p.newTable()
	for i := range results {
		r := &results[i]
		ac := &r.Aircraft
		table.Append([]string{
			truncate(r.Entry.Name, 32),
			orDash(ac.Callsign),
			orDash(typeOf(r)),
			altitudeLabel(r),
			speedLabel(ac.GroundSpeed),
			headingLabel(ac.Track),
			orDash(r.OverCountry),
			truncate(firstTag(r.Entry.Tags), 18),
		})
	}
	table.Render()
}

// renderUnmatched lists aircraft with no reference match generically, the
// way the basic variant of the tracker did.
func (p *Presenter) renderUnmatched(results []matcher.Result) {
	headColor.Fprintf(p.out, "\nOTHER MILITARY AIRCRAFT (%d, not in reference table)\n", len(results))

	table := p.newTable()
	for i := range results {
		r := &results[i]
		ac := &r.Aircraft
		table.Append([]string{
			"Military aircraft",
			orDash(ac.Callsign),
			orDash(ac.Type),
			altitudeLabel(r),
			speedLabel(ac.GroundSpeed),
			headingLabel(ac.Track),
			orDash(r.OverCountry),
			strings.ToUpper(ac.Hex),
		})
	}
	table.Render()
}

func (p *Presenter) newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Operator", "Callsign", "Type", "Alt (ft)", "Spd", "Hdg", "Over", "Tag"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func (p *Presenter) renderSummary(counts map[reference.Category]int, stats Stats, matched, alertCount, highCount, unmatchedCount int) {
	fmt.Fprintf(p.out, "\n--- Summary ---\n")
	fmt.Fprintf(p.out, "Reference table: %s entries\n", comma(stats.TableSize))
	fmt.Fprintf(p.out, "Military aircraft scanned: %d\n", stats.Scanned)
	fmt.Fprintf(p.out, "Matched in reference table: %d\n", matched)

	if alertCount > 0 {
		alertColor.Fprintf(p.out, "* PRIORITY ALERT: %d aircraft\n", alertCount)
	} else {
		fmt.Fprintln(p.out, "* No priority aircraft currently detected")
	}
	if highCount > 0 {
		highColor.Fprintf(p.out, "High interest: %d aircraft\n", highCount)
	}

	if len(counts) > 0 {
		fmt.Fprintln(p.out, "Aircraft by category:")
		for _, cat := range sortedCategories(counts) {
			line := fmt.Sprintf("  %s: %d", cat, counts[cat])
			switch cat.Tier() {
			case reference.TierAlert:
				alertColor.Fprintln(p.out, line)
			case reference.TierHighInterest:
				highColor.Fprintln(p.out, line)
			default:
				fmt.Fprintln(p.out, line)
			}
		}
	}

	if !p.showUnmatched && unmatchedCount > 0 {
		fmt.Fprintf(p.out, "Unmatched military aircraft (not shown): %d\n", unmatchedCount)
	}
}

// sortedCategories orders categories alert tier first, then alphabetically,
// mirroring the tier order of the report itself.
func sortedCategories(counts map[reference.Category]int) []reference.Category {
	cats := make([]reference.Category, 0, len(counts))
	for c := range counts {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		ai := cats[i].Tier() != reference.TierAlert
		aj := cats[j].Tier() != reference.TierAlert
		if ai != aj {
			return !ai
		}
		return cats[i].String() < cats[j].String()
	})
	return cats
}

func typeOf(r *matcher.Result) string {
	if r.Aircraft.Type != "" {
		return r.Aircraft.Type
	}
	if r.Entry != nil {
		return r.Entry.Type
	}
	return ""
}

func altitudeLabel(r *matcher.Result) string {
	switch {
	case r.Aircraft.OnGround:
		return "GND"
	case r.Aircraft.Altitude != 0:
		return comma(r.Aircraft.Altitude)
	default:
		return "-"
	}
}

func speedLabel(gs *float64) string {
	if gs == nil {
		return "-"
	}
	return strconv.FormatFloat(*gs, 'f', 0, 64)
}

func headingLabel(track *float64) string {
	if track == nil {
		return "-"
	}
	return strconv.FormatFloat(*track, 'f', 0, 64) + "°"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func firstTag(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	// Prefer the second tag when present; the first is usually the broad one
	if len(tags) > 1 && tags[1] != "" {
		return tags[1]
	}
	return tags[0]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// comma formats an integer with thousands separators.
func comma(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + comma(-n)
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteString(",")
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteString(",")
		}
	}
	return b.String()
}
