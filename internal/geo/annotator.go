package geo

import (
	"fmt"
	"sync"

	"github.com/sams96/rgeo"
	geom "github.com/twpayne/go-geom"
)

// Annotator resolves a lat/lon pair to a short country label using an
// offline Natural Earth dataset. Results are memoized at two-decimal
// precision (roughly 1 km), matching how slowly an aircraft crosses cells
// relative to the poll rate.
type Annotator struct {
	rg *rgeo.Rgeo

	mu    sync.Mutex
	cache map[string]string
}

// NewAnnotator builds the reverse geocoder. The country dataset is embedded
// in the rgeo module, so construction only fails on a corrupt build.
func NewAnnotator() (*Annotator, error) {
	rg, err := rgeo.New(rgeo.Countries110)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize reverse geocoder: %w", err)
	}
	return &Annotator{
		rg:    rg,
		cache: make(map[string]string),
	}, nil
}

// Country returns a short display label for the country containing the
// coordinates, or "" when the position resolves to nothing (open ocean).
// A miss is never an error; the caller renders the aircraft without a
// location label.
func (a *Annotator) Country(lat, lon float64) string {
	key := fmt.Sprintf("%.2f,%.2f", lat, lon)

	a.mu.Lock()
	if label, ok := a.cache[key]; ok {
		a.mu.Unlock()
		return label
	}
	a.mu.Unlock()

	label := ""
	loc, err := a.rg.ReverseGeocode(geom.Coord{lon, lat})
	if err == nil {
		label = shortCountryName(loc.CountryCode2, loc.Country)
	}

	a.mu.Lock()
	a.cache[key] = label
	a.mu.Unlock()
	return label
}

// shortNames maps ISO 3166-1 alpha-2 codes to the compact labels used in
// the report; anything unmapped falls back to the dataset's country name.
var shortNames = map[string]string{
	"US": "USA", "GB": "UK", "DE": "Germany", "FR": "France",
	"IT": "Italy", "ES": "Spain", "PL": "Poland", "CZ": "Czechia",
	"UA": "Ukraine", "RU": "Russia", "CN": "China", "KP": "N.Korea",
	"NL": "Netherlands", "BE": "Belgium", "AT": "Austria", "CH": "Switzerland",
	"SE": "Sweden", "NO": "Norway", "DK": "Denmark", "FI": "Finland",
	"PT": "Portugal", "GR": "Greece", "HU": "Hungary", "RO": "Romania",
	"BG": "Bulgaria", "HR": "Croatia", "SI": "Slovenia", "SK": "Slovakia",
	"EE": "Estonia", "LV": "Latvia", "LT": "Lithuania", "IE": "Ireland",
	"TR": "Turkey", "BY": "Belarus", "RS": "Serbia", "AL": "Albania",
	"MK": "N.Macedonia", "ME": "Montenegro", "BA": "Bosnia", "LU": "Luxembourg",
	"IS": "Iceland", "CY": "Cyprus", "MT": "Malta", "CA": "Canada",
	"MX": "Mexico", "JP": "Japan", "KR": "S.Korea", "AU": "Australia",
	"NZ": "New Zealand", "BR": "Brazil", "AR": "Argentina", "IN": "India",
	"SA": "Saudi Arabia", "AE": "UAE", "IL": "Israel", "EG": "Egypt",
	"SY": "Syria", "IR": "Iran", "KZ": "Kazakhstan", "ZA": "S.Africa",
}

func shortCountryName(code2, fallback string) string {
	if name, ok := shortNames[code2]; ok {
		return name
	}
	return fallback
}
