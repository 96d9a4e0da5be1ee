package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Aircraft is a single live record from the adsb.one API.
// Records are created fresh each poll cycle and discarded at the end of it.
type Aircraft struct {
	Hex          string   // 24-bit ICAO address, lowercase hex
	Callsign     string   // broadcast flight identifier, uppercased and trimmed
	Registration string   // tail number as reported by the API, may be empty
	Type         string   // ICAO type code as reported by the API, may be empty
	Lat          *float64 // nil when the API has no position for the aircraft
	Lon          *float64
	Altitude     int      // barometric altitude in feet, 0 when on ground
	OnGround     bool     // true when alt_baro reported the literal "ground"
	GroundSpeed  *float64 // knots; nil when the API omitted the field
	Track        *float64 // degrees clockwise from true north; nil when omitted
	VertRate     int      // feet per minute
	Squawk       string
	Seen         float64 // seconds since the aggregator last heard the aircraft
}

// HasPosition reports whether the record carries a usable lat/lon pair.
func (a *Aircraft) HasPosition() bool {
	return a.Lat != nil && a.Lon != nil
}

// ParseError describes a live record that failed validation. The API schema
// is loose, so required fields are checked explicitly at parse time instead
// of surfacing as zero values deep in the pipeline.
type ParseError struct {
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid aircraft record: field %q %s", e.Field, e.Reason)
}

// aircraftWire mirrors the adsb.one JSON field names. alt_baro is a union
// type on the wire: a number in feet, or the literal string "ground".
type aircraftWire struct {
	Hex          string          `json:"hex"`
	Flight       string          `json:"flight"`
	Registration string          `json:"r"`
	Type         string          `json:"t"`
	Lat          *float64        `json:"lat"`
	Lon          *float64        `json:"lon"`
	AltBaro      json.RawMessage `json:"alt_baro"`
	GroundSpeed  *float64        `json:"gs"`
	Track        *float64        `json:"track"`
	BaroRate     int             `json:"baro_rate"`
	Squawk       string          `json:"squawk"`
	Seen         float64         `json:"seen"`
}

// ParseAircraft validates and normalizes one wire record. A record without a
// hex identifier is rejected with a *ParseError; everything else is optional.
func ParseAircraft(data []byte) (*Aircraft, error) {
	var w aircraftWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode aircraft record: %w", err)
	}

	hex := strings.ToLower(strings.TrimSpace(w.Hex))
	if hex == "" {
		return nil, &ParseError{Field: "hex", Reason: "is required"}
	}

	ac := &Aircraft{
		Hex:          hex,
		Callsign:     strings.ToUpper(strings.TrimSpace(w.Flight)),
		Registration: strings.TrimSpace(w.Registration),
		Type:         strings.ToUpper(strings.TrimSpace(w.Type)),
		Lat:          w.Lat,
		Lon:          w.Lon,
		GroundSpeed:  w.GroundSpeed,
		Track:        w.Track,
		VertRate:     w.BaroRate,
		Squawk:       strings.TrimSpace(w.Squawk),
		Seen:         w.Seen,
	}

	if err := parseAltBaro(w.AltBaro, ac); err != nil {
		return nil, err
	}

	return ac, nil
}

func parseAltBaro(raw json.RawMessage, ac *Aircraft) error {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte(`"`)) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return &ParseError{Field: "alt_baro", Reason: "is not a number or \"ground\""}
		}
		if s != "ground" {
			return &ParseError{Field: "alt_baro", Reason: fmt.Sprintf("has unexpected value %q", s)}
		}
		ac.OnGround = true
		ac.Altitude = 0
		return nil
	}
	var alt float64
	if err := json.Unmarshal(raw, &alt); err != nil {
		return &ParseError{Field: "alt_baro", Reason: "is not a number or \"ground\""}
	}
	ac.Altitude = int(alt)
	return nil
}

// Response is the adsb.one list envelope returned by /v2/mil and /v2/hex.
type Response struct {
	Aircraft []Aircraft
	Total    int
	Now      int64
	Message  string
	Rejected int // wire records dropped during validation
}

type responseWire struct {
	AC    []json.RawMessage `json:"ac"`
	Total int               `json:"total"`
	Now   int64             `json:"now"`
	Msg   string            `json:"msg"`
}

// ErrMalformedResponse marks a response body that was not valid JSON, as
// opposed to a transport or status failure. Callers match it with errors.Is
// to decide between skipping a cycle and treating it as empty.
var ErrMalformedResponse = errors.New("malformed API response")

// DecodeResponse parses a full API response body. Individual records that
// fail validation are dropped and counted, not fatal; a body that is not
// valid JSON at all yields ErrMalformedResponse.
func DecodeResponse(body []byte) (*Response, error) {
	var w responseWire
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	resp := &Response{
		Aircraft: make([]Aircraft, 0, len(w.AC)),
		Total:    w.Total,
		Now:      w.Now,
		Message:  w.Msg,
	}

	for _, raw := range w.AC {
		ac, err := ParseAircraft(raw)
		if err != nil {
			resp.Rejected++
			continue
		}
		resp.Aircraft = append(resp.Aircraft, *ac)
	}

	return resp, nil
}
