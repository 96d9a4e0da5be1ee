package reference

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoadCSV loads a reference table from a plane-alert-db style CSV file.
// Expected columns: $ICAO, $Registration, $Operator, $Type, $ICAO Type,
// #CMPG, $Tag 1, $#Tag 2, $#Tag 3, Category, $#Link. Rows without a valid
// 6-character ICAO hex are skipped with a warning; loading the same file
// twice produces an identical table.
func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference CSV %s: %w", path, err)
	}
	defer file.Close()

	table, err := readCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference CSV %s: %w", path, err)
	}
	return table, nil
}

func readCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true    // Handle malformed quotes in the upstream file
	reader.FieldsPerRecord = -1 // Allow variable number of fields per record

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, h := range header {
		headerMap[strings.Trim(strings.TrimSpace(h), "'\"")] = i
	}
	if _, ok := headerMap["$ICAO"]; !ok {
		return nil, fmt.Errorf("CSV header is missing the $ICAO column")
	}

	var entries []Entry
	skipped := 0
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record at line %d: %w", line+1, err)
		}
		line++

		icao := strings.ToLower(getField(record, headerMap, "$ICAO"))
		if !isHexIdentifier(icao) {
			slog.Warn("Skipping reference row without valid ICAO hex",
				"line", line,
				"icao", icao,
				"operator", getField(record, headerMap, "$Operator"),
			)
			skipped++
			continue
		}

		typeCode := getField(record, headerMap, "$ICAO Type")
		if typeCode == "" {
			typeCode = getField(record, headerMap, "$Type")
		}

		entries = append(entries, Entry{
			Identifier:   icao,
			Name:         getField(record, headerMap, "$Operator"),
			Registration: getField(record, headerMap, "$Registration"),
			Type:         typeCode,
			Category:     ParseCategory(getField(record, headerMap, "Category")),
			Tags: nonEmpty(
				getField(record, headerMap, "$Tag 1"),
				getField(record, headerMap, "$#Tag 2"),
				getField(record, headerMap, "$#Tag 3"),
			),
			InfoURL: getField(record, headerMap, "$#Link"),
		})
	}

	slog.Info("Loaded reference table from CSV", "entries", len(entries), "skipped", skipped)
	return New(entries), nil
}

// getField safely retrieves a field from a CSV record by header name.
func getField(record []string, headerMap map[string]int, fieldName string) string {
	if idx, ok := headerMap[fieldName]; ok && idx < len(record) {
		return strings.Trim(strings.TrimSpace(record[idx]), "'\"")
	}
	return ""
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
