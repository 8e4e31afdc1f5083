// Package tabular reads the line-oriented service definition format.
//
// Services are defined in groups of exactly three lines:
//
//	name,unit
//	comma-separated tier lower bounds
//	comma-separated per-tier rates
//
// Blank lines are skipped and fields are trimmed. Parsing is per-record:
// a malformed group is reported and skipped, later groups still load.
package tabular

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"icsc/core/catalog"
	"icsc/internal/errors"
)

// Read consumes the whole input and returns the raw records it could
// parse plus one error per record it could not. A trailing group with
// fewer than three lines is a malformed record, not a silent stop.
func Read(r io.Reader) ([]catalog.Raw, []catalog.RecordError) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, []catalog.RecordError{{
			Index: 0,
			Err:   errors.MalformedRecord("failed to read input", err),
		}}
	}

	var records []catalog.Raw
	var rejected []catalog.RecordError

	index := 0
	for i := 0; i < len(lines); i += 3 {
		index++

		if i+2 >= len(lines) {
			rejected = append(rejected, catalog.RecordError{
				Index: index,
				Err: errors.MalformedRecord(
					fmt.Sprintf("record %d: partial trailing group, need 3 lines, got %d", index, len(lines)-i), nil).
					WithContext("record", index),
			})
			break
		}

		rec, err := parseRecord(index, lines[i], lines[i+1], lines[i+2])
		if err != nil {
			rejected = append(rejected, catalog.RecordError{Index: index, Name: rec.Name, Err: err})
			continue
		}
		records = append(records, rec)
	}

	return records, rejected
}

// ReadFile reads records from a file on disk
func ReadFile(path string) ([]catalog.Raw, []catalog.RecordError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, rejected := Read(f)
	return records, rejected, nil
}

func parseRecord(index int, nameLine, tierLine, rateLine string) (catalog.Raw, error) {
	rec := catalog.Raw{Index: index}

	parts := strings.Split(nameLine, ",")
	if len(parts) != 2 {
		return rec, errors.MalformedRecord(
			fmt.Sprintf("record %d: name line must be name,unit", index), nil).
			WithContext("record", index).
			WithContext("line", nameLine)
	}
	rec.Name = strings.TrimSpace(parts[0])
	rec.Unit = strings.TrimSpace(parts[1])

	tiers, err := parseNumbers(tierLine)
	if err != nil {
		return rec, errors.MalformedRecord(
			fmt.Sprintf("record %d (%s): bad tier boundary", index, rec.Name), err).
			WithContext("record", index).
			WithContext("field", "tiers")
	}
	rec.Tiers = tiers

	rates, err := parseNumbers(rateLine)
	if err != nil {
		return rec, errors.MalformedRecord(
			fmt.Sprintf("record %d (%s): bad rate", index, rec.Name), err).
			WithContext("record", index).
			WithContext("field", "rates")
	}
	rec.Rates = rates

	return rec, nil
}

func parseNumbers(line string) ([]float64, error) {
	parts := strings.Split(line, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", strings.TrimSpace(p))
		}
		out = append(out, v)
	}
	return out, nil
}
