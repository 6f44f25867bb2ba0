package srt

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/endolith/srt-to-gpx/internal/gps"
)

// how undecodable GPS blocks are handled
type Policy string

const (
	// PolicySkip drops undecodable blocks and counts them.
	PolicySkip Policy = "skip"
	// PolicyFail aborts the whole file on the first undecodable block.
	PolicyFail Policy = "fail"
)

var (
	errNotGPS      = errors.New("no coordinate separator")
	errBadLocation = errors.New("malformed location data")
)

// records extracted from one subtitle file
type Result struct {
	Records []gps.Record
	Skipped int // blocks dropped as heading-only or undecodable
}

// reads an SRT file and extracts its GPS records
func ParseFile(path string, policy Policy) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	return Extract(strings.Split(text, "\n"), policy)
}

// Extract scans the line sequence for caption blocks and decodes the GPS
// record embedded in each. A line containing "-->" is a block's timing
// line; the camera timestamp is the next line and the location payload the
// one after. Heading-only payloads are skipped under every policy; a block
// truncated by end of input counts as undecodable. Record order matches
// block order.
func Extract(lines []string, policy Policy) (*Result, error) {
	res := &Result{}

	for i := 0; i < len(lines); i++ {
		if !strings.Contains(lines[i], "-->") {
			continue
		}

		if i+2 >= len(lines) {
			if policy == PolicyFail {
				return nil, fmt.Errorf("truncated block at line %d", i+1)
			}
			res.Skipped++
			continue
		}

		rec, err := decodeLocation(strings.TrimSpace(lines[i+2]))
		if err != nil {
			if policy == PolicyFail && !errors.Is(err, errNotGPS) {
				return nil, fmt.Errorf("block at line %d: %w", i+1, err)
			}
			res.Skipped++
			continue
		}

		rec.Time = strings.TrimSpace(lines[i+1])
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

// decodes a "latitude, longitude, elevation" payload. Payloads without a
// comma are compass-heading telemetry, not GPS. The elevation field may
// carry a trailing "m" unit suffix.
func decodeLocation(raw string) (gps.Record, error) {
	if !strings.Contains(raw, ",") {
		return gps.Record{}, errNotGPS
	}

	fields := strings.Split(raw, ",")
	if len(fields) < 3 {
		return gps.Record{}, fmt.Errorf(
			"%w: want latitude, longitude, elevation; got %d fields",
			errBadLocation,
			len(fields),
		)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return gps.Record{}, fmt.Errorf(
			"%w: latitude %q",
			errBadLocation,
			strings.TrimSpace(fields[0]),
		)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return gps.Record{}, fmt.Errorf(
			"%w: longitude %q",
			errBadLocation,
			strings.TrimSpace(fields[1]),
		)
	}

	eleField := strings.TrimSpace(fields[2])
	ele, err := strconv.ParseFloat(
		strings.TrimSpace(strings.TrimSuffix(eleField, "m")),
		64,
	)
	if err != nil {
		return gps.Record{}, fmt.Errorf(
			"%w: elevation %q",
			errBadLocation,
			eleField,
		)
	}

	return gps.Record{Lat: lat, Lon: lon, Elevation: ele}, nil
}
