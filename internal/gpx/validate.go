package gpx

import (
	"encoding/xml"
	"fmt"

	"github.com/endolith/srt-to-gpx/internal/gps"
)

// Validate re-parses an emitted document and checks it point-for-point
// against the records that produced it: count, coordinates, elevation and
// time must all survive the round trip exactly. This catches serializer
// bugs; it is not schema validation.
func Validate(records []gps.Record, doc []byte) error {
	var parsed Document
	if err := xml.Unmarshal(doc, &parsed); err != nil {
		return fmt.Errorf("failed to re-parse document: %w", err)
	}

	if parsed.XMLName.Space != Namespace {
		return fmt.Errorf(
			"document namespace %q, want %q",
			parsed.XMLName.Space,
			Namespace,
		)
	}

	points := parsed.Track.Segment.Points
	if len(points) != len(records) {
		return fmt.Errorf(
			"point count mismatch: document has %d, input has %d",
			len(points),
			len(records),
		)
	}

	for i, rec := range records {
		pt := points[i]
		if pt.Lat != rec.Lat || pt.Lon != rec.Lon {
			return fmt.Errorf(
				"coordinate mismatch at point %d: document (%v, %v), input (%v, %v)",
				i, pt.Lat, pt.Lon, rec.Lat, rec.Lon,
			)
		}
		if pt.Ele != rec.Elevation {
			return fmt.Errorf(
				"elevation mismatch at point %d: document %v, input %v",
				i, pt.Ele, rec.Elevation,
			)
		}

		want, err := gps.NormalizeTime(rec.Time)
		if err != nil {
			return fmt.Errorf("track point %d: %w", i, err)
		}
		if pt.Time != want {
			return fmt.Errorf(
				"time mismatch at point %d: document %q, want %q",
				i, pt.Time, want,
			)
		}
	}

	return nil
}
