package gpx

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/endolith/srt-to-gpx/internal/gps"
)

// Options control optional document content.
type Options struct {
	// Metadata adds the descriptive <metadata> block with a generation
	// timestamp. Not required for round-trip correctness.
	Metadata bool
}

// Serialize renders the record sequence as a GPX 1.1 document: one track
// containing one segment containing one point per record, in input order.
// Floats render in their shortest round-trippable decimal form. Any record
// whose timestamp fails normalization aborts the whole document.
func Serialize(records []gps.Record, opts Options) ([]byte, error) {
	doc := Document{
		XMLNS:   Namespace,
		Version: Version,
		Creator: Creator,
	}

	if opts.Metadata {
		doc.Metadata = &Metadata{
			Name:   "SRT to GPX Converter",
			Desc:   "Converted using OpenCamera SRT to GPX Script",
			Author: "OpenCamera Script",
			Time:   time.Now().UTC().Format(time.RFC3339),
		}
	}

	points := make([]Point, 0, len(records))
	for i, rec := range records {
		ts, err := gps.NormalizeTime(rec.Time)
		if err != nil {
			return nil, fmt.Errorf("track point %d: %w", i, err)
		}
		points = append(points, Point{
			Lat:  rec.Lat,
			Lon:  rec.Lon,
			Ele:  rec.Elevation,
			Time: ts,
		})
	}
	doc.Track.Segment.Points = points

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GPX document: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
