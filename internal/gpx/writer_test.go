package gpx

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/endolith/srt-to-gpx/internal/gps"
)

func TestSerializeSingleRecord(t *testing.T) {
	records := []gps.Record{
		{Time: "Jul 4, 2024 6:13:17 PM", Lat: 34.0522, Lon: -118.2437, Elevation: 71.0},
	}

	doc, err := Serialize(records, Options{})
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}

	out := string(doc)
	if !strings.HasPrefix(out, xml.Header) {
		t.Error("expected XML declaration at start of document")
	}
	for _, want := range []string{
		`xmlns="http://www.topografix.com/GPX/1/1"`,
		`version="1.1"`,
		`creator="SRTtoGPX"`,
		`lat="34.0522"`,
		`lon="-118.2437"`,
		`<ele>71</ele>`,
		`<time>2024-07-04T18:13:17Z</time>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected document to contain %s, got:\n%s", want, out)
		}
	}

	var parsed Document
	if err := xml.Unmarshal(doc, &parsed); err != nil {
		t.Fatalf("emitted document does not re-parse: %v", err)
	}
	points := parsed.Track.Segment.Points
	if len(points) != 1 {
		t.Fatalf("expected 1 track point, got %d", len(points))
	}
	if points[0].Lat != 34.0522 || points[0].Lon != -118.2437 {
		t.Errorf("unexpected coordinates: %+v", points[0])
	}
	if points[0].Ele != 71.0 {
		t.Errorf("expected elevation 71.0, got %v", points[0].Ele)
	}
	if points[0].Time != "2024-07-04T18:13:17Z" {
		t.Errorf("expected canonical time, got %q", points[0].Time)
	}
}

func TestSerializeMetadataToggle(t *testing.T) {
	records := []gps.Record{
		{Time: "Jul 4, 2024 6:13:17 PM", Lat: 1.0, Lon: 2.0, Elevation: 3.0},
	}

	withMeta, err := Serialize(records, Options{Metadata: true})
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	for _, want := range []string{
		"<metadata>",
		"<name>SRT to GPX Converter</name>",
		"<desc>Converted using OpenCamera SRT to GPX Script</desc>",
		"<author>OpenCamera Script</author>",
	} {
		if !strings.Contains(string(withMeta), want) {
			t.Errorf("expected metadata document to contain %s", want)
		}
	}

	withoutMeta, err := Serialize(records, Options{})
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	if strings.Contains(string(withoutMeta), "<metadata>") {
		t.Error("expected no metadata block when disabled")
	}
}

func TestSerializeBadTimestamp(t *testing.T) {
	records := []gps.Record{
		{Time: "Jul 4, 2024 6:13:17 PM", Lat: 1.0, Lon: 2.0, Elevation: 3.0},
		{Time: "yesterday", Lat: 4.0, Lon: 5.0, Elevation: 6.0},
	}

	doc, err := Serialize(records, Options{})
	if err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
	if doc != nil {
		t.Error("expected no document on serialization failure")
	}
	if !strings.Contains(err.Error(), "point 1") {
		t.Errorf("expected failing point position in error, got: %v", err)
	}
}

func TestSerializeEmptySequence(t *testing.T) {
	doc, err := Serialize(nil, Options{})
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}

	var parsed Document
	if err := xml.Unmarshal(doc, &parsed); err != nil {
		t.Fatalf("emitted document does not re-parse: %v", err)
	}
	if len(parsed.Track.Segment.Points) != 0 {
		t.Errorf("expected 0 track points, got %d", len(parsed.Track.Segment.Points))
	}
	// the single trk/trkseg pair is emitted even with no points
	if !strings.Contains(string(doc), "<trkseg>") {
		t.Error("expected empty trkseg element")
	}
}

func TestSerializePreservesOrder(t *testing.T) {
	records := []gps.Record{
		{Time: "Jul 4, 2024 6:13:17 PM", Lat: 10.0, Lon: 20.0, Elevation: 1.0},
		{Time: "Jul 4, 2024 6:13:18 PM", Lat: 11.0, Lon: 21.0, Elevation: 2.0},
		{Time: "Jul 4, 2024 6:13:19 PM", Lat: 12.0, Lon: 22.0, Elevation: 3.0},
	}

	doc, err := Serialize(records, Options{})
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}

	var parsed Document
	if err := xml.Unmarshal(doc, &parsed); err != nil {
		t.Fatalf("emitted document does not re-parse: %v", err)
	}
	points := parsed.Track.Segment.Points
	if len(points) != 3 {
		t.Fatalf("expected 3 track points, got %d", len(points))
	}
	for i, rec := range records {
		if points[i].Lat != rec.Lat {
			t.Errorf("point %d: expected lat %v, got %v", i, rec.Lat, points[i].Lat)
		}
	}
}
