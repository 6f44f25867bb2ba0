package gpx

import "encoding/xml"

const (
	// Namespace is the GPX 1.1 schema namespace.
	Namespace = "http://www.topografix.com/GPX/1/1"
	// Version is the GPX format version this tool emits.
	Version = "1.1"
	// Creator identifies this tool in the root element.
	Creator = "SRTtoGPX"
)

// root <gpx> element
type Document struct {
	XMLName  xml.Name  `xml:"gpx"`
	XMLNS    string    `xml:"xmlns,attr"`
	Version  string    `xml:"version,attr"`
	Creator  string    `xml:"creator,attr"`
	Metadata *Metadata `xml:"metadata,omitempty"`
	Track    Track     `xml:"trk"`
}

// optional descriptive block
type Metadata struct {
	Name   string `xml:"name"`
	Desc   string `xml:"desc"`
	Author string `xml:"author"`
	Time   string `xml:"time"`
}

// single track holding one segment
type Track struct {
	Segment Segment `xml:"trkseg"`
}

type Segment struct {
	Points []Point `xml:"trkpt"`
}

// one track point: a GPS fix with elevation and canonical UTC time
type Point struct {
	Lat  float64 `xml:"lat,attr"`
	Lon  float64 `xml:"lon,attr"`
	Ele  float64 `xml:"ele"`
	Time string  `xml:"time"`
}
