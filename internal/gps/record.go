package gps

// single GPS fix extracted from one caption block
type Record struct {
	Time      string  // raw camera timestamp, e.g. "Jul 4, 2024 6:13:17 PM"
	Lat       float64 // decimal degrees
	Lon       float64 // decimal degrees
	Elevation float64 // meters
}
