package gps

import (
	"fmt"
	"time"
)

// timestamp layout OpenCamera writes into its subtitle track
const sourceTimeLayout = "Jan 2, 2006 3:04:05 PM"

// converts a camera timestamp like "Jul 4, 2024 6:13:17 PM" into the
// canonical UTC form "2024-07-04T18:13:17Z". The source carries no zone
// marker and is treated as already UTC.
func NormalizeTime(raw string) (string, error) {
	t, err := time.Parse(sourceTimeLayout, raw)
	if err != nil {
		return "", fmt.Errorf("invalid time format %q: %w", raw, err)
	}
	return t.UTC().Format(time.RFC3339), nil
}
