package tweet

import "time"

const (
	// DisplayLayout is the UTC form used for rendered dates.
	DisplayLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
	// InvalidDate is rendered when the server sends an unparsable timestamp.
	InvalidDate = "Invalid Date"
)

var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseDate parses an ISO-8601 timestamp. Timestamps without a zone are
// taken as UTC.
func ParseDate(iso string) (time.Time, bool) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO-8601 timestamp as a human-readable UTC string.
func FormatDate(iso string) string {
	t, ok := ParseDate(iso)
	if !ok {
		return InvalidDate
	}
	return t.Format(DisplayLayout)
}
