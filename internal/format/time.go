// Package format renders timestamps the way the user configured them.
package format

import "time"

// Getter reads a config value.
type Getter func(key string) (string, bool)

// Layout holds the Go layouts picked from display_date and display_time.
type Layout struct {
	date string
	time string
}

// NewLayout reads display_date and display_time through get. A nil get
// gives the defaults.
func NewLayout(get Getter) Layout {
	var displayDate, displayTime string
	if get != nil {
		displayDate, _ = get("display_date")
		displayTime, _ = get("display_time")
	}
	return Layout{date: dateLayout(displayDate), time: timeLayout(displayTime)}
}

// Full formats date and time with seconds.
// Example output: "2024-01-23 15:04:05" or "01/23/2024 3:04:05 PM"
func (l Layout) Full(t time.Time) string {
	return t.Format(l.date) + " " + t.Format(l.time)
}

// Date formats only the date portion.
func (l Layout) Date(t time.Time) string {
	return t.Format(l.date)
}

func dateLayout(displayDate string) string {
	switch displayDate {
	case "", "yyyy-mm-dd":
		return "2006-01-02"
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// a custom Go layout such as "Jan 02"
		return displayDate
	}
}

func timeLayout(displayTime string) string {
	if displayTime == "12h" {
		return "3:04:05 PM"
	}
	return "15:04:05"
}

// ValidTime reports whether v is an accepted display_time value.
func ValidTime(v string) bool {
	return v == "12h" || v == "24h"
}
