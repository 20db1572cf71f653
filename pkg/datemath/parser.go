package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser resolves relative date keywords to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Jakarta"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative date keyword to an absolute time.Time.
// Both English and Indonesian keywords are accepted, matching the
// classifier's rule set. The baseTime is the reference point
// (usually time.Now()). Unknown input resolves to today.
func (p *Parser) Parse(relative string, baseTime time.Time) time.Time {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "hari ini":
		return p.startOfDay(baseTime)
	case "tomorrow", "besok":
		return p.startOfDay(baseTime.AddDate(0, 0, 1))
	}

	return p.startOfDay(baseTime)
}

// DateString formats t as an ISO 8601 date-only string in the parser's timezone.
func (p *Parser) DateString(t time.Time) string {
	return t.In(p.location).Format("2006-01-02")
}

// TimeString formats t as a 24h "HH:MM" string in the parser's timezone.
func (p *Parser) TimeString(t time.Time) string {
	return t.In(p.location).Format("15:04")
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
