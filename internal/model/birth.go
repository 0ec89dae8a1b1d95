package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of a birth date.
const DateLayout = "2006-01-02"

// DefaultTime is assumed when a request omits the birth time.
const DefaultTime = "12:00"

// BirthRequest carries the birth details a chart is computed from.
// Latitude and Longitude are pointers so a missing coordinate can be told
// apart from zero.
type BirthRequest struct {
	Name      string   `json:"name"`
	DOB       string   `json:"dob"`
	Time      string   `json:"time,omitempty"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lon,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
	City      string   `json:"city,omitempty"`
}

// zoneAliases maps legacy zone names accepted from older clients.
var zoneAliases = map[string]string{
	"India":         "Asia/Kolkata",
	"Asia/Calcutta": "Asia/Kolkata",
	"IST":           "Asia/Kolkata",
}

// Normalize trims every text field, rewrites the birth time into 24-hour
// form when it parses, and fills in defaultZone when no timezone was given.
func (r *BirthRequest) Normalize(defaultZone string) {
	r.Name = strings.TrimSpace(r.Name)
	r.DOB = strings.TrimSpace(r.DOB)
	r.Time = strings.TrimSpace(r.Time)
	r.City = strings.TrimSpace(r.City)
	r.Timezone = strings.TrimSpace(r.Timezone)
	if r.Timezone == "" {
		r.Timezone = defaultZone
	}
	if alias, ok := zoneAliases[r.Timezone]; ok {
		r.Timezone = alias
	}
	if c, err := ParseClock(r.Time); err == nil && r.Time != "" {
		r.Time = c.String()
	}
}

// Clock is a wall-clock time of day.
type Clock struct {
	Hour, Minute, Second int
}

// String formats c as HH:MM, or HH:MM:SS when seconds are set.
func (c Clock) String() string {
	if c.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseClock parses HH:MM or HH:MM:SS with an optional AM/PM suffix.
// An empty string is noon.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultTime
	}

	meridiem := ""
	upper := strings.ToUpper(s)
	for _, m := range []string{"AM", "PM"} {
		if strings.HasSuffix(upper, m) {
			meridiem = m
			s = strings.TrimSpace(s[:len(s)-len(m)])
			break
		}
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Clock{}, fmt.Errorf("time %q: want HH:MM or HH:MM:SS", s)
	}
	var vals [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Clock{}, fmt.Errorf("time %q: invalid component %q", s, p)
		}
		vals[i] = n
	}
	c := Clock{Hour: vals[0], Minute: vals[1], Second: vals[2]}

	switch meridiem {
	case "AM", "PM":
		if c.Hour < 1 || c.Hour > 12 {
			return Clock{}, fmt.Errorf("time %q: hour must be 1-12 with %s", s, meridiem)
		}
		c.Hour %= 12
		if meridiem == "PM" {
			c.Hour += 12
		}
	}
	if c.Hour > 23 || c.Minute > 59 || c.Second > 59 {
		return Clock{}, fmt.Errorf("time %q: out of range", s)
	}
	return c, nil
}

// ParseDate parses a YYYY-MM-DD birth date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// Instant resolves the birth moment in the request's zone. When the zone
// cannot be loaded the wall clock is read as UTC and fellBack is true.
func (r *BirthRequest) Instant() (instant time.Time, fellBack bool, err error) {
	d, err := ParseDate(r.DOB)
	if err != nil {
		return time.Time{}, false, err
	}
	c, err := ParseClock(r.Time)
	if err != nil {
		return time.Time{}, false, err
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil || r.Timezone == "" {
		loc, fellBack = time.UTC, true
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour, c.Minute, c.Second, 0, loc), fellBack, nil
}

// Round4 rounds a coordinate to four decimal places, the precision at which
// two births are considered the same place.
func Round4(f float64) float64 {
	return math.Round(f*1e4) / 1e4
}

// BirthKey identifies a birth by date, time and rounded coordinates.
func BirthKey(dob, clock string, lat, lon float64) string {
	return fmt.Sprintf("%s|%s|%.4f|%.4f", dob, clock, Round4(lat), Round4(lon))
}
