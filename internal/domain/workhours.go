package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// RoundTheClock is the canonical stored form of the "open 24/7" literal.
const RoundTheClock = "Круглосуточно"

var hoursRangeRe = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)

// NormalizeWorkHours validates a free-text work-hours string and returns the
// form to persist. Accepted shapes are the round-the-clock literal in any
// casing (canonicalized to RoundTheClock) and HH:MM-HH:MM with hours in
// [0,23] and minutes in [0,59]. Anything else is rejected.
func NormalizeWorkHours(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidWorkHours
	}
	if strings.EqualFold(s, RoundTheClock) {
		return RoundTheClock, nil
	}
	if !hoursRangeRe.MatchString(s) {
		return "", ErrInvalidWorkHours
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ':' || r == '-' })
	h1, _ := strconv.Atoi(parts[0])
	m1, _ := strconv.Atoi(parts[1])
	h2, _ := strconv.Atoi(parts[2])
	m2, _ := strconv.Atoi(parts[3])
	if h1 > 23 || h2 > 23 || m1 > 59 || m2 > 59 {
		return "", ErrInvalidWorkHours
	}
	return s, nil
}
