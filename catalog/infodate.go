/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseInfoDate parses a classic PDF Info-dictionary date string, e.g.
// "D:20210120163651-05'00'" or "D:20210120163651Z", into a time.Time.
// Supplemented from the original implementation's file-metadata extraction,
// not specified by the distilled parameter table.
func ParseInfoDate(raw string) (time.Time, error) {
	s := strings.TrimPrefix(raw, "D:")
	if len(s) < 14 {
		// Pad a short-form date (year-only, year+month, ...) out to the
		// full YYYYMMDDHHmmSS width so the fixed-width parse below works.
		s += "0101000000"[len(s)-4:]
	}

	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in %q: %w", raw, err)
	}
	month, err := strconv.Atoi(s[4:6])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in %q: %w", raw, err)
	}
	day, err := strconv.Atoi(s[6:8])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q: %w", raw, err)
	}
	hour, err := strconv.Atoi(s[8:10])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid hour in %q: %w", raw, err)
	}
	minute, err := strconv.Atoi(s[10:12])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid minute in %q: %w", raw, err)
	}
	second, err := strconv.Atoi(s[12:14])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid second in %q: %w", raw, err)
	}

	loc := time.UTC
	rest := s[14:]
	if len(rest) > 0 && rest[0] != 'Z' {
		sign := rest[0]
		if (sign == '+' || sign == '-') && len(rest) >= 3 {
			offH, errH := strconv.Atoi(rest[1:3])
			offM := 0
			if len(rest) >= 6 {
				offM, _ = strconv.Atoi(rest[4:6])
			}
			if errH == nil {
				offsetSec := (offH*3600 + offM*60)
				if sign == '-' {
					offsetSec = -offsetSec
				}
				loc = time.FixedZone(fmt.Sprintf("UTC%c%02d:%02d", sign, offH, offM), offsetSec)
			}
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), nil
}
