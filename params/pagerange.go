/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package params

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePageRange parses a comma-separated page-range string such as
// "1,3-5,9" into a []PageRange. An empty string yields an empty (unrestricted)
// range. Grounded on the page-range restriction supplement.
func ParsePageRange(s string) ([]PageRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var ranges []PageRange
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx := strings.IndexByte(part, '-'); idx >= 0 {
			startStr := strings.TrimSpace(part[:idx])
			endStr := strings.TrimSpace(part[idx+1:])
			start, err := strconv.Atoi(startStr)
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q: %w", part, err)
			}
			end, err := strconv.Atoi(endStr)
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q: %w", part, err)
			}
			if end < start {
				return nil, fmt.Errorf("invalid page range %q: end before start", part)
			}
			ranges = append(ranges, PageRange{Start: start, End: end})
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q: %w", part, err)
		}
		ranges = append(ranges, PageRange{Start: n, End: n})
	}
	return ranges, nil
}
