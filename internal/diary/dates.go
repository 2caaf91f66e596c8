package diary

import (
	"fmt"
	"regexp"
	"strconv"
)

// Date patterns commonly embedded in article URLs, tried in order.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`/(\d{4})/(\d{1,2})/(\d{1,2})/`), // /YYYY/MM/DD/
	regexp.MustCompile(`/(\d{4})-(\d{2})-(\d{2})`),      // /YYYY-MM-DD
	regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`),         // YYYYMMDD
}

// ExtractDate recovers an ISO date (YYYY-MM-DD) from a URL, or returns ""
// when no pattern matches. The bounds check is a plausibility filter, not
// calendar validation: February 31 passes.
func ExtractDate(url string) string {
	for _, pattern := range datePatterns {
		match := pattern.FindStringSubmatch(url)
		if match == nil {
			continue
		}

		year, errY := strconv.Atoi(match[1])
		month, errM := strconv.Atoi(match[2])
		day, errD := strconv.Atoi(match[3])
		if errY != nil || errM != nil || errD != nil {
			continue
		}

		if year >= 2024 && year <= 2026 && month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
	}
	return ""
}
