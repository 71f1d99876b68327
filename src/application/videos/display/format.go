package display

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration turns an ISO-8601 "PT#H#M#S" duration into H:MM:SS, or M:SS
// when there are no hours. Anything that doesn't look like a duration is "0:00".
func ParseDuration(iso string) string {
	match := durationPattern.FindStringSubmatch(iso)
	if match == nil {
		return "0:00"
	}

	hours := atoiOrZero(match[1])
	minutes := atoiOrZero(match[2])
	seconds := atoiOrZero(match[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}

	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func atoiOrZero(val string) int {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}

	return n
}

type ParseError struct {
	Input string
}

func (p ParseError) Error() string {
	return fmt.Sprintf("view count is not a number: %q", p.Input)
}

func FormatViews(count string) (string, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(count), 10, 64)
	if err != nil {
		return "", ParseError{Input: count}
	}

	return FormatViewCount(n), nil
}

func FormatViewCount(n uint64) string {
	switch {
	case n >= 1e9:
		return strconv.FormatFloat(float64(n)/1e9, 'f', 1, 64) + "B"
	case n >= 1e6:
		return strconv.FormatFloat(float64(n)/1e6, 'f', 1, 64) + "M"
	case n >= 1e3:
		return strconv.FormatFloat(float64(n)/1e3, 'f', 1, 64) + "K"
	default:
		return strconv.FormatUint(n, 10)
	}
}
