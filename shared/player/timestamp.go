package player

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp converts an "MM:SS" string into an absolute second
// offset. There is no hour component: a clip beyond 99:59 cannot be
// represented. That is a known limitation of the timestamp format, not
// something to silently work around.
func ParseTimestamp(ts string) (int, error) {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("timestamp %q is not in MM:SS format", ts)
	}

	minutes, err := strconv.Atoi(parts[0])
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("timestamp %q has invalid minutes", ts)
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("timestamp %q has invalid seconds", ts)
	}

	return minutes*60 + seconds, nil
}
