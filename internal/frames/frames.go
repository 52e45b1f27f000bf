package frames

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one persisted run of annotated frames sharing a resolved
// location. FrameSpec is either a single frame number ("105") or an
// inclusive range ("101-103"). Records are never mutated after Merge
// emits them.
type Record struct {
	ID        int64
	Location  string
	FrameSpec string
}

// Spec renders an inclusive run as its persisted frame spec.
func Spec(start, end int) string {
	if start == end {
		return strconv.Itoa(start)
	}
	return fmt.Sprintf("%d-%d", start, end)
}

// ParseSpec splits a stored frame spec back into its endpoints. Single
// frames return start == end with isRange false.
func ParseSpec(spec string) (start, end int, isRange bool, err error) {
	if idx := strings.IndexByte(spec, '-'); idx >= 0 {
		start, err = strconv.Atoi(spec[:idx])
		if err != nil {
			return 0, 0, false, fmt.Errorf("frame spec %q: %w", spec, err)
		}
		end, err = strconv.Atoi(spec[idx+1:])
		if err != nil {
			return 0, 0, false, fmt.Errorf("frame spec %q: %w", spec, err)
		}
		if end < start {
			return 0, 0, false, fmt.Errorf("frame spec %q: end precedes start", spec)
		}
		return start, end, true, nil
	}
	start, err = strconv.Atoi(spec)
	if err != nil {
		return 0, 0, false, fmt.Errorf("frame spec %q: %w", spec, err)
	}
	return start, start, false, nil
}
