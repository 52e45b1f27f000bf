package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"conform/internal/pathkey"
)

// Location pairs a canonical lookup key with the authoritative facility
// path it was derived from.
type Location struct {
	Stripped string
	Full     string
}

// Entry holds the parsed contents of one Xytech work order. Entries are
// immutable after Parse returns.
type Entry struct {
	Producer  string
	Operator  string
	Job       string
	Notes     string
	Locations []Location
}

// LocationMap resolves a stripped key to its authoritative facility
// path. A repeated key overwrites the earlier path (last write wins).
type LocationMap map[string]string

// Resolve looks up the authoritative path for a stripped key.
func (m LocationMap) Resolve(strippedKey string) (string, bool) {
	full, ok := m[strippedKey]
	return full, ok
}

const (
	labelProducer = "Producer"
	labelOperator = "Operator"
	labelJob      = "Job"
	labelNotes    = "Notes"
)

// Parse reads a Xytech work order. Lines starting with the
// Producer/Operator/Job labels populate metadata: the value is the
// substring after the first colon, trimmed, and a label with no value
// parses as an empty string rather than an error. Free text following a
// Notes label accumulates into Entry.Notes. Every other line beginning
// with a slash is a location; its key is the line with the facility
// root stripped.
func Parse(r io.Reader) (Entry, LocationMap, error) {
	var entry Entry
	locations := make(LocationMap)
	var order []string
	var notes []string
	inNotes := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if value, ok := labelValue(line, labelProducer); ok {
			entry.Producer = value
			inNotes = false
			continue
		}
		if value, ok := labelValue(line, labelOperator); ok {
			entry.Operator = value
			inNotes = false
			continue
		}
		if value, ok := labelValue(line, labelJob); ok {
			entry.Job = value
			inNotes = false
			continue
		}
		if value, ok := labelValue(line, labelNotes); ok {
			inNotes = true
			if value != "" {
				notes = append(notes, value)
			}
			continue
		}
		if !strings.HasPrefix(line, "/") {
			// Banner and section-header lines ("Xytech Workorder 1107",
			// "Location:") carry no path; only notes-block text is kept.
			if inNotes {
				notes = append(notes, line)
			}
			continue
		}
		inNotes = false

		stripped := pathkey.FacilityRoot.Strip(line)
		if _, seen := locations[stripped]; !seen {
			order = append(order, stripped)
		}
		locations[stripped] = line
	}
	if err := scanner.Err(); err != nil {
		return Entry{}, nil, fmt.Errorf("scan work order: %w", err)
	}

	entry.Notes = strings.Join(notes, "\n")
	entry.Locations = make([]Location, 0, len(order))
	for _, key := range order {
		entry.Locations = append(entry.Locations, Location{Stripped: key, Full: locations[key]})
	}
	return entry, locations, nil
}

// labelValue reports whether line carries the given metadata label and
// extracts its value. A bare label with no colon yields an empty value
// instead of failing; anything that merely shares the label's prefix
// (for example a path) is not a label.
func labelValue(line, label string) (string, bool) {
	if !strings.HasPrefix(line, label) {
		return "", false
	}
	rest := line[len(label):]
	if rest == "" {
		return "", true
	}
	if !strings.HasPrefix(rest, ":") {
		return "", false
	}
	return strings.TrimSpace(rest[1:]), true
}
