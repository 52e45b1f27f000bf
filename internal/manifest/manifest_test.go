package manifest

import (
	"strings"
	"testing"
)

const sampleWorkOrder = `
Xytech Workorder 1107

Producer: Joan Jett
Operator: John Doe
Job: Dirtfixing


Location:
/hpsans13/production/starwars/reel1/partA/1920x1080
/hpsans12/production/starwars/reel1/VFX/Hydraulx
/hpsans13/production/starwars/reel1/VFX/Framestore

Notes:
Please clean files noted per Colorist Tom Brady
`

func TestParseMetadata(t *testing.T) {
	entry, locations, err := Parse(strings.NewReader(sampleWorkOrder))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if entry.Producer != "Joan Jett" {
		t.Fatalf("unexpected producer %q", entry.Producer)
	}
	if entry.Operator != "John Doe" {
		t.Fatalf("unexpected operator %q", entry.Operator)
	}
	if entry.Job != "Dirtfixing" {
		t.Fatalf("unexpected job %q", entry.Job)
	}
	if !strings.Contains(entry.Notes, "Tom Brady") {
		t.Fatalf("expected notes to be captured, got %q", entry.Notes)
	}
	if len(entry.Locations) != 3 {
		t.Fatalf("expected 3 locations, got %d", len(entry.Locations))
	}

	full, ok := locations.Resolve("/starwars/reel1/partA/1920x1080")
	if !ok {
		t.Fatal("expected stripped key to resolve")
	}
	if full != "/hpsans13/production/starwars/reel1/partA/1920x1080" {
		t.Fatalf("unexpected resolved path %q", full)
	}
}

func TestParseKeepsLocationOrder(t *testing.T) {
	entry, _, err := Parse(strings.NewReader(sampleWorkOrder))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if entry.Locations[0].Stripped != "/starwars/reel1/partA/1920x1080" {
		t.Fatalf("unexpected first location %q", entry.Locations[0].Stripped)
	}
	if entry.Locations[2].Stripped != "/starwars/reel1/VFX/Framestore" {
		t.Fatalf("unexpected last location %q", entry.Locations[2].Stripped)
	}
}

func TestParseDuplicateKeyLastWins(t *testing.T) {
	input := `
/hpsans01/production/shows/X/reel1
/hpsans02/production/shows/X/reel1
`
	entry, locations, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	full, ok := locations.Resolve("/shows/X/reel1")
	if !ok || full != "/hpsans02/production/shows/X/reel1" {
		t.Fatalf("expected last write to win, got %q (ok=%v)", full, ok)
	}
	if len(entry.Locations) != 1 {
		t.Fatalf("expected a single deduplicated location, got %d", len(entry.Locations))
	}
	if entry.Locations[0].Full != "/hpsans02/production/shows/X/reel1" {
		t.Fatalf("expected entry to carry the winning path, got %q", entry.Locations[0].Full)
	}
}

func TestParseMalformedLabels(t *testing.T) {
	input := `
Producer
Operator:
Job: Dustbusting
`
	entry, _, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if entry.Producer != "" {
		t.Fatalf("expected empty producer, got %q", entry.Producer)
	}
	if entry.Operator != "" {
		t.Fatalf("expected empty operator, got %q", entry.Operator)
	}
	if entry.Job != "Dustbusting" {
		t.Fatalf("unexpected job %q", entry.Job)
	}
}

func TestParseEmptyInput(t *testing.T) {
	entry, locations, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entry.Locations) != 0 || len(locations) != 0 {
		t.Fatal("expected no locations for empty input")
	}
}
