package report

import (
	"conform/internal/frames"
	"conform/internal/timecode"
)

// Row is one report line for a frame record.
type Row struct {
	Location  string
	FrameSpec string
	Timecode  string
	Start     int
	End       int
	IsRange   bool
	InBound   bool
	// Thumbnail is the artifact path embedded next to the row; set by
	// the artifact driver for fix rows whose extraction succeeded.
	Thumbnail string
}

// Partition splits classified rows between the two report sheets. Every
// input record lands in exactly one of the slices.
type Partition struct {
	// Fix holds in-bound ranges that get thumbnails and clip snippets.
	Fix []Row
	// NotUsed holds out-of-bound ranges and all singleton frames.
	NotUsed []Row
}

// Classify evaluates every frame record against the video's total frame
// bound. A range is in-bound only when both endpoints are at or below
// the bound. Singleton frames have their bound evaluated too, but they
// never qualify for artifacts and always land in NotUsed: only a merged
// multi-frame range warrants an extracted clip.
func Classify(records []frames.Record, totalFrames, fps int) (Partition, error) {
	var p Partition
	for _, record := range records {
		start, end, isRange, err := frames.ParseSpec(record.FrameSpec)
		if err != nil {
			return Partition{}, err
		}
		row := Row{
			Location:  record.Location,
			FrameSpec: record.FrameSpec,
			Start:     start,
			End:       end,
			IsRange:   isRange,
			InBound:   start <= totalFrames && end <= totalFrames,
		}
		if isRange {
			row.Timecode = timecode.RangeLabel(start, end, fps)
			if row.InBound {
				p.Fix = append(p.Fix, row)
			} else {
				p.NotUsed = append(p.NotUsed, row)
			}
		} else {
			row.Timecode = timecode.FromFrame(start, fps)
			p.NotUsed = append(p.NotUsed, row)
		}
	}
	return p, nil
}
