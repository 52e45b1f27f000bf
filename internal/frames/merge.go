package frames

import "sort"

// Merge collapses a frame-to-location mapping into maximal contiguous
// runs. A run extends while the next frame number is exactly one higher
// and resolves to the same location; a numeric gap or a location change
// always closes it. Output is ordered by ascending start frame.
func Merge(annotations map[int]string) []Record {
	sorted := make([]int, 0, len(annotations))
	for frame := range annotations {
		sorted = append(sorted, frame)
	}
	sort.Ints(sorted)

	records := make([]Record, 0, len(sorted))
	for i := 0; i < len(sorted); i++ {
		start := sorted[i]
		location := annotations[start]
		end := start
		for i+1 < len(sorted) && sorted[i+1] == end+1 && annotations[sorted[i+1]] == location {
			end = sorted[i+1]
			i++
		}
		records = append(records, Record{Location: location, FrameSpec: Spec(start, end)})
	}
	return records
}
