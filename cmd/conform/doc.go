// Command conform reconciles Baselight frame annotations against a
// Xytech work order, merges contiguous frames into ranges, and, given a
// subject video, classifies each range against the video's frame count,
// extracting thumbnails and clip snippets for in-bound ranges and
// writing a two-sheet XLSX report.
package main
