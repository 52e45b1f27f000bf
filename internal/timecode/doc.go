// Package timecode converts frame indices to broadcast timecodes and
// durations to frame counts. All functions are pure.
package timecode
