package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"conform/internal/config"
)

// Requirement names an external binary the pipeline shells out to.
type Requirement struct {
	Name    string
	Command string
	Purpose string
}

// Status reports the availability of a requirement.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// ForConfig lists the binaries a fully featured run needs.
func ForConfig(cfg *config.Config) []Requirement {
	return []Requirement{
		{Name: "FFprobe", Command: cfg.Media.FFprobeBinary, Purpose: "video duration probing"},
		{Name: "FFmpeg", Command: cfg.Media.FFmpegBinary, Purpose: "thumbnail and clip extraction"},
	}
}

// Check evaluates the provided requirements against PATH.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{Requirement: req}
		command := strings.TrimSpace(req.Command)
		if command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(command)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", command)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Detail = resolved
		results = append(results, status)
	}
	return results
}
