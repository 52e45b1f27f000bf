package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"conform/internal/config"
	"conform/internal/deps"
)

// Result is one preflight check outcome.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckDirectoryAccess verifies that the directory exists and is
// readable and writable by the current user.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: access: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// Run evaluates binary and directory checks for a configured pipeline.
// Directories are created first so a fresh install passes.
func Run(cfg *config.Config) []Result {
	results := make([]Result, 0, 6)

	if err := cfg.EnsureDirectories(); err != nil {
		results = append(results, Result{Name: "Directories", Detail: err.Error()})
	}

	for _, status := range deps.Check(deps.ForConfig(cfg)) {
		results = append(results, Result{
			Name:   status.Name,
			Passed: status.Available,
			Detail: status.Detail,
		})
	}

	results = append(results,
		CheckDirectoryAccess("Thumbnail directory", cfg.Paths.ThumbnailDir),
		CheckDirectoryAccess("Snippet directory", cfg.Paths.SnippetDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	)
	return results
}
