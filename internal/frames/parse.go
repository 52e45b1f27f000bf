package frames

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"conform/internal/logging"
	"conform/internal/manifest"
	"conform/internal/pathkey"
)

// ParseAnnotations reads a Baselight export. Each line carries a path
// token followed by whitespace-separated frame tokens. Lines whose
// stripped path is absent from the location map are dropped whole: the
// two tools may reference disjoint file sets, so this is not an error.
// Non-numeric frame tokens (Baselight emits markers such as <err> and
// <null>) are skipped. A frame annotated twice keeps the later
// location.
func ParseAnnotations(r io.Reader, locations manifest.LocationMap, logger *slog.Logger) (map[int]string, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	annotations := make(map[int]string)
	scanner := bufio.NewScanner(r)
	// Export lines routinely carry hundreds of frame tokens.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		pathToken := fields[0]

		stripped := pathkey.BaselightRoot.Strip(pathToken)
		resolved, ok := locations.Resolve(stripped)
		if !ok {
			logger.Debug("annotation path not in work order, dropping line",
				logging.String("path", pathToken),
				logging.Int("frame_tokens", len(fields)-1))
			continue
		}

		for _, token := range fields[1:] {
			frame, err := strconv.Atoi(token)
			if err != nil || frame < 0 {
				logger.Debug("skipping non-numeric frame token", logging.String("token", token))
				continue
			}
			annotations[frame] = resolved
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan baselight export: %w", err)
	}
	return annotations, nil
}
