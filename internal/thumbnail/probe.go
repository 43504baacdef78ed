package thumbnail

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// probeResult matches the ffprobe JSON fields we read
type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// probeDuration returns the container duration reported by ffprobe.
func (e *implExtractor) probeDuration(ctx context.Context, videoPath string) (time.Duration, error) {
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		videoPath,
	}

	out, err := e.executor.Execute(ctx, e.ffprobePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	var probe probeResult
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}

	secs, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil || secs <= 0 {
		return 0, fmt.Errorf("ffprobe reported no duration")
	}
	return time.Duration(secs * float64(time.Second)), nil
}
