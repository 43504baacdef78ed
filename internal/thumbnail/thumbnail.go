package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
	"github.com/nguyentantai21042004/pdd-flow/pkg/timecode"
)

var errSkipped = errors.New("skipped")

// Check verifies ffmpeg and ffprobe can be resolved.
func (e *implExtractor) Check() error {
	if _, err := e.executor.LookPath(e.ffmpegPath); err != nil {
		return err
	}
	if _, err := e.executor.LookPath(e.ffprobePath); err != nil {
		return err
	}
	return nil
}

// ExtractAll grabs every step and sub-step frame with bounded parallelism.
func (e *implExtractor) ExtractAll(ctx context.Context, videoPath string, doc *pdd.Document, dir string) (Report, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Report{}, fmt.Errorf("create thumbnail dir: %w", err)
	}

	duration, err := e.probeDuration(ctx, videoPath)
	if err != nil {
		e.logger.Warn(ctx, "Could not read video duration, timestamps are not range-checked: %v", err)
		duration = 0
	}

	targets := doc.Targets()
	report := Report{Total: len(targets)}
	e.logger.Info(ctx, "Extracting %d thumbnails (max %d concurrent)...", len(targets), e.maxConcurrent)

	var mu sync.Mutex
	used := make(map[string]int)

	var g errgroup.Group
	g.SetLimit(e.maxConcurrent)

	for i, target := range targets {
		out := filepath.Join(dir, uniqueName(used, FileName(target.Kind, target.Numbering)))
		*target.Thumbnail = out

		g.Go(func() error {
			err := e.extractOne(ctx, videoPath, target.TimeStamp, out, duration)

			mu.Lock()
			defer mu.Unlock()

			if err == nil {
				report.Extracted++
				return nil
			}

			*target.Thumbnail = ""
			if errors.Is(err, errSkipped) {
				report.Skipped++
			} else {
				report.Failed++
			}
			report.Failures = append(report.Failures, Failure{
				Kind:      target.Kind,
				Numbering: target.Numbering,
				TimeStamp: target.TimeStamp,
				Reason:    err.Error(),
				index:     i,
			})
			e.logger.Warn(ctx, "Warning: no thumbnail for %s %s at %q: %v",
				target.Kind, target.Numbering, target.TimeStamp, err)
			return nil
		})
	}

	_ = g.Wait()

	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].index < report.Failures[j].index
	})

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("thumbnails interrupted after %d/%d: %w", report.Extracted, report.Total, err)
	}

	e.logger.Info(ctx, "Thumbnails extracted: %d/%d (%d skipped, %d failed)",
		report.Extracted, report.Total, report.Skipped, report.Failed)
	return report, nil
}

func (e *implExtractor) extractOne(ctx context.Context, videoPath, timeStamp, out string, duration time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	at, err := timecode.Parse(timeStamp)
	if err != nil {
		return fmt.Errorf("%w: %v", errSkipped, err)
	}
	if duration > 0 && at >= duration {
		return fmt.Errorf("%w: %s is past the end of the video (%s)", errSkipped, timeStamp, timecode.Format(duration))
	}

	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-ss", timecode.FFmpeg(at),
		"-i", videoPath,
		"-frames:v", "1",
		"-vf", fmt.Sprintf("scale=%d:-2", e.width),
		"-q:v", strconv.Itoa(e.quality),
		"-y",
		out,
	}

	if _, err := e.executor.Execute(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg extract frame: %w", err)
	}

	// ffmpeg exits cleanly without output when the seek lands after the last frame
	if _, err := os.Stat(out); err != nil {
		return fmt.Errorf("ffmpeg wrote no frame: %w", err)
	}

	e.logger.Debug(ctx, "Thumbnail written: %s", out)
	return nil
}
