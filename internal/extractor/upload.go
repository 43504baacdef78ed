package extractor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/genai"
)

// detectMIMEType sniffs the container type; non-video results fall back to
// the configured default.
func (e *implExtractor) detectMIMEType(videoPath string) string {
	mt, err := mimetype.DetectFile(videoPath)
	if err != nil || !strings.HasPrefix(mt.String(), "video/") {
		return e.defaultMIMEType
	}
	return mt.String()
}

func (e *implExtractor) upload(ctx context.Context, videoPath string) (*genai.File, error) {
	mimeType := e.detectMIMEType(videoPath)
	e.logger.Info(ctx, "Uploading %s (%s)...", videoPath, mimeType)

	file, err := e.files.UploadFromPath(ctx, videoPath, &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: filepath.Base(videoPath),
	})
	if err != nil {
		return nil, err
	}
	if file.MIMEType == "" {
		file.MIMEType = mimeType
	}

	e.logger.Debug(ctx, "Uploaded as %s", file.Name)
	return file, nil
}

// waitActive polls the file until the service reports it ACTIVE.
func (e *implExtractor) waitActive(ctx context.Context, file *genai.File) (*genai.File, error) {
	if file.State == genai.FileStateActive {
		return file, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.uploadTimeout)
	defer cancel()

	name := file.Name
	mimeType := file.MIMEType
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil, e.pollStopped(ctx, name)
		case <-time.After(e.pollInterval):
		}

		current, err := e.files.Get(ctx, name, nil)
		if err != nil {
			if ctx.Err() != nil {
				return nil, e.pollStopped(ctx, name)
			}
			return nil, fmt.Errorf("get file %s: %w", name, err)
		}

		switch current.State {
		case genai.FileStateActive:
			if current.MIMEType == "" {
				current.MIMEType = mimeType
			}
			e.logger.Info(ctx, "File is ACTIVE (waited %s)", time.Since(start).Round(time.Second))
			return current, nil
		case genai.FileStateFailed:
			msg := "no details"
			if current.Error != nil && current.Error.Message != "" {
				msg = current.Error.Message
			}
			return nil, fmt.Errorf("%w: %s: %s", ErrFileProcessingFailed, name, msg)
		default:
			e.logger.Debug(ctx, "File %s state %s, waiting", name, current.State)
		}
	}
}

// pollStopped maps the end of the poll context to ErrFileNotActive on
// timeout and to the cancellation error otherwise.
func (e *implExtractor) pollStopped(ctx context.Context, name string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s after %s", ErrFileNotActive, name, e.uploadTimeout)
	}
	return ctx.Err()
}

// deleteUpload removes the remote copy; failures only warn.
func (e *implExtractor) deleteUpload(ctx context.Context, name string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	if _, err := e.files.Delete(ctx, name, nil); err != nil {
		e.logger.Warn(ctx, "Failed to delete uploaded file %s: %v", name, err)
		return
	}
	e.logger.Debug(ctx, "Deleted uploaded file %s", name)
}
