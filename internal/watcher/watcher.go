package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/pdd-flow/internal/logger"
)

type implWatcher struct {
	inputDir      string
	outputDir     string
	settleDelay   time.Duration
	handler       Handler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	pairs         *pairer
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start picks up pairs already in the input directory, then monitors it for
// new ones until ctx is canceled. Running jobs are awaited before returning.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Drop <name>.mp4 together with <name>.txt to generate a PDD")

	if err := w.scan(ctx); err != nil {
		w.logger.Warn(ctx, "Initial scan of %s failed: %v", w.inputDir, err)
	}

	for {
		select {
		case <-ctx.Done():
			w.shutdown(ctx)
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.shutdown(ctx)
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if err := w.offer(ctx, event.Name); err != nil {
				w.shutdown(ctx)
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.shutdown(ctx)
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) shutdown(ctx context.Context) {
	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "File watcher stopped")
}

func (w *implWatcher) scan(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := w.offer(ctx, filepath.Join(w.inputDir, name)); err != nil {
			return err
		}
	}
	return nil
}

// offer feeds path to the pairer and dispatches a completed pair.
func (w *implWatcher) offer(ctx context.Context, path string) error {
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return nil
	}

	job, ok := w.pairs.add(path)
	if !ok {
		w.logger.Debug(ctx, "Waiting for the other half of: %s", path)
		return nil
	}
	job.OutputDir = filepath.Join(w.outputDir, job.Name)
	w.logger.Info(ctx, "New recording pair detected: %s", job.Name)

	// Acquire semaphore slot (blocks if max concurrent reached)
	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()

		// Let the writer finish before the files are read
		select {
		case <-time.After(w.settleDelay):
		case <-ctx.Done():
			return
		}

		if err := w.handler(ctx, job); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", job.Name, err)
		}
	}()

	return nil
}
