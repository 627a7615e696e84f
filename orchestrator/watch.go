package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Watcher scores transcript files dropped into a directory and writes each
// report next to its transcript.
type Watcher struct {
	dir      string
	ext      string
	workers  int
	pipeline *Pipeline
	log      logrus.FieldLogger

	queue   chan string
	mu      sync.Mutex
	pending map[string]bool
}

func NewWatcher(dir, ext string, workers int, p *Pipeline, log logrus.FieldLogger) *Watcher {
	return &Watcher{
		dir:      dir,
		ext:      ext,
		workers:  max(workers, 1),
		pipeline: p,
		log:      log.WithField("dir", dir),
		queue:    make(chan string, 64),
		pending:  map[string]bool{},
	}
}

// Run scores transcripts that have no report yet, then watches for new or
// rewritten ones until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.log.Info("watching for transcripts")

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < w.workers; i++ {
		g.Go(func() error {
			w.worker(ctx)
			return nil
		})
	}
	g.Go(func() error {
		defer close(w.queue)
		if err := w.scanExisting(ctx); err != nil {
			return err
		}
		return w.watch(ctx, fw)
	})
	return g.Wait()
}

func (w *Watcher) isTranscript(path string) bool {
	return strings.EqualFold(filepath.Ext(path), w.ext) && !strings.HasSuffix(path, ReportSuffix)
}

func (w *Watcher) scanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", w.dir, err)
	}
	for _, e := range entries {
		path := filepath.Join(w.dir, e.Name())
		if e.IsDir() || !w.isTranscript(path) {
			continue
		}
		if _, err := os.Stat(ReportPath(path)); err == nil {
			continue
		}
		if !w.enqueue(ctx, path) {
			return nil
		}
	}
	return nil
}

func (w *Watcher) watch(ctx context.Context, fw *fsnotify.Watcher) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !w.isTranscript(event.Name) {
				continue
			}
			if !w.enqueue(ctx, event.Name) {
				return nil
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Error("file watcher error")
		}
	}
}

// enqueue queues path unless it is already waiting. It reports false once
// ctx is done.
func (w *Watcher) enqueue(ctx context.Context, path string) bool {
	w.mu.Lock()
	if w.pending[path] {
		w.mu.Unlock()
		return true
	}
	w.pending[path] = true
	w.mu.Unlock()

	select {
	case w.queue <- path:
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *Watcher) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-w.queue:
			if !ok {
				return
			}
			w.mu.Lock()
			delete(w.pending, path)
			w.mu.Unlock()

			if err := w.process(ctx, path); err != nil {
				w.log.WithError(err).WithField("file", filepath.Base(path)).Error("failed to score transcript")
			}
		}
	}
}

func (w *Watcher) process(ctx context.Context, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		// still being written, a later write event re-queues it
		return nil
	}
	r, err := w.pipeline.Score(ctx, Transcript{Text: string(b)})
	if err != nil {
		return err
	}
	out := ReportPath(path)
	if err := SaveReport(out, r); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	w.log.WithFields(logrus.Fields{
		"file":    filepath.Base(path),
		"report":  filepath.Base(out),
		"overall": r.OverallScore,
	}).Info("transcript scored")
	return nil
}
