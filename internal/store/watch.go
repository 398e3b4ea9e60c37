package store

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// reloadDelay coalesces the burst of events an editor save produces.
const reloadDelay = 200 * time.Millisecond

// Watch reloads the dataset at path whenever it changes, until ctx is
// done. The parent directory is watched so that atomic replaces (write to
// temp file, rename) are seen. A file that fails to parse leaves the
// previous data in place. reloaded, if non-nil, is called after each
// attempt.
func (d *DB) Watch(ctx context.Context, path string, log logrus.FieldLogger, reloaded func(n int, err error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch add: %w", err)
	}
	log.WithField("path", abs).Info("watching dataset")

	timer := time.NewTimer(reloadDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(reloadDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("dataset watch error")
		case <-timer.C:
			n, err := d.LoadDataset(ctx, abs)
			if err != nil {
				log.WithError(err).WithField("path", abs).Error("dataset reload failed, keeping previous data")
			} else {
				log.WithFields(logrus.Fields{"path": abs, "orders": n}).Info("dataset reloaded")
			}
			if reloaded != nil {
				reloaded(n, err)
			}
		}
	}
}
