// pkg/watch/watch.go

// Package watch re-renders the prompt segment whenever VCS metadata
// changes, for callers that keep a long-lived segment (tmux status bars,
// prompt daemons).
package watch

import (
	"context"
	"path/filepath"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounce = 150 * time.Millisecond

// Metadata watches the VCS metadata under root (its .git or .svn
// directory) and invokes onChange after each burst of events, until ctx
// is cancelled. Events arrive in bursts during commits and rebases, so
// they are debounced.
func Metadata(ctx context.Context, root, metaDir string, log *zap.Logger, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return cerr.Wrap(err, "create watcher")
	}
	defer w.Close()

	target := filepath.Join(root, metaDir)
	if err := w.Add(target); err != nil {
		return cerr.Wrapf(err, "watch %s", target)
	}
	log.Debug("Watching VCS metadata", zap.String("path", target))

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			log.Debug("Metadata event", zap.String("op", event.Op.String()), zap.String("name", event.Name))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", zap.Error(err))
		case <-fire:
			onChange()
		}
	}
}
