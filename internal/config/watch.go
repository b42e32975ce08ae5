package config

import (
	"context"
	"fmt"
	"path/filepath"

	"GopherQueue/internal/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads path whenever it is written and passes every config that
// loads and validates to onChange. Invalid edits are logged and skipped.
// Watch blocks until ctx is done. The directory is watched rather than the
// file so editors that replace the file on save keep working.
func Watch(ctx context.Context, path string, log *zap.Logger, onChange func(QueueConfig)) error {
	log = logger.Or(log)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(abs)
			if err != nil {
				log.Warn("Ignoring invalid config change", zap.String("path", abs), zap.Error(err))
				continue
			}
			log.Info("Config reloaded", zap.String("path", abs))
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("Config watcher error", zap.Error(err))
		}
	}
}
