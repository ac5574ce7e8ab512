// Package monitor watches the credential file for changes after startup.
//
// Configuration is loaded once and never reloaded while the server runs, so
// a changed credential file cannot take effect silently. The monitor's job
// is to make that visible: any change to the watched file is reported as a
// security-relevant event so operators know a restart is required.
package monitor

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"mcp-textutils-service/pkg/logging"
)

// ChangeEvent describes a change observed on the watched credential file
type ChangeEvent struct {
	Type string // create, modify, delete
	Path string
}

// EnvFileMonitor watches a single environment file for changes
type EnvFileMonitor struct {
	watcher       *fsnotify.Watcher
	logger        *logging.StructuredLogger
	debounceDelay time.Duration

	mu        sync.Mutex
	callbacks []func(ChangeEvent)
}

// NewEnvFileMonitor creates a new environment file monitor
func NewEnvFileMonitor(logger *logging.StructuredLogger) (*EnvFileMonitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &EnvFileMonitor{
		watcher:       watcher,
		logger:        logger,
		debounceDelay: 500 * time.Millisecond,
		callbacks:     make([]func(ChangeEvent), 0),
	}, nil
}

// SetDebounceDelay overrides the event debounce window
func (efm *EnvFileMonitor) SetDebounceDelay(d time.Duration) {
	if d > 0 {
		efm.debounceDelay = d
	}
}

// WatchFile starts watching the environment file at path. The containing
// directory is watched rather than the file itself so that editors which
// replace the file on save (rename over the original) are still observed.
func (efm *EnvFileMonitor) WatchFile(path string, callback func(ChangeEvent)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	if err := efm.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	efm.mu.Lock()
	efm.callbacks = append(efm.callbacks, callback)
	first := len(efm.callbacks) == 1
	efm.mu.Unlock()

	// One event loop serves every registered callback
	if first {
		go efm.monitorEvents(abs)
	}

	efm.logger.LogFileSystemEvent("watch_started", abs, map[string]interface{}{
		"directory": dir,
	})
	return nil
}

// StopWatching stops the file monitoring
func (efm *EnvFileMonitor) StopWatching() error {
	if efm.watcher != nil {
		return efm.watcher.Close()
	}
	return nil
}

// monitorEvents processes file system events with debouncing
func (efm *EnvFileMonitor) monitorEvents(target string) {
	var debounce *time.Timer

	for {
		select {
		case event, ok := <-efm.watcher.Events:
			if !ok {
				return
			}

			// Only the credential file itself matters
			if filepath.Clean(event.Name) != target {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(efm.debounceDelay, func() {
				efm.processEvent(event)
			})

		case err, ok := <-efm.watcher.Errors:
			if !ok {
				return
			}
			efm.logger.WithError(err).Warn("File watcher error")
		}
	}
}

// processEvent classifies the fsnotify event and notifies callbacks
func (efm *EnvFileMonitor) processEvent(event fsnotify.Event) {
	var eventType string
	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		eventType = "create"
	case event.Op&fsnotify.Write == fsnotify.Write:
		eventType = "modify"
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		eventType = "delete"
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		eventType = "delete"
	default:
		return
	}

	changeEvent := ChangeEvent{Type: eventType, Path: event.Name}

	efm.logger.LogSecurityEvent("credential_file_changed", map[string]interface{}{
		"event_type": eventType,
		"path":       event.Name,
		"action":     "restart required for new credentials to take effect",
	})

	efm.mu.Lock()
	callbacks := make([]func(ChangeEvent), len(efm.callbacks))
	copy(callbacks, efm.callbacks)
	efm.mu.Unlock()

	for _, callback := range callbacks {
		callback(changeEvent)
	}
}
