// Package staging watches a drop directory and auto-stages files onto the
// active intake draft. Dropping a floor plan into ~/brix-intake while the
// wizard is open stages it without a separate command.
package staging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
	"github.com/brixlabs/brix-cli/internal/logger"
)

// Watcher auto-stages files dropped into a watched directory.
type Watcher struct {
	dir    string
	wizard driving.WizardController

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	staged  map[string]string // file path -> local document id
	started bool
	done    chan struct{}
}

// NewWatcher creates a watcher over the given drop directory. The directory
// is created if missing.
func NewWatcher(dir string, wizard driving.WizardController) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		dir:     dir,
		wizard:  wizard,
		watcher: fsw,
		staged:  make(map[string]string),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching. Runs until the context is cancelled or Close is
// called. A second Start is a no-op.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	go w.run(ctx)
}

// Close stops the watcher and releases the underlying notify handle.
// Safe to call whether or not Start ever ran.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()
	if started {
		<-w.done
	}
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
				w.stage(ctx, event.Name)
			}
			if event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
				w.unstage(ctx, event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("staging watch error: %v", err)
		}
	}
}

// stage adds a dropped file to the draft. Duplicate events for a path
// (create then write) stage it once.
func (w *Watcher) stage(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	docType := DocumentTypeForFile(path)
	if docType == "" {
		logger.Debug("staging: ignoring unsupported file %s", filepath.Base(path))
		return
	}

	w.mu.Lock()
	_, already := w.staged[path]
	w.mu.Unlock()
	if already {
		return
	}

	doc, err := w.wizard.StageDocument(ctx, path, docType)
	if err != nil {
		logger.Warn("staging %s failed: %v", filepath.Base(path), err)
		return
	}

	w.mu.Lock()
	w.staged[path] = doc.LocalID
	w.mu.Unlock()
	logger.Info("staged %s as %s", filepath.Base(path), docType)
}

// unstage drops a removed file from the draft, if this watcher staged it.
func (w *Watcher) unstage(ctx context.Context, path string) {
	w.mu.Lock()
	localID, ok := w.staged[path]
	delete(w.staged, path)
	w.mu.Unlock()
	if !ok {
		return
	}

	if err := w.wizard.UnstageDocument(ctx, localID); err != nil {
		logger.Warn("unstaging %s failed: %v", filepath.Base(path), err)
		return
	}
	logger.Info("unstaged %s", filepath.Base(path))
}

// DocumentTypeForFile classifies a dropped file by name. Returns "" for
// files the intake cannot use.
func DocumentTypeForFile(path string) domain.DocumentType {
	name := strings.ToLower(filepath.Base(path))
	ext := filepath.Ext(name)

	switch {
	case strings.Contains(name, "floorplan"), strings.Contains(name, "floor-plan"),
		strings.Contains(name, "floor_plan"), ext == ".dwg":
		return domain.DocumentTypeFloorPlan
	case strings.Contains(name, "survey"):
		return domain.DocumentTypeSurvey
	case strings.Contains(name, "planning"):
		return domain.DocumentTypePlanning
	case ext == ".jpg", ext == ".jpeg", ext == ".png":
		return domain.DocumentTypePhoto
	case ext == ".pdf", ext == ".txt":
		return domain.DocumentTypeOther
	default:
		return ""
	}
}
