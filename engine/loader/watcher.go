package loader

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/umbra3d/umbra/engine/core"
)

// watchedExtensions are the asset file types the watcher reports changes for.
// Everything else under the assets directory is ignored.
var watchedExtensions = map[string]bool{
	".wgsl": true,
	".gltf": true,
	".glb":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tiff": true,
}

// AssetWatcher watches an assets directory tree and reports created or
// modified asset files. Callers use it to hot-reload shaders and textures
// while the renderer is running.
type AssetWatcher struct {
	mu sync.Mutex

	watcher  *fsnotify.Watcher
	onChange func(path string)
	done     chan struct{}
	closed   bool
}

// NewAssetWatcher creates an AssetWatcher that walks the given directory,
// watches it and every subdirectory, and calls onChange with the path of any
// asset file that is created or written. The callback runs on the watcher
// goroutine.
//
// Parameters:
//   - dir: the assets directory to watch recursively
//   - onChange: callback invoked with the changed file path
//
// Returns:
//   - *AssetWatcher: the running watcher
//   - error: error if the directory cannot be watched
func NewAssetWatcher(dir string, onChange func(path string)) (*AssetWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &AssetWatcher{
		watcher:  fsWatch,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	if err := w.watchRecursive(dir); err != nil {
		fsWatch.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

// Close stops the watcher and releases its resources. Safe to call more than
// once.
//
// Returns:
//   - error: error if the watcher was already closed
func (w *AssetWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New("asset watcher already closed")
	}
	w.closed = true
	close(w.done)
	return w.watcher.Close()
}

func (w *AssetWatcher) run() {
	for {
		select {
		case e, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// New directories need their own watch entry.
			if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := w.watchRecursive(e.Name); err != nil {
						core.LogWarn("failed to watch new asset directory %s: %v", e.Name, err)
					}
				}
				continue
			}

			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !watchedExtensions[filepath.Ext(e.Name)] {
				continue
			}
			if w.onChange != nil {
				w.onChange(e.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher error: %v", err)

		case <-w.done:
			return
		}
	}
}

// watchRecursive adds the directory and every subdirectory to the watch list.
func (w *AssetWatcher) watchRecursive(dir string) error {
	return filepath.Walk(dir, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return w.watcher.Add(walkPath)
		}
		return nil
	})
}
