package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// archiveDir is where rotated log files land, relative to the log file
const archiveDir = "old"

// sizeDriftLimit is how far the internal size counter may drift from the
// on-disk size before the verifier resyncs it. External appends (or a
// truncate we did not perform) show up as drift.
const sizeDriftLimit = 8 * 1024

// RotatingWriter writes to a log file, rotating it into old/ once it
// grows past maxSize. A background verifier reopens the file when an
// external tool moved or deleted it underneath us, so logrotate-style
// setups keep working without a signal protocol.
type RotatingWriter struct {
	path           string
	maxSize        int64
	verifyInterval time.Duration

	mu   sync.Mutex
	f    *os.File
	size int64

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewRotatingWriter opens path for appending, rotating first if the file
// is already over maxSize, and starts the identity verifier.
func NewRotatingWriter(path string, maxSize int64, verifyInterval time.Duration) (*RotatingWriter, error) {
	w := &RotatingWriter{
		path:           path,
		maxSize:        maxSize,
		verifyInterval: verifyInterval,
		stopCh:         make(chan struct{}),
	}

	if err := w.openLocked(); err != nil {
		return nil, err
	}
	if w.size >= w.maxSize {
		if err := w.rotateLocked(); err != nil {
			return nil, err
		}
	}

	w.wg.Add(1)
	go w.verifyLoop()

	return w, nil
}

// Write implements io.Writer. Rotation happens before the write that
// would cross maxSize, so a line never straddles two files.
func (w *RotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.size+int64(len(p)) >= w.maxSize {
		if err := w.rotateLocked(); err != nil {
			return 0, err
		}
	}

	n, err := w.f.Write(p)
	w.size += int64(n)
	return n, err
}

// Close stops the verifier and closes the file
func (w *RotatingWriter) Close() error {
	close(w.stopCh)
	w.wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return nil
	}
	return w.f.Close()
}

func (w *RotatingWriter) verifyLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.verifyInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.mu.Lock()
			w.verifyLocked()
			w.mu.Unlock()
		case <-w.stopCh:
			return
		}
	}
}

// openLocked opens the log file for appending, creating its directory if
// needed, and syncs the size counter to the file.
func (w *RotatingWriter) openLocked() error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}

	w.f = f
	w.size = fi.Size()
	return nil
}

// rotateLocked moves the current file to old/<basename>.YYYYMMDD-HHMMSS
// and starts a fresh one
func (w *RotatingWriter) rotateLocked() error {
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}

	dir := filepath.Join(filepath.Dir(w.path), archiveDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating archive directory: %w", err)
	}

	archive := filepath.Join(dir, fmt.Sprintf("%s.%s",
		filepath.Base(w.path), time.Now().Format("20060102-150405")))

	// Best effort; the file may already be gone
	_ = os.Rename(w.path, archive)

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating new log file: %w", err)
	}

	w.f = f
	w.size = 0
	return nil
}

// verifyLocked reopens the file when the open descriptor no longer backs
// the configured path, and resyncs the size counter on large drift.
func (w *RotatingWriter) verifyLocked() {
	if w.f == nil {
		_ = w.openLocked()
		return
	}

	fiOpen, err := w.f.Stat()
	if err != nil {
		w.reopenLocked()
		return
	}

	// Lstat rather than Stat: a symlink swapped in at our path counts
	// as a different file
	fiPath, err := os.Lstat(w.path)
	if err != nil || !os.SameFile(fiOpen, fiPath) {
		w.reopenLocked()
		return
	}

	if drift := fiOpen.Size() - w.size; drift > sizeDriftLimit || drift < -sizeDriftLimit {
		w.size = fiOpen.Size()
	}
}

func (w *RotatingWriter) reopenLocked() {
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}
	_ = w.openLocked()
}
