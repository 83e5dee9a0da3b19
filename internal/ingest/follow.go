package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FollowOptions configures a Follower.
type FollowOptions struct {
	// Path of the log file to follow.
	Path string

	// FromStart feeds the file's existing content before waiting for new
	// writes. Otherwise following starts at the current end of file.
	FromStart bool

	// FollowRotate keeps following when the file is removed or renamed,
	// waiting for it to reappear at the same path.
	FollowRotate bool

	// LineFunc receives each line. Called from a single goroutine.
	LineFunc LineFunc
}

// Follower streams a growing log file, line by line, to a LineFunc. It
// detects appends with fsnotify and optionally survives log rotation.
type Follower struct {
	opts    FollowOptions
	file    *os.File
	offset  int64
	watcher *fsnotify.Watcher
}

// NewFollower creates a Follower with the given options.
func NewFollower(opts FollowOptions) *Follower {
	return &Follower{opts: opts}
}

// Run starts following. It blocks until the context is cancelled or an
// error occurs.
func (f *Follower) Run(ctx context.Context) error {
	if err := f.open(); err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.close()

	if f.opts.FromStart {
		if err := f.drain(); err != nil {
			return err
		}
	} else {
		stat, err := f.file.Stat()
		if err != nil {
			return err
		}
		f.offset = stat.Size()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to setup watcher: %w", err)
	}
	f.watcher = watcher
	defer f.watcher.Close()

	if err := f.watcher.Add(f.opts.Path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", f.opts.Path, err)
	}

	return f.watch(ctx)
}

func (f *Follower) open() error {
	file, err := os.Open(f.opts.Path)
	if err != nil {
		return err
	}
	f.file = file
	f.offset = 0
	return nil
}

// watch loops over filesystem events, draining new content on writes.
func (f *Follower) watch(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-f.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed unexpectedly")
			}
			if err := f.handleEvent(ctx, event); err != nil {
				return err
			}

		case err, ok := <-f.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func (f *Follower) handleEvent(ctx context.Context, event fsnotify.Event) error {
	switch {
	case event.Op&fsnotify.Write == fsnotify.Write:
		return f.drain()

	case event.Op&fsnotify.Remove == fsnotify.Remove || event.Op&fsnotify.Rename == fsnotify.Rename:
		return f.handleRotation(ctx)
	}
	return nil
}

// drain reads from the last known offset to the end of the file, feeding
// each complete line to the callback.
func (f *Follower) drain() error {
	if _, err := f.file.Seek(f.offset, io.SeekStart); err != nil {
		return err
	}

	scanner := bufio.NewScanner(f.file)
	buf := make([]byte, maxLineSize)
	scanner.Buffer(buf, maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := f.opts.LineFunc(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	var err error
	f.offset, err = f.file.Seek(0, io.SeekCurrent)
	return err
}

// handleRotation waits for the rotated file to reappear at the same path
// and resumes from its start.
func (f *Follower) handleRotation(ctx context.Context) error {
	if !f.opts.FollowRotate {
		return fmt.Errorf("file rotated")
	}

	if f.file != nil {
		f.file.Close()
		f.file = nil
	}

	timeout := time.After(10 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timeout:
			return fmt.Errorf("timeout waiting for rotated file to reappear")
		case <-ticker.C:
			if err := f.open(); err != nil {
				continue
			}
			if err := f.watcher.Add(f.opts.Path); err != nil {
				return fmt.Errorf("failed to watch rotated file: %w", err)
			}
			return f.drain()
		}
	}
}

func (f *Follower) close() {
	if f.file != nil {
		f.file.Close()
	}
}
