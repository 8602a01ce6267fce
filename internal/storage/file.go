package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"fooddash-be/internal/logger"

	"go.uber.org/zap"
)

// FileStore persists each key as one JSON file under a data directory.
type FileStore struct {
	dir     string
	mu      sync.Mutex
	watcher *fsnotify.Watcher

	subMu sync.Mutex
	subs  map[string][]chan struct{}

	done chan struct{}
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch data dir: %w", err)
	}

	s := &FileStore{
		dir:     dir,
		watcher: watcher,
		subs:    make(map[string][]chan struct{}),
		done:    make(chan struct{}),
	}
	go s.watchLoop()

	return s, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return data, nil
}

func (s *FileStore) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Write-then-rename so readers never see a torn value.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)

	s.subMu.Lock()
	s.subs[key] = append(s.subs[key], ch)
	s.subMu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-s.done:
		}
		s.subMu.Lock()
		chans := s.subs[key]
		for i, c := range chans {
			if c == ch {
				s.subs[key] = append(chans[:i], chans[i+1:]...)
				break
			}
		}
		s.subMu.Unlock()
		close(ch)
	}()

	return ch, nil
}

func (s *FileStore) Close() error {
	close(s.done)
	return s.watcher.Close()
}

func (s *FileStore) watchLoop() {
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Base(ev.Name)
			if !strings.HasSuffix(name, ".json") {
				continue
			}
			s.notify(strings.TrimSuffix(name, ".json"))
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.L().Warn("file store watcher error", zap.Error(err))
		}
	}
}

func (s *FileStore) notify(key string) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs[key] {
		select {
		case ch <- struct{}{}:
		default:
			// Subscriber already has a pending signal.
		}
	}
}
