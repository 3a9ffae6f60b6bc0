// Package datastore is a small JSON-file backed key/value store.
// Values live in memory and are flushed to disk atomically on a timer
// and on Close.
package datastore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const autoSaveInterval = 10 * time.Second

type DataStore struct {
	mu       sync.RWMutex
	data     map[string]any
	file     string
	lastSum  string
	closed   bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func New(filePath string) (*DataStore, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	ds := &DataStore{
		data: make(map[string]any),
		file: filePath,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := ds.writeFileAtomic([]byte("{}")); err != nil {
			return nil, fmt.Errorf("create empty store: %w", err)
		}
	} else if err == nil {
		if err := ds.loadFromFile(); err != nil {
			return nil, fmt.Errorf("load store: %w", err)
		}
	} else {
		return nil, fmt.Errorf("stat store file: %w", err)
	}

	go ds.autoSave()
	return ds, nil
}

func (ds *DataStore) Get(key string) (any, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	v, ok := ds.data[key]
	return v, ok
}

func (ds *DataStore) Add(key string, value any) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.closed {
		return
	}
	ds.data[key] = value
}

func (ds *DataStore) Delete(key string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.data, key)
}

func (ds *DataStore) Keys() []string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	keys := make([]string, 0, len(ds.data))
	for k := range ds.data {
		keys = append(keys, k)
	}
	return keys
}

// Close flushes pending data and stops the autosave loop.
func (ds *DataStore) Close() error {
	var err error
	ds.stopOnce.Do(func() {
		close(ds.stop)
		<-ds.done
		err = ds.save()
		ds.mu.Lock()
		ds.closed = true
		ds.mu.Unlock()
	})
	return err
}

func (ds *DataStore) autoSave() {
	defer close(ds.done)
	ticker := time.NewTicker(autoSaveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = ds.save()
		case <-ds.stop:
			return
		}
	}
}

// save writes the current data to disk, skipping the write when the
// serialized content is unchanged since the last save.
func (ds *DataStore) save() error {
	ds.mu.RLock()
	raw, err := json.MarshalIndent(ds.data, "", "  ")
	ds.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	sum := sha256.Sum256(raw)
	checksum := hex.EncodeToString(sum[:])

	ds.mu.Lock()
	if checksum == ds.lastSum {
		ds.mu.Unlock()
		return nil
	}
	ds.lastSum = checksum
	ds.mu.Unlock()

	return ds.writeFileAtomic(raw)
}

func (ds *DataStore) writeFileAtomic(raw []byte) error {
	tmp := ds.file + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, ds.file); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (ds *DataStore) loadFromFile() error {
	raw, err := os.ReadFile(ds.file)
	if err != nil {
		return err
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if err := json.Unmarshal(raw, &ds.data); err != nil {
		return fmt.Errorf("unmarshal store: %w", err)
	}
	sum := sha256.Sum256(raw)
	ds.lastSum = hex.EncodeToString(sum[:])
	return nil
}
