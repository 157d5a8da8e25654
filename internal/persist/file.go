package persist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/maloquacious/rollbook/internal/logger"
	"github.com/maloquacious/rollbook/internal/model"
)

// snapshot is the on-disk JSON document: a format version plus the full
// ordered collection.
type snapshot struct {
	Version  int             `json:"version"`
	Students []model.Student `json:"students"`
}

// FileStore persists the collection as a single JSON document at a fixed
// path. Writes overwrite the target in place; a crash mid-write can leave it
// truncated, and the recovery path is read-as-empty on the next load.
type FileStore struct {
	path string
	log  logger.Logger
}

// NewFileStore creates a FileStore for the given snapshot path. A nil log
// falls back to the package default logger.
func NewFileStore(path string, log logger.Logger) *FileStore {
	if log == nil {
		log = logger.Default
	}
	return &FileStore{path: path, log: log}
}

// Write replaces the snapshot file with the full collection.
func (f *FileStore) Write(students []model.Student) error {
	snap := snapshot{Version: SnapshotVersion, Students: students}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Read reconstructs the collection from the snapshot file. A missing file is
// an empty collection. A file that cannot be decoded, carries an unknown
// version, or holds an out-of-range grade is logged and read as empty.
func (f *FileStore) Read() ([]model.Student, error) {
	exists, err := CheckExists(f.path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		f.log.Warn("snapshot %s is unreadable, loading empty collection: %v", f.path, err)
		return nil, nil
	}
	if snap.Version != SnapshotVersion {
		f.log.Warn("snapshot %s has unsupported version %d, loading empty collection", f.path, snap.Version)
		return nil, nil
	}
	for _, s := range snap.Students {
		if err := model.CheckGrade(s.Grade); err != nil {
			f.log.Warn("snapshot %s holds an invalid record (%v), loading empty collection", f.path, err)
			return nil, nil
		}
	}
	return snap.Students, nil
}
