// Package persist stores and reloads the student collection as a single
// snapshot. There is no incremental or per-record I/O: every write replaces
// the persistence target in full, and every read reconstructs the whole
// collection.
package persist

import (
	"fmt"
	"os"

	"github.com/maloquacious/rollbook/internal/model"
)

const (
	// DefaultDataFile is the snapshot file used when the caller does not
	// pick one.
	DefaultDataFile = "students.json"

	// SnapshotVersion is the current snapshot format version. Readers treat
	// any other version as unreadable.
	SnapshotVersion = 1
)

// Persister writes and reads the entire student collection as one unit.
//
// Read returns an empty collection, not an error, when the target does not
// exist. A target that exists but cannot be decoded is logged and also read
// as empty; callers cannot distinguish the two from the return value.
type Persister interface {
	Write(students []model.Student) error
	Read() ([]model.Student, error)
}

// CheckExists verifies the snapshot target exists at the given path.
// Returns true if the target exists, false otherwise.
func CheckExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check snapshot existence: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("snapshot path is a directory, expected file: %s", path)
	}
	return true, nil
}
