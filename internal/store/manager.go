// Package store owns the live in-memory student collection.
package store

import (
	"github.com/maloquacious/rollbook/internal/logger"
	"github.com/maloquacious/rollbook/internal/model"
	"github.com/maloquacious/rollbook/internal/persist"
)

// StudentManager is the sole Manager implementation. It holds the live
// collection and delegates durability to a Persister.
type StudentManager struct {
	students  []model.Student
	persister persist.Persister
	log       logger.Logger
}

var _ Manager = (*StudentManager)(nil)

// NewStudentManager creates an empty StudentManager backed by p. A nil log
// falls back to the package default logger.
func NewStudentManager(p persist.Persister, log logger.Logger) *StudentManager {
	if log == nil {
		log = logger.Default
	}
	return &StudentManager{persister: p, log: log}
}

// Add appends a copy of *s to the collection.
func (m *StudentManager) Add(s *model.Student) bool {
	if s == nil {
		return false
	}
	m.students = append(m.students, *s)
	return true
}

// Update replaces the record at index with a copy of *s.
func (m *StudentManager) Update(index int, s *model.Student) bool {
	if index < 0 || index >= len(m.students) || s == nil {
		return false
	}
	m.students[index] = *s
	return true
}

// Delete removes the record at index.
func (m *StudentManager) Delete(index int) bool {
	if index < 0 || index >= len(m.students) {
		return false
	}
	m.students = append(m.students[:index], m.students[index+1:]...)
	return true
}

// All returns a defensive copy of the collection.
func (m *StudentManager) All() []model.Student {
	out := make([]model.Student, len(m.students))
	copy(out, m.students)
	return out
}

// Save writes the full collection through the persister.
func (m *StudentManager) Save() bool {
	if err := m.persister.Write(m.students); err != nil {
		m.log.Error("failed to save students: %v", err)
		return false
	}
	return true
}

// Load replaces the collection with the persisted snapshot. Unsaved records
// are discarded even when the load fails; the failure leaves an empty
// collection.
func (m *StudentManager) Load() bool {
	students, err := m.persister.Read()
	if err != nil {
		m.log.Error("failed to load students: %v", err)
		m.students = nil
		return false
	}
	// Copy so the store is the only owner of the live collection.
	m.students = make([]model.Student, len(students))
	copy(m.students, students)
	return true
}
