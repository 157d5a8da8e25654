// Package sqlite is a snapshot persister backed by modernc.org/sqlite.
//
// It keeps the same contract as the JSON file store: every Write replaces
// the whole snapshot inside one transaction, every Read scans the whole
// snapshot back in order. No per-record operations are exposed.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/maloquacious/rollbook/internal/logger"
	"github.com/maloquacious/rollbook/internal/model"
	"github.com/maloquacious/rollbook/internal/persist"
	_ "modernc.org/sqlite"
)

// Store persists the collection in a single SQLite database file.
type Store struct {
	dbPath string
	log    logger.Logger
}

// New creates a Store for the given database path. A nil log falls back to
// the package default logger.
func New(dbPath string, log logger.Logger) *Store {
	if log == nil {
		log = logger.Default
	}
	return &Store{dbPath: dbPath, log: log}
}

// open opens the database with safe defaults.
func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}
	return db, nil
}

// Write replaces the entire snapshot with the given collection in one
// transaction: delete everything, insert everything, stamp the format
// version.
func (s *Store) Write(students []model.Student) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(snapshotSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM students`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM snapshot_meta`); err != nil {
		return fmt.Errorf("failed to clear snapshot metadata: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO snapshot_meta (version, written_at) VALUES (?, strftime('%s', 'now'))`,
		persist.SnapshotVersion)
	if err != nil {
		return fmt.Errorf("failed to stamp snapshot version: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO students (position, name, roll_number, course, grade) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, student := range students {
		if _, err := stmt.Exec(i, student.Name, student.RollNumber, student.Course, student.Grade); err != nil {
			return fmt.Errorf("failed to insert student at position %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Read reconstructs the collection in position order. A missing database
// file is an empty collection. A database without the snapshot tables or
// with an unsupported format version is logged and read as empty.
func (s *Store) Read() ([]model.Student, error) {
	exists, err := persist.CheckExists(s.dbPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='students'`).Scan(&count)
	if err != nil {
		s.log.Warn("snapshot %s is unreadable, loading empty collection: %v", s.dbPath, err)
		return nil, nil
	}
	if count == 0 {
		s.log.Warn("snapshot %s holds no student tables, loading empty collection", s.dbPath)
		return nil, nil
	}

	var version int
	err = db.QueryRow(`SELECT version FROM snapshot_meta ORDER BY written_at DESC LIMIT 1`).Scan(&version)
	if err != nil {
		s.log.Warn("snapshot %s has no version stamp, loading empty collection: %v", s.dbPath, err)
		return nil, nil
	}
	if version != persist.SnapshotVersion {
		s.log.Warn("snapshot %s has unsupported version %d, loading empty collection", s.dbPath, version)
		return nil, nil
	}

	rows, err := db.Query(`SELECT name, roll_number, course, grade FROM students ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var student model.Student
		if err := rows.Scan(&student.Name, &student.RollNumber, &student.Course, &student.Grade); err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot rows: %w", err)
	}
	return students, nil
}
