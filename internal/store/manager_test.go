package store

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/maloquacious/rollbook/internal/logger"
	"github.com/maloquacious/rollbook/internal/model"
)

// fakePersister substitutes the persistence layer behind the Persister
// contract.
type fakePersister struct {
	snapshot []model.Student
	writeErr error
	readErr  error
	writes   int
}

func (f *fakePersister) Write(students []model.Student) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.snapshot = make([]model.Student, len(students))
	copy(f.snapshot, students)
	f.writes++
	return nil
}

func (f *fakePersister) Read() ([]model.Student, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.snapshot, nil
}

func student(name, roll string) model.Student {
	return model.Student{
		Person:     model.Person{Name: name},
		RollNumber: roll,
		Course:     "Mathematics",
		Grade:      3,
	}
}

func newTestManager() (*StudentManager, *fakePersister) {
	p := &fakePersister{}
	return NewStudentManager(p, logger.New(io.Discard)), p
}

func names(students []model.Student) []string {
	out := make([]string, len(students))
	for i, s := range students {
		out[i] = s.Name
	}
	return out
}

func TestAdd(t *testing.T) {
	m, _ := newTestManager()

	if m.Add(nil) {
		t.Error("adding nil should fail")
	}
	if len(m.All()) != 0 {
		t.Error("collection should still be empty")
	}

	s := student("Ada", "CS101")
	if !m.Add(&s) {
		t.Fatal("add failed")
	}
	got := m.All()
	if !reflect.DeepEqual(got, []model.Student{s}) {
		t.Errorf("got %v, want [%v]", got, s)
	}
}

func TestUpdate(t *testing.T) {
	a, b, c := student("A", "R1"), student("B", "R2"), student("C", "R3")
	x := student("X", "R9")

	tests := []struct {
		name      string
		index     int
		record    *model.Student
		wantOK    bool
		wantNames []string
	}{
		{name: "middle record", index: 1, record: &x, wantOK: true, wantNames: []string{"A", "X", "C"}},
		{name: "first record", index: 0, record: &x, wantOK: true, wantNames: []string{"X", "B", "C"}},
		{name: "past the end", index: 5, record: &x, wantOK: false, wantNames: []string{"A", "B", "C"}},
		{name: "negative index", index: -1, record: &x, wantOK: false, wantNames: []string{"A", "B", "C"}},
		{name: "nil record", index: 1, record: nil, wantOK: false, wantNames: []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager()
			for _, s := range []model.Student{a, b, c} {
				s := s
				m.Add(&s)
			}

			if got := m.Update(tt.index, tt.record); got != tt.wantOK {
				t.Errorf("Update returned %v, want %v", got, tt.wantOK)
			}
			if got := names(m.All()); !reflect.DeepEqual(got, tt.wantNames) {
				t.Errorf("collection is %v, want %v", got, tt.wantNames)
			}
		})
	}
}

func TestDeleteShiftsIndices(t *testing.T) {
	m, _ := newTestManager()
	for _, n := range []string{"A", "B", "C"} {
		s := student(n, "R"+n)
		m.Add(&s)
	}

	if !m.Delete(0) {
		t.Fatal("first delete failed")
	}
	if got := names(m.All()); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Fatalf("after first delete got %v, want [B C]", got)
	}

	if !m.Delete(0) {
		t.Fatal("second delete failed")
	}
	if got := names(m.All()); !reflect.DeepEqual(got, []string{"C"}) {
		t.Fatalf("after second delete got %v, want [C]", got)
	}
}

func TestDeleteOutOfBounds(t *testing.T) {
	m, _ := newTestManager()
	s := student("A", "R1")
	m.Add(&s)

	for _, index := range []int{-1, 1, 5} {
		if m.Delete(index) {
			t.Errorf("Delete(%d) succeeded on a 1-record collection", index)
		}
	}
	if len(m.All()) != 1 {
		t.Error("collection changed on failed delete")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	m, _ := newTestManager()
	s := student("Ada", "CS101")
	m.Add(&s)

	got := m.All()
	got[0].Name = "mutated"

	again := m.All()
	if again[0].Name != "Ada" {
		t.Errorf("mutating the returned slice leaked into the store: %q", again[0].Name)
	}
}

func TestSave(t *testing.T) {
	m, p := newTestManager()
	s := student("Ada", "CS101")
	m.Add(&s)

	if !m.Save() {
		t.Fatal("save failed")
	}
	if p.writes != 1 {
		t.Errorf("persister saw %d writes, want 1", p.writes)
	}
	if !reflect.DeepEqual(p.snapshot, []model.Student{s}) {
		t.Errorf("persisted %v, want [%v]", p.snapshot, s)
	}

	p.writeErr = errors.New("disk full")
	if m.Save() {
		t.Error("save should fail when the persister fails")
	}
}

func TestLoadReplacesCollection(t *testing.T) {
	m, p := newTestManager()
	unsaved := student("Unsaved", "R0")
	m.Add(&unsaved)

	p.snapshot = []model.Student{student("A", "R1"), student("B", "R2")}

	if !m.Load() {
		t.Fatal("load failed")
	}
	if got := names(m.All()); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("got %v, want [A B]", got)
	}
}

func TestLoadFailureLeavesEmptyCollection(t *testing.T) {
	m, p := newTestManager()
	s := student("Ada", "CS101")
	m.Add(&s)

	p.readErr = errors.New("target unreadable")
	if m.Load() {
		t.Error("load should report failure")
	}
	if got := m.All(); len(got) != 0 {
		t.Errorf("collection should be empty after failed load, got %v", got)
	}
}
