package storage

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

const NoDueDate = "No Due Date"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("task not found")
)

type Task struct {
	ID        int
	Name      string
	Due       string
	Completed bool
}

// ColorTag is the cosmetic class the renderer picks a color from.
func (t Task) ColorTag() string {
	if t.Completed {
		return "green"
	}
	return "teal"
}

// Store owns the task sequence and the id counter. Tasks are kept in
// insertion order and are never removed.
type Store struct {
	mu     sync.Mutex
	tasks  []Task
	nextID int
}

// New returns a store holding a copy of seed. Ids continue after the
// highest seeded id.
func New(seed []Task) *Store {
	s := &Store{
		tasks:  make([]Task, 0, len(seed)),
		nextID: 1,
	}
	for _, t := range seed {
		s.tasks = append(s.tasks, t)
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

// Seed is the example set the application starts with.
func Seed() []Task {
	return []Task{
		{ID: 1, Name: "Finish Project Proposal", Due: "Today 3 PM"},
		{ID: 2, Name: "Buy Groceries", Due: "Tomorrow 10 AM"},
		{ID: 3, Name: "Call Mom", Due: "Yesterday 6 PM", Completed: true},
	}
}

func (s *Store) Add(name, due string) (Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, fmt.Errorf("%w: task description required", ErrValidation)
	}
	due = strings.TrimSpace(due)
	if due == "" {
		due = NoDueDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := Task{
		ID:   s.nextID,
		Name: name,
		Due:  due,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *Store) Toggle(id int) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Completed = !s.tasks[i].Completed
		return s.tasks[i], nil
	}
	return Task{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// All returns a snapshot of every task in insertion order.
func (s *Store) All() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
