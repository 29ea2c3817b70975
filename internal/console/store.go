package console

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"todoapp/internal/service"
)

// ErrTaskNotFound is returned for IDs that do not exist in the session.
var ErrTaskNotFound = errors.New("task not found")

// Task is the console variant's non-persistent task record.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store keeps tasks in memory for the lifetime of the process. IDs are
// sequential from 1 and never reused; listing follows insertion order.
// Validation and sanitization rules are shared with the API service.
type Store struct {
	mu     sync.Mutex
	tasks  []*Task
	nextID int64
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Add(title string, description *string) (*Task, error) {
	cleanTitle, err := service.SanitizeTitle(title)
	if err != nil {
		return nil, err
	}

	var cleanDesc *string
	if description != nil {
		cleanDesc, err = service.SanitizeDescription(*description)
		if err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	task := &Task{
		ID:          s.nextID,
		Title:       cleanTitle,
		Description: cleanDesc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.tasks = append(s.tasks, task)
	return task, nil
}

func (s *Store) List() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Get(id int64) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(id)
}

func (s *Store) Update(id int64, title, description *string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.find(id)
	if err != nil {
		return nil, err
	}

	// Sanitize every provided field before assigning any, so a rejected
	// update leaves the task untouched.
	var cleanTitle string
	if title != nil {
		cleanTitle, err = service.SanitizeTitle(*title)
		if err != nil {
			return nil, err
		}
	}
	var cleanDesc *string
	if description != nil {
		cleanDesc, err = service.SanitizeDescription(*description)
		if err != nil {
			return nil, err
		}
	}

	if title != nil {
		task.Title = cleanTitle
	}
	if description != nil {
		task.Description = cleanDesc
	}
	task.UpdatedAt = time.Now()
	return task, nil
}

func (s *Store) ToggleCompletion(id int64) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.find(id)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	task.UpdatedAt = time.Now()
	return task, nil
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: ID %d", ErrTaskNotFound, id)
}

func (s *Store) find(id int64) (*Task, error) {
	for _, task := range s.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, fmt.Errorf("%w: ID %d", ErrTaskNotFound, id)
}
