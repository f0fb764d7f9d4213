package memoservice

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/document"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/memo"
	"github.com/google/uuid"
)

type MessageBus interface {
	PublishEvents(events ...domain.Event) error
}

// Service owns every memo being edited. There is no persistence
// behind it: a memo exists from Create to Close and is gone when the
// process exits. Events popped from the aggregate are published only
// after the registry lock is released, since handlers read back
// through the service.
type Service struct {
	mu     sync.Mutex
	memos  map[string]*memo.Memo
	bus    MessageBus
	logger *slog.Logger
}

func NewService(bus MessageBus, logger *slog.Logger) *Service {
	return &Service{
		memos:  make(map[string]*memo.Memo),
		bus:    bus,
		logger: logger,
	}
}

func (s *Service) Create() (string, error) {
	m := memo.New(uuid.NewString())

	s.mu.Lock()
	s.memos[m.MemoID] = m
	events := m.PopEvents()
	s.mu.Unlock()

	if err := s.bus.PublishEvents(events...); err != nil {
		return "", err
	}
	s.logger.Debug("memo created", "memo_id", m.MemoID)
	return m.MemoID, nil
}

func (s *Service) Close(id string) error {
	return s.withMemo(id, func(m *memo.Memo) error {
		m.Close()
		delete(s.memos, id)
		return nil
	})
}

// SetFields applies a batch of form-field changes. Keys are applied
// in sorted order so a batch is deterministic.
func (s *Service) SetFields(id string, fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return s.withMemo(id, func(m *memo.Memo) error {
		for _, name := range names {
			if err := m.SetField(name, fields[name]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) AddStudent(id, title, firstname, lastname, grade, room string) (st document.Student, err error) {
	err = s.withMemo(id, func(m *memo.Memo) error {
		var err error
		st, err = m.AddStudent(title, firstname, lastname, grade, room)
		return err
	})
	return
}

func (s *Service) RemoveStudent(id string, studentID int64) error {
	return s.withMemo(id, func(m *memo.Memo) error {
		m.RemoveStudent(studentID)
		return nil
	})
}

func (s *Service) AddTeacher(id, title, firstname, lastname, department string) (t document.Teacher, err error) {
	err = s.withMemo(id, func(m *memo.Memo) error {
		var err error
		t, err = m.AddTeacher(title, firstname, lastname, department)
		return err
	})
	return
}

func (s *Service) RemoveTeacher(id string, teacherID int64) error {
	return s.withMemo(id, func(m *memo.Memo) error {
		m.RemoveTeacher(teacherID)
		return nil
	})
}

func (s *Service) OverrideIssuer(id, name, position string) error {
	return s.withMemo(id, func(m *memo.Memo) error {
		m.OverrideIssuer(name, position)
		return nil
	})
}

func (s *Service) Snapshot(id string) (d document.Document, err error) {
	err = s.withMemo(id, func(m *memo.Memo) error {
		d = m.Snapshot()
		return nil
	})
	return
}

func (s *Service) withMemo(id string, do func(*memo.Memo) error) error {
	s.mu.Lock()
	m, ok := s.memos[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", memo.ErrMemoNotFound, id)
	}

	err := do(m)
	var events []domain.Event
	if err == nil {
		events = m.PopEvents()
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}
	return s.bus.PublishEvents(events...)
}
