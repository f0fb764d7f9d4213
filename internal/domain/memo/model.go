package memo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/document"
)

var (
	ErrMemoNotFound = errors.New("memo not found")
	ErrBlankName    = errors.New("firstname and lastname must not be blank")
	ErrUnknownField = errors.New("unknown form field")
)

// Form field identifiers accepted by SetField. They mirror the input
// names of the memo form.
const (
	FieldDepartment   = "department"
	FieldDate         = "date"
	FieldSubject      = "subject"
	FieldActivityName = "activity_name"
	FieldLocation     = "location"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
)

// Memo is one outing-request document being edited. It owns the
// ordered student and teacher rosters, the scalar form fields and the
// derived issuer. All state lives in memory for the lifetime of the
// editing session only.
type Memo struct {
	domain.Aggregate
	MemoID string

	Department   string
	Date         string
	Subject      string
	ActivityName string
	Location     string
	StartDate    string
	EndDate      string

	Students []document.Student
	Teachers []document.Teacher
	Issuer   document.Issuer

	nextStudentID int64
	nextTeacherID int64
}

func New(memoID string) *Memo {
	m := &Memo{MemoID: memoID}
	m.PushEvent(CreatedEvent{At: time.Now().UTC(), MemoID: memoID})
	return m
}

// SetField updates a single scalar form field. Every accepted call is
// a field-change event, even when the value is unchanged: the preview
// must follow the event stream, not guess at it.
func (m *Memo) SetField(name, value string) error {
	switch name {
	case FieldDepartment:
		m.Department = value
	case FieldDate:
		m.Date = value
	case FieldSubject:
		m.Subject = value
	case FieldActivityName:
		m.ActivityName = value
	case FieldLocation:
		m.Location = value
	case FieldStartDate:
		m.StartDate = value
	case FieldEndDate:
		m.EndDate = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	m.PushEvent(FieldsUpdatedEvent{At: time.Now().UTC(), MemoID: m.MemoID, Fields: []string{name}})
	return nil
}

func (m *Memo) AddStudent(title, firstname, lastname, grade, room string) (document.Student, error) {
	if err := validateName(firstname, lastname); err != nil {
		return document.Student{}, err
	}
	m.nextStudentID++
	s := document.Student{
		ID:        m.nextStudentID,
		Title:     title,
		Firstname: firstname,
		Lastname:  lastname,
		Grade:     grade,
		Room:      room,
	}
	m.Students = append(m.Students, s)
	m.PushEvent(StudentAddedEvent{At: time.Now().UTC(), MemoID: m.MemoID, StudentID: s.ID})
	return s, nil
}

// RemoveStudent deletes the matching entry, keeping the relative
// order of the rest. An absent id is a no-op, not an error.
func (m *Memo) RemoveStudent(id int64) {
	for i, s := range m.Students {
		if s.ID == id {
			m.Students = append(m.Students[:i], m.Students[i+1:]...)
			m.PushEvent(StudentRemovedEvent{At: time.Now().UTC(), MemoID: m.MemoID, StudentID: id})
			return
		}
	}
}

func (m *Memo) AddTeacher(title, firstname, lastname, department string) (document.Teacher, error) {
	if err := validateName(firstname, lastname); err != nil {
		return document.Teacher{}, err
	}
	m.nextTeacherID++
	t := document.Teacher{
		ID:         m.nextTeacherID,
		Title:      title,
		Firstname:  firstname,
		Lastname:   lastname,
		Department: department,
	}
	m.Teachers = append(m.Teachers, t)
	m.Issuer = document.ResolveIssuer(m.Issuer, m.Teachers)
	m.PushEvent(TeacherAddedEvent{At: time.Now().UTC(), MemoID: m.MemoID, TeacherID: t.ID})
	return t, nil
}

func (m *Memo) RemoveTeacher(id int64) {
	for i, t := range m.Teachers {
		if t.ID == id {
			m.Teachers = append(m.Teachers[:i], m.Teachers[i+1:]...)
			m.Issuer = document.ResolveIssuer(m.Issuer, m.Teachers)
			m.PushEvent(TeacherRemovedEvent{At: time.Now().UTC(), MemoID: m.MemoID, TeacherID: id})
			return
		}
	}
}

// OverrideIssuer replaces the derived issuer. The override holds only
// until the next teacher mutation re-derives from the first teacher;
// that the override is silently discarded matches the issued form's
// behavior and is kept on purpose.
func (m *Memo) OverrideIssuer(name, position string) {
	m.Issuer = document.Issuer{Name: name, Position: position}
	m.PushEvent(IssuerOverriddenEvent{At: time.Now().UTC(), MemoID: m.MemoID})
}

func (m *Memo) Close() {
	m.PushEvent(ClosedEvent{At: time.Now().UTC(), MemoID: m.MemoID})
}

// Snapshot returns the document aggregate for composition and
// generation. Rosters are copied so the snapshot stays stable while
// editing continues.
func (m *Memo) Snapshot() document.Document {
	students := make([]document.Student, len(m.Students))
	copy(students, m.Students)
	teachers := make([]document.Teacher, len(m.Teachers))
	copy(teachers, m.Teachers)

	return document.Document{
		Department: m.Department,
		Date:       m.Date,
		Subject:    m.Subject,
		Activity: document.Activity{
			Name:      m.ActivityName,
			Location:  m.Location,
			StartDate: m.StartDate,
			EndDate:   m.EndDate,
		},
		Students: students,
		Teachers: teachers,
		Issuer:   m.Issuer,
	}
}

func validateName(firstname, lastname string) error {
	if strings.TrimSpace(firstname) == "" {
		return fmt.Errorf("%w: firstname", ErrBlankName)
	}
	if strings.TrimSpace(lastname) == "" {
		return fmt.Errorf("%w: lastname", ErrBlankName)
	}
	return nil
}
