package memo

import (
	"time"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain"
)

const (
	EventCreated          = "memo.created"
	EventClosed           = "memo.closed"
	EventFieldsUpdated    = "memo.fields_updated"
	EventStudentAdded     = "memo.student_added"
	EventStudentRemoved   = "memo.student_removed"
	EventTeacherAdded     = "memo.teacher_added"
	EventTeacherRemoved   = "memo.teacher_removed"
	EventIssuerOverridden = "memo.issuer_overridden"
)

// Event is a domain event attributable to one memo. The preview
// synchronizer uses Memo() to find the session to recompute.
type Event interface {
	domain.Event
	Memo() string
}

// ChangeEvents lists every event type whose occurrence must trigger a
// preview refresh.
func ChangeEvents() []string {
	return []string{
		EventCreated,
		EventFieldsUpdated,
		EventStudentAdded,
		EventStudentRemoved,
		EventTeacherAdded,
		EventTeacherRemoved,
		EventIssuerOverridden,
	}
}

type CreatedEvent struct {
	At     time.Time
	MemoID string
}

func (e CreatedEvent) Type() string { return EventCreated }
func (e CreatedEvent) PublishedAt() time.Time { return e.At }
func (e CreatedEvent) Memo() string { return e.MemoID }

type ClosedEvent struct {
	At     time.Time
	MemoID string
}

func (e ClosedEvent) Type() string { return EventClosed }
func (e ClosedEvent) PublishedAt() time.Time { return e.At }
func (e ClosedEvent) Memo() string { return e.MemoID }

type FieldsUpdatedEvent struct {
	At     time.Time
	MemoID string
	Fields []string
}

func (e FieldsUpdatedEvent) Type() string { return EventFieldsUpdated }
func (e FieldsUpdatedEvent) PublishedAt() time.Time { return e.At }
func (e FieldsUpdatedEvent) Memo() string { return e.MemoID }

type StudentAddedEvent struct {
	At        time.Time
	MemoID    string
	StudentID int64
}

func (e StudentAddedEvent) Type() string { return EventStudentAdded }
func (e StudentAddedEvent) PublishedAt() time.Time { return e.At }
func (e StudentAddedEvent) Memo() string { return e.MemoID }

type StudentRemovedEvent struct {
	At        time.Time
	MemoID    string
	StudentID int64
}

func (e StudentRemovedEvent) Type() string { return EventStudentRemoved }
func (e StudentRemovedEvent) PublishedAt() time.Time { return e.At }
func (e StudentRemovedEvent) Memo() string { return e.MemoID }

type TeacherAddedEvent struct {
	At        time.Time
	MemoID    string
	TeacherID int64
}

func (e TeacherAddedEvent) Type() string { return EventTeacherAdded }
func (e TeacherAddedEvent) PublishedAt() time.Time { return e.At }
func (e TeacherAddedEvent) Memo() string { return e.MemoID }

type TeacherRemovedEvent struct {
	At        time.Time
	MemoID    string
	TeacherID int64
}

func (e TeacherRemovedEvent) Type() string { return EventTeacherRemoved }
func (e TeacherRemovedEvent) PublishedAt() time.Time { return e.At }
func (e TeacherRemovedEvent) Memo() string { return e.MemoID }

type IssuerOverriddenEvent struct {
	At     time.Time
	MemoID string
}

func (e IssuerOverriddenEvent) Type() string { return EventIssuerOverridden }
func (e IssuerOverriddenEvent) PublishedAt() time.Time { return e.At }
func (e IssuerOverriddenEvent) Memo() string { return e.MemoID }
