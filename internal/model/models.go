package model

import (
	"math"
	"time"
)

type ID = uint

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = DateLayout + " " + TimeLayout
)

const (
	MinDurationMin     = 10
	DefaultDurationMin = 30
	DefaultPriority    = PriorityMedium
	DefaultColor       = "#e7dfd5"
	NoSubjectName      = "No subject"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type User struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type Subject struct {
	ID    ID     `json:"id" db:"id"`
	User  ID     `json:"userId" db:"user_id"`
	Name  string `json:"name" db:"name"`
	Color string `json:"color" db:"color"`

	SessionsCount int `json:"sessionsCount" db:"sessions_count"`
}

type Session struct {
	ID      ID  `json:"id" db:"id"`
	User    ID  `json:"userId" db:"user_id"`
	Subject *ID `json:"subjectId,omitempty" db:"subject_id"`

	Title       string `json:"title" db:"title"`
	Date        string `json:"date" db:"session_date"`
	Time        string `json:"time" db:"session_time"`
	DurationMin int    `json:"durationMin" db:"duration_min"`
	Priority    string `json:"priority" db:"priority"`
	Notes       string `json:"notes" db:"notes"`

	Completed    bool `json:"completed" db:"completed"`
	ReminderSent bool `json:"reminderSent" db:"reminder_sent"`

	SubjectName  *string `json:"subjectName,omitempty" db:"subject_name"`
	SubjectColor *string `json:"subjectColor,omitempty" db:"subject_color"`
}

// ScheduledAt combines the stored date and wall-clock time in loc.
func (s Session) ScheduledAt(loc *time.Location) (time.Time, error) {
	return ParseScheduledAt(s.Date, s.Time, loc)
}

// ReminderCandidate is the projection of a session read by the reminder sweep.
type ReminderCandidate struct {
	ID          ID     `db:"id"`
	Title       string `db:"title"`
	Date        string `db:"session_date"`
	Time        string `db:"session_time"`
	DurationMin int    `db:"duration_min"`
}

func (c ReminderCandidate) ScheduledAt(loc *time.Location) (time.Time, error) {
	return ParseScheduledAt(c.Date, c.Time, loc)
}

func ParseScheduledAt(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateTimeLayout, date+" "+clock, loc)
}

type Stats struct {
	Total   int `json:"total" db:"total"`
	Done    int `json:"done" db:"done"`
	Minutes int `json:"minutes" db:"minutes"`
}

// FocusRate is the percentage of completed sessions, halves rounded to even.
func (s Stats) FocusRate() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(s.Done) / float64(s.Total) * 100))
}

type SubjectBreakdown struct {
	Name          string `json:"name" db:"name"`
	Color         string `json:"color" db:"color"`
	CountSessions int    `json:"countSessions" db:"count_sessions"`
	Minutes       int    `json:"minutes" db:"minutes"`
}

type PeriodBucket struct {
	Label         string `json:"label" db:"label"`
	CountSessions int    `json:"countSessions" db:"count_sessions"`
	Minutes       int    `json:"minutes" db:"minutes"`
}
