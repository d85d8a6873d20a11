package transfer

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/protomem/study-planner/internal/model"
)

// Record is the portable form of a session.
type Record struct {
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	DurationMin int     `json:"duration_min"`
	Priority    string  `json:"priority"`
	Notes       string  `json:"notes"`
	Completed   bool    `json:"completed"`
	Subject     *string `json:"subject"`
}

func (r Record) SubjectName() string {
	if r.Subject == nil {
		return ""
	}
	return *r.Subject
}

func FromSession(s model.Session) Record {
	return Record{
		Title:       s.Title,
		Date:        s.Date,
		Time:        s.Time,
		DurationMin: s.DurationMin,
		Priority:    s.Priority,
		Notes:       s.Notes,
		Completed:   s.Completed,
		Subject:     s.SubjectName,
	}
}

func FromSessions(sessions []model.Session) []Record {
	records := make([]Record, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, FromSession(s))
	}
	return records
}

// normalize trims the record and fills defaults. It reports false for
// records that lack a title, date or time.
func normalize(r Record) (Record, bool) {
	r.Title = strings.TrimSpace(r.Title)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Priority = strings.TrimSpace(r.Priority)
	r.Notes = strings.TrimSpace(r.Notes)

	if r.Subject != nil {
		name := strings.TrimSpace(*r.Subject)
		r.Subject = &name
		if name == "" {
			r.Subject = nil
		}
	}

	if r.Priority == "" {
		r.Priority = model.DefaultPriority
	}
	if r.DurationMin <= 0 {
		r.DurationMin = model.DefaultDurationMin
	}

	if r.Title == "" || r.Date == "" || r.Time == "" {
		return r, false
	}

	return r, true
}

// SubjectNames lists the distinct subject names referenced by records, sorted.
func SubjectNames(records []Record) []string {
	set := make(map[string]struct{})
	for _, r := range records {
		if name := r.SubjectName(); name != "" {
			set[name] = struct{}{}
		}
	}

	names := maps.Keys(set)
	sort.Strings(names)

	return names
}

type Batch struct {
	Records []Record
	Skipped int
}

func (b *Batch) add(r Record) {
	if r, ok := normalize(r); ok {
		b.Records = append(b.Records, r)
		return
	}
	b.Skipped++
}
