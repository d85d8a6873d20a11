package transfer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protomem/study-planner/internal/model"
)

func strPtr(s string) *string { return &s }

func TestFromSessions(t *testing.T) {
	sessions := []model.Session{
		{Title: "Algebra", Date: "2026-10-18", Time: "09:00", DurationMin: 45, Priority: "high", Completed: true, SubjectName: strPtr("Math")},
		{Title: "Reading", Date: "2026-10-19", Time: "18:30", DurationMin: 30, Priority: "low"},
	}

	records := FromSessions(sessions)

	require.Len(t, records, 2)
	assert.Equal(t, "Math", records[0].SubjectName())
	assert.True(t, records[0].Completed)
	assert.Nil(t, records[1].Subject)
	assert.Equal(t, "", records[1].SubjectName())
}

func TestEncodeCSV(t *testing.T) {
	data, err := EncodeCSV([]Record{
		{Title: "Algebra, part 1", Date: "2026-10-18", Time: "09:00", DurationMin: 45, Priority: "high", Completed: true, Subject: strPtr("Math")},
		{Title: "Reading", Date: "2026-10-19", Time: "18:30", DurationMin: 30, Priority: "low"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "title,date,time,duration_min,priority,notes,completed,subject", lines[0])
	assert.Equal(t, `"Algebra, part 1",2026-10-18,09:00,45,high,,1,Math`, lines[1])
	assert.Equal(t, "Reading,2026-10-19,18:30,30,low,,0,", lines[2])
}

func TestEncodeJSON_Empty(t *testing.T) {
	data, err := EncodeJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestEncodeJSON_NullSubject(t *testing.T) {
	data, err := EncodeJSON([]Record{{Title: "Reading", Date: "2026-10-19", Time: "18:30", DurationMin: 30}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"subject": null`)
	assert.Contains(t, string(data), `"duration_min": 30`)
}

func TestDecodeCSV(t *testing.T) {
	input := strings.Join([]string{
		"title,date,time,duration_min,priority,notes,completed,subject",
		"Algebra,2026-10-18,09:00,45,high,chapter 3,1,Math",
		"No time,2026-10-18,,45,high,,0,Math",
		"Reading,2026-10-19,18:30,,,,,",
		",2026-10-19,18:30,20,low,,0,",
		"Physics,2026-10-20,10:00,abc,low,,true, Science ",
	}, "\n")

	batch, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, batch.Skipped)
	require.Len(t, batch.Records, 3)

	algebra := batch.Records[0]
	assert.Equal(t, "Algebra", algebra.Title)
	assert.Equal(t, 45, algebra.DurationMin)
	assert.Equal(t, "chapter 3", algebra.Notes)
	assert.True(t, algebra.Completed)
	assert.Equal(t, "Math", algebra.SubjectName())

	reading := batch.Records[1]
	assert.Equal(t, model.DefaultDurationMin, reading.DurationMin)
	assert.Equal(t, model.DefaultPriority, reading.Priority)
	assert.False(t, reading.Completed)
	assert.Nil(t, reading.Subject)

	physics := batch.Records[2]
	assert.Equal(t, model.DefaultDurationMin, physics.DurationMin)
	assert.True(t, physics.Completed)
	assert.Equal(t, "Science", physics.SubjectName())
}

func TestDecodeCSV_ReorderedColumns(t *testing.T) {
	input := "subject,time,date,title\nMath,08:15,2026-10-18,Drill\n"

	batch, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, batch.Records, 1)
	assert.Equal(t, "Drill", batch.Records[0].Title)
	assert.Equal(t, "08:15", batch.Records[0].Time)
	assert.Equal(t, "Math", batch.Records[0].SubjectName())
}

func TestDecodeCSV_Empty(t *testing.T) {
	batch, err := DecodeCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, batch.Records)
	assert.Zero(t, batch.Skipped)
}

func TestDecodeCSV_InvalidEncoding(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader("title\n\xff\xfe\n"))
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestDecodeJSON(t *testing.T) {
	input := `[
		{"title": "Algebra", "date": "2026-10-18", "time": "09:00", "duration_min": 45, "priority": "high", "completed": 1, "subject": "Math"},
		{"title": "Reading", "date": "2026-10-19", "time": "18:30", "duration_min": "25", "completed": true, "subject": null},
		{"title": "Broken", "date": "2026-10-19"},
		{"title": "Notes", "date": "2026-10-20", "time": "07:00", "notes": "  bring book  ", "completed": "0"}
	]`

	batch, err := DecodeJSON(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, batch.Skipped)
	require.Len(t, batch.Records, 3)

	assert.True(t, batch.Records[0].Completed)
	assert.Equal(t, "Math", batch.Records[0].SubjectName())

	assert.Equal(t, 25, batch.Records[1].DurationMin)
	assert.True(t, batch.Records[1].Completed)
	assert.Nil(t, batch.Records[1].Subject)
	assert.Equal(t, model.DefaultPriority, batch.Records[1].Priority)

	assert.Equal(t, "bring book", batch.Records[2].Notes)
	assert.False(t, batch.Records[2].Completed)
	assert.Equal(t, model.DefaultDurationMin, batch.Records[2].DurationMin)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{"title": "not a list"}`))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestRoundTripCSV(t *testing.T) {
	records := []Record{
		{Title: "Algebra", Date: "2026-10-18", Time: "09:00", DurationMin: 45, Priority: "high", Notes: "multi\nline", Completed: true, Subject: strPtr("Math")},
	}

	data, err := EncodeCSV(records)
	require.NoError(t, err)

	batch, err := DecodeCSV(strings.NewReader(string(data)))
	require.NoError(t, err)

	require.Len(t, batch.Records, 1)
	assert.Equal(t, records[0], batch.Records[0])
}

func TestSubjectNames(t *testing.T) {
	records := []Record{
		{Subject: strPtr("Physics")},
		{Subject: strPtr("Math")},
		{},
		{Subject: strPtr("Physics")},
	}

	assert.Equal(t, []string{"Math", "Physics"}, SubjectNames(records))
	assert.Empty(t, SubjectNames(nil))
}
