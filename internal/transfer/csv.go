package transfer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	ErrEncoding = errors.New("transfer: file is not valid UTF-8")
	ErrFormat   = errors.New("transfer: malformed file")
)

var Header = []string{"title", "date", "time", "duration_min", "priority", "notes", "completed", "subject"}

func EncodeCSV(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, err
	}

	for _, r := range records {
		completed := "0"
		if r.Completed {
			completed = "1"
		}

		row := []string{
			r.Title,
			r.Date,
			r.Time,
			strconv.Itoa(r.DurationMin),
			r.Priority,
			r.Notes,
			completed,
			r.SubjectName(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DecodeCSV reads rows keyed by the header line; unknown columns are ignored
// and missing ones take their defaults.
func DecodeCSV(r io.Reader) (Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Batch{}, err
	}
	if !utf8.Valid(data) {
		return Batch{}, ErrEncoding
	}

	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Batch{}, nil
	}
	if err != nil {
		return Batch{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var batch Batch
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Batch{}, fmt.Errorf("%w: %w", ErrFormat, err)
		}

		duration, _ := strconv.Atoi(strings.TrimSpace(field(row, "duration_min")))

		rec := Record{
			Title:       field(row, "title"),
			Date:        field(row, "date"),
			Time:        field(row, "time"),
			DurationMin: duration,
			Priority:    field(row, "priority"),
			Notes:       field(row, "notes"),
			Completed:   parseFlag(field(row, "completed")),
		}
		if name := field(row, "subject"); name != "" {
			rec.Subject = &name
		}

		batch.add(rec)
	}

	return batch, nil
}
