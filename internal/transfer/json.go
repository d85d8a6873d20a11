package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

func EncodeJSON(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(records); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// jsonRecord accepts the loose typing found in hand-edited exports:
// numbers as strings, booleans as 0/1, null subjects.
type jsonRecord struct {
	Title       looseString `json:"title"`
	Date        looseString `json:"date"`
	Time        looseString `json:"time"`
	DurationMin looseInt    `json:"duration_min"`
	Priority    looseString `json:"priority"`
	Notes       looseString `json:"notes"`
	Completed   looseBool   `json:"completed"`
	Subject     looseString `json:"subject"`
}

func DecodeJSON(r io.Reader) (Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Batch{}, err
	}
	if !utf8.Valid(data) {
		return Batch{}, ErrEncoding
	}

	var items []jsonRecord
	if err := json.Unmarshal(data, &items); err != nil {
		return Batch{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	var batch Batch
	for _, item := range items {
		rec := Record{
			Title:       string(item.Title),
			Date:        string(item.Date),
			Time:        string(item.Time),
			DurationMin: int(item.DurationMin),
			Priority:    string(item.Priority),
			Notes:       string(item.Notes),
			Completed:   bool(item.Completed),
		}
		if item.Subject != "" {
			name := string(item.Subject)
			rec.Subject = &name
		}
		batch.add(rec)
	}

	return batch, nil
}

type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch x := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = looseString(x)
	default:
		*s = looseString(strings.Trim(string(b), `"`))
	}

	return nil
}

type looseInt int

func (n *looseInt) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch x := v.(type) {
	case float64:
		*n = looseInt(x)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			*n = 0
			return nil
		}
		*n = looseInt(i)
	default:
		*n = 0
	}

	return nil
}

type looseBool bool

func (f *looseBool) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch x := v.(type) {
	case bool:
		*f = looseBool(x)
	case float64:
		*f = x != 0
	case string:
		*f = looseBool(parseFlag(x))
	default:
		*f = false
	}

	return nil
}

func parseFlag(s string) bool {
	s = strings.TrimSpace(s)
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i != 0
	}
	return false
}
