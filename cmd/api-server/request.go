package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/protomem/study-planner/internal/model"
)

func sessionIDFromRequest(r *http.Request) (model.ID, error) {
	return idURLParam(r, "sessionId")
}

func subjectIDFromRequest(r *http.Request) (model.ID, error) {
	return idURLParam(r, "subjectId")
}

func idURLParam(r *http.Request, key string) (model.ID, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, key), 10, 64)
	return model.ID(id), err
}

// dateQueryParams parses a YYYY-MM-DD query value. ok is false when the key is absent.
func dateQueryParams(r *http.Request, key string) (time.Time, bool, error) {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return time.Time{}, false, nil
	}
	val = strings.Trim(val, `'"`)
	t, err := time.Parse(model.DateLayout, val)
	return t, true, err
}

func defaultIntQueryParams(r *http.Request, key string, def int) int {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return i
}

func optionalStringQueryParams(r *http.Request, key string) *string {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return nil
	}
	return &val
}
