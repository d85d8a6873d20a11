package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWithHeaders(t *testing.T) {
	w := httptest.NewRecorder()

	headers := http.Header{"X-Request": []string{"1"}}
	require.NoError(t, JSONWithHeaders(w, http.StatusCreated, JSONObject{"status": "OK"}, headers))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "1", w.Header().Get("X-Request"))
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
}

func TestAttachment(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, Attachment(w, "text/csv", "study_sessions.csv", []byte("title\n")))

	assert.Equal(t, "attachment; filename=study_sessions.csv", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "title\n", w.Body.String())
}

func TestMetricsResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	mw := NewMetricsResponseWriter(rec)

	mw.WriteHeader(http.StatusTeapot)
	_, err := mw.Write([]byte("short and stout"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, mw.StatusCode)
	assert.Equal(t, len("short and stout"), mw.BytesCount)
}
