package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithData(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{name: "object", data: map[string]int{"country_id": 5}, want: `{"status":200,"message":"ok","data":{"country_id":5}}`},
		{name: "false is kept", data: false, want: `{"status":200,"message":"ok","data":false}`},
		{name: "empty list is kept", data: []string{}, want: `{"status":200,"message":"ok","data":[]}`},
		{name: "nil is omitted", data: nil, want: `{"status":200,"message":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			RespondWithData(rec, req, http.StatusOK, "ok", tt.data)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestRespondWithErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithErrorEnvelope(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusUnauthorized, "invalid token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"invalid token"}`, rec.Body.String())
}

func TestRespondWithErrorAndLogHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	cause := errors.New("pq: password authentication failed for postgres://u:secret@db/precise")

	RespondWithErrorAndLog(rec, httptest.NewRequest(http.MethodPut, "/master/countries/5", nil),
		http.StatusInternalServerError, "Failed to update data", cause)

	var body APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusInternalServerError, body.Status)
	assert.Equal(t, "Failed to update data", body.Message)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetTraceID(req.Context()))

	ctx := SetTraceID(req.Context(), "abc")
	assert.Equal(t, "abc", GetTraceID(ctx))

	generated := GetTraceID(SetTraceID(req.Context(), ""))
	assert.Len(t, generated, 36)
}
