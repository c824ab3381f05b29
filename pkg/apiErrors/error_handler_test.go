package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{code: ErrInvalidToken, want: http.StatusUnauthorized},
		{code: ErrInvalidRequest, want: http.StatusBadRequest},
		{code: ErrMissingRequiredData, want: http.StatusBadRequest},
		{code: ErrInvalidFormat, want: http.StatusBadRequest},
		{code: ErrNotFound, want: http.StatusNotFound},
		{code: ErrDatabaseOperation, want: http.StatusInternalServerError},
		{code: ErrExternalService, want: http.StatusBadGateway},
		{code: ErrCommunication, want: http.StatusServiceUnavailable},
		{code: "AUTH_008", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrExternalService, "Something went wrong: quota exceeded", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrExternalService, body.Code)
	assert.Equal(t, "Something went wrong: quota exceeded", body.Message)
	assert.Nil(t, body.Details)
}
