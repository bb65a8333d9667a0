package response_test

import (
	"bestevents/shared/constant"
	"bestevents/shared/failure"
	"bestevents/transport/http/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "validation", err: failure.BadRequestFromString("name is required"), wantCode: http.StatusBadRequest},
		{name: "not found", err: failure.NotFoundKey("venue", 4), wantCode: http.StatusNotFound},
		{name: "storage unavailable", err: failure.Unavailable(errors.New("disk full")), wantCode: http.StatusServiceUnavailable},
		{name: "unclassified", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.err.Error(), *body.Error)
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":1}}`, rec.Body.String())
}

func TestWithAttachment(t *testing.T) {
	t.Run("rendered", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithAttachment(rec, "venues.xlsx", constant.ContentTypeXLSX, func(w io.Writer) error {
			_, err := w.Write([]byte("PK"))

			return err
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
		assert.Equal(t, `attachment; filename="venues.xlsx"`, rec.Header().Get(constant.RequestHeaderDisposition))
		assert.Equal(t, "PK", rec.Body.String())
	})

	t.Run("render failure", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithAttachment(rec, "venues.xlsx", constant.ContentTypeXLSX, func(io.Writer) error {
			return errors.New("sheet too large")
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "sheet too large")
	})
}
