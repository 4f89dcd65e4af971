package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusCreated, map[string]interface{}{"id": "form-1", "hasErrors": false})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"form-1","hasErrors":false}`, w.Body.String())
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondError(w, http.StatusNotFound, errors.New("Form session not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Form session not found"}`, w.Body.String())
}
