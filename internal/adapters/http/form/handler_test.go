package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"registration/internal/adapters/http/response"
	"registration/internal/adapters/repository/memory"
	"registration/internal/adapters/validator"
	"registration/internal/core/domain/form"
	usecase "registration/internal/core/usecase/form"
	httpErrors "registration/internal/platform/http"
)

type eventResponse struct {
	Type  string `json:"type"`
	Field string `json:"field"`
}

type viewResponse struct {
	ID        string              `json:"id"`
	Values    map[string]string   `json:"values"`
	Errors    map[string][]string `json:"errors"`
	ErrorText map[string]string   `json:"errorText"`
	HasErrors bool                `json:"hasErrors"`
	Events    []eventResponse     `json:"events"`
}

type HandlerTestSuite struct {
	suite.Suite
	repo   *memory.SessionRepository
	router http.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.setup(0)
}

func (s *HandlerTestSuite) setup(maxSessions int) {
	v := validator.NewPlaygroundAdapter()
	rules := form.RegistrationRules(form.WithEmailChecker(validator.EmailChecker(v)))
	s.repo = memory.NewSessionRepository()
	uc := usecase.NewUsecase(s.repo, rules, nil, usecase.Config{MaxSessions: maxSessions})
	h := NewHandler(uc, v)

	r := chi.NewRouter()
	r.Post("/forms", wrap(h.CreateSession))
	r.Get("/forms/{id}", wrap(h.GetSession))
	r.Delete("/forms/{id}", wrap(h.DeleteSession))
	r.Post("/forms/{id}/validate", wrap(h.ValidateSession))
	r.Put("/forms/{id}/fields/{field}", wrap(h.SetField))
	s.router = r
}

func wrap(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			response.RespondError(w, httpErrors.StatusCode(err), err)
		}
	}
}

func (s *HandlerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder) viewResponse {
	var v viewResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *HandlerTestSuite) create() string {
	rec := s.do(http.MethodPost, "/forms", "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return s.decode(rec).ID
}

func (s *HandlerTestSuite) TestCreateSession() {
	rec := s.do(http.MethodPost, "/forms", "")

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
	view := s.decode(rec)
	s.NotEmpty(view.ID)
	s.False(view.HasErrors)
	s.Empty(view.Errors)
	s.NotNil(view.Events)
	s.Empty(view.Events)
	s.Equal("", view.Values["email"])
}

func (s *HandlerTestSuite) TestCreateSession_LimitReached() {
	s.setup(1)
	s.create()

	rec := s.do(http.MethodPost, "/forms", "")

	s.Equal(http.StatusTooManyRequests, rec.Code)
}

func (s *HandlerTestSuite) TestGetSession_NotFound() {
	rec := s.do(http.MethodGet, "/forms/missing", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "Form session not found")
}

func (s *HandlerTestSuite) TestSetField_InvalidEmail() {
	id := s.create()

	rec := s.do(http.MethodPut, "/forms/"+id+"/fields/email", `{"value":"user@"}`)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	view := s.decode(rec)
	s.Equal("user@", view.Values["email"])
	s.Equal([]string{form.MsgEmailInvalid}, view.Errors["email"])
	s.Equal(form.MsgEmailInvalid, view.ErrorText["email"])
	s.True(view.HasErrors)
	s.Equal([]eventResponse{
		{Type: "value_changed", Field: "email"},
		{Type: "errors_changed", Field: "email"},
		{Type: "error_text_changed", Field: "email"},
	}, view.Events)
}

func (s *HandlerTestSuite) TestSetField_PasswordRevalidatesConfirmation() {
	id := s.create()
	s.Require().Equal(http.StatusOK, s.do(http.MethodPut, "/forms/"+id+"/fields/confirmPassword", `{"value":"secret1"}`).Code)

	rec := s.do(http.MethodPut, "/forms/"+id+"/fields/password", `{"value":"secret2"}`)

	s.Require().Equal(http.StatusOK, rec.Code)
	view := s.decode(rec)
	s.Equal([]string{form.MsgPasswordMismatch}, view.Errors["confirmPassword"])
	s.NotContains(view.Errors, "password")
	s.Equal([]eventResponse{
		{Type: "value_changed", Field: "password"},
		{Type: "errors_changed", Field: "password"},
		{Type: "error_text_changed", Field: "password"},
		{Type: "errors_changed", Field: "confirmPassword"},
		{Type: "error_text_changed", Field: "confirmPassword"},
	}, view.Events)
}

func (s *HandlerTestSuite) TestSetField_SameValueEmitsNothing() {
	id := s.create()
	s.Require().Equal(http.StatusOK, s.do(http.MethodPut, "/forms/"+id+"/fields/name", `{"value":"Ana"}`).Code)

	rec := s.do(http.MethodPut, "/forms/"+id+"/fields/name", `{"value":"Ana"}`)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(s.decode(rec).Events)
}

func (s *HandlerTestSuite) TestSetField_EmptyValueIsAccepted() {
	id := s.create()
	s.Require().Equal(http.StatusOK, s.do(http.MethodPut, "/forms/"+id+"/fields/name", `{"value":"Ana"}`).Code)

	rec := s.do(http.MethodPut, "/forms/"+id+"/fields/name", `{"value":""}`)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal([]string{form.MsgNameRequired}, s.decode(rec).Errors["name"])
}

func (s *HandlerTestSuite) TestSetField_BadRequests() {
	id := s.create()

	tests := []struct {
		name   string
		target string
		body   string
		status int
		expect string
	}{
		{"unknown_field", "/forms/" + id + "/fields/username", `{"value":"x"}`, http.StatusBadRequest, "Unknown field"},
		{"unknown_session", "/forms/missing/fields/email", `{"value":"x"}`, http.StatusNotFound, "Form session not found"},
		{"malformed_json", "/forms/" + id + "/fields/email", `{"value":`, http.StatusBadRequest, "invalid request payload"},
		{"missing_value", "/forms/" + id + "/fields/email", `{}`, http.StatusBadRequest, "This field is required"},
		{"value_too_long", "/forms/" + id + "/fields/email", `{"value":"` + strings.Repeat("a", 257) + `"}`, http.StatusBadRequest, "at most 256"},
		{"body_too_large", "/forms/" + id + "/fields/email", `{"value":"` + strings.Repeat("a", maxBodyBytes) + `"}`, http.StatusBadRequest, "invalid request payload"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(http.MethodPut, tt.target, tt.body)

			s.Equal(tt.status, rec.Code)
			s.Contains(rec.Body.String(), tt.expect)
		})
	}
}

func (s *HandlerTestSuite) TestValidateSession() {
	id := s.create()

	rec := s.do(http.MethodPost, "/forms/"+id+"/validate", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	view := s.decode(rec)
	s.True(view.HasErrors)
	s.Equal(map[string][]string{
		"name":            {form.MsgNameRequired},
		"email":           {form.MsgEmailRequired},
		"phone":           {form.MsgPhoneRequired},
		"password":        {form.MsgPasswordRequired},
		"confirmPassword": {form.MsgConfirmRequired},
	}, view.Errors)
	s.Len(view.Events, 10)
}

func (s *HandlerTestSuite) TestDeleteSession() {
	id := s.create()

	rec := s.do(http.MethodDelete, "/forms/"+id, "")
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.String())

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/forms/"+id, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/forms/"+id, "").Code)

	count, err := s.repo.Count(context.Background())
	s.NoError(err)
	s.Zero(count)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type stubManager struct {
	Manager
	err error
}

func (m stubManager) CreateSession(context.Context) (*usecase.SessionView, error) {
	return nil, m.err
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{form.ErrSessionNotFound, http.StatusNotFound},
		{form.ErrUnknownField, http.StatusBadRequest},
		{form.ErrInvalidSessionID, http.StatusBadRequest},
		{form.ErrSessionLimitReached, http.StatusTooManyRequests},
		{&form.AlreadyExistsError{ID: "a"}, http.StatusConflict},
		{context.Canceled, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(stubManager{err: tt.err}, validator.NewPlaygroundAdapter())
			err := h.CreateSession(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/forms", nil))
			assert.Equal(t, tt.status, httpErrors.StatusCode(err))
		})
	}
}
