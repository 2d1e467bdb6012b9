package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-backend/config"
	"venue-backend/controllers"
	"venue-backend/services"
)

type fakeMailer struct {
	calls int
	sent  []*services.OutboundEmail
	err   error
}

func (m *fakeMailer) Send(_ context.Context, email *services.OutboundEmail) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

func contactRouter(mailer services.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		SMTP: config.SMTPConfig{ToEmail: "owner@example.com"},
		Site: config.SiteConfig{Name: "Markey Gallery", BaseURL: "https://markeygallery.com"},
	}
	svc := services.NewInquiryService(mailer, cfg, zerolog.Nop())
	ctrl := controllers.NewInquiryController(svc, zerolog.Nop())

	r := gin.New()
	r.POST("/api/contact", ctrl.SubmitInquiry)
	return r
}

func postContact(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitInquiry_Success(t *testing.T) {
	mailer := &fakeMailer{}
	r := contactRouter(mailer)

	w := postContact(r, `{"name":"Jane Doe","email":"jane@example.com","eventType":"corporate"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email sent successfully", resp["message"])
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Text, "From: Jane Doe (jane@example.com)")
}

func TestSubmitInquiry_MissingRequiredField(t *testing.T) {
	mailer := &fakeMailer{}
	r := contactRouter(mailer)

	w := postContact(r, `{"name":"Jane Doe","email":"jane@example.com"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["error"])
	assert.Zero(t, mailer.calls, "transport must not be called on validation failure")
}

func TestSubmitInquiry_MalformedBody(t *testing.T) {
	mailer := &fakeMailer{}
	r := contactRouter(mailer)

	w := postContact(r, `{"name":`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, mailer.calls)
}

func TestSubmitInquiry_NumericAndTextualGuests(t *testing.T) {
	for _, body := range []string{
		`{"name":"Jane","email":"jane@example.com","eventType":"private","guests":30}`,
		`{"name":"Jane","email":"jane@example.com","eventType":"private","guests":"30"}`,
	} {
		mailer := &fakeMailer{}
		r := contactRouter(mailer)

		w := postContact(r, body)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, mailer.sent, 1)
		assert.Contains(t, mailer.sent[0].Text, "Number of Guests: 30")
	}
}

func TestSubmitInquiry_TransportFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("connection refused")}
	r := contactRouter(mailer)

	w := postContact(r, `{"name":"Jane Doe","email":"jane@example.com","eventType":"corporate"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to send email", resp["error"])
	// The transport detail stays server-side.
	assert.NotContains(t, w.Body.String(), "connection refused")
}
