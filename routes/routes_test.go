package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-backend/config"
	"venue-backend/controllers"
	"venue-backend/routes"
	"venue-backend/services"
)

type noopMailer struct{}

func (noopMailer) Send(context.Context, *services.OutboundEmail) error { return nil }

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		SMTP: config.SMTPConfig{ToEmail: "owner@example.com"},
		Site: config.SiteConfig{
			Name:      "Markey Gallery",
			BaseURL:   "https://markeygallery.com",
			ImagesDir: t.TempDir(),
		},
	}
	log := zerolog.Nop()
	ic := controllers.NewInquiryController(services.NewInquiryService(noopMailer{}, cfg, log), log)
	gc := controllers.NewGalleryController(services.NewGalleryService(cfg.Site.ImagesDir, cfg.Site.Name, log))
	sc := controllers.NewSEOController(services.NewSEOService(cfg.Site))
	return routes.SetupRouter(ic, gc, sc, cfg.Site.ImagesDir, log)
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	w := get(testRouter(t), "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_VenueContent(t *testing.T) {
	r := testRouter(t)

	w := get(r, "/api/event-types")
	require.Equal(t, http.StatusOK, w.Code)
	var catalogue []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalogue))
	assert.Len(t, catalogue, 4)

	w = get(r, "/api/venue")
	require.Equal(t, http.StatusOK, w.Code)
	var venue map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &venue))
	assert.EqualValues(t, 70, venue["capacity"])
	assert.Equal(t, true, venue["byob"])
}

func TestRouter_GalleryEmptyDir(t *testing.T) {
	w := get(testRouter(t), "/api/gallery")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"images":[]}`, w.Body.String())
}

func TestRouter_SEOEndpoints(t *testing.T) {
	r := testRouter(t)

	w := get(r, "/sitemap.xml")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<loc>https://markeygallery.com</loc>")
	assert.Contains(t, body, "https://markeygallery.com/#contact")
	assert.Contains(t, body, "<changefreq>weekly</changefreq>")

	w = get(r, "/robots.txt")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sitemap: https://markeygallery.com/sitemap.xml")

	w = get(r, "/api/structured-data")
	require.Equal(t, http.StatusOK, w.Code)
	var ld map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ld))
	assert.Equal(t, "https://schema.org", ld["@context"])
	graph, ok := ld["@graph"].([]any)
	require.True(t, ok)
	assert.Len(t, graph, 4)
}
