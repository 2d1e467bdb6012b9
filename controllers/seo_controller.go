package controllers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-backend/services"
)

type SEOController struct {
	SEOSvc *services.SEOService
}

func NewSEOController(svc *services.SEOService) *SEOController {
	return &SEOController{SEOSvc: svc}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap (GET /sitemap.xml)
func (ctrl *SEOController) Sitemap(c *gin.Context) {
	entries := ctrl.SEOSvc.SitemapEntries()
	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(entries)),
	}
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        e.URL,
			LastMod:    e.LastMod.Format("2006-01-02"),
			ChangeFreq: e.ChangeFreq,
			Priority:   fmt.Sprintf("%.1f", e.Priority),
		})
	}
	c.XML(http.StatusOK, set)
}

// StructuredData (GET /api/structured-data) serves the JSON-LD graph the
// page embeds as its application/ld+json script.
func (ctrl *SEOController) StructuredData(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.SEOSvc.StructuredData())
}

// Robots (GET /robots.txt)
func (ctrl *SEOController) Robots(c *gin.Context) {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", ctrl.SEOSvc.BaseURL())
	c.String(http.StatusOK, body)
}
