package services

import (
	"fmt"
	"time"

	"venue-backend/config"
	"venue-backend/models"
)

// SitemapEntry is one URL of the sitemap.
type SitemapEntry struct {
	URL        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// SEOService builds the crawl and rich-snippet surfaces from the site
// configuration and the venue fact sheet.
type SEOService struct {
	site config.SiteConfig
}

func NewSEOService(site config.SiteConfig) *SEOService {
	return &SEOService{site: site}
}

// BaseURL returns the canonical site URL.
func (s *SEOService) BaseURL() string {
	return s.site.BaseURL
}

// SitemapEntries lists the landing page and its section anchors.
func (s *SEOService) SitemapEntries() []SitemapEntry {
	base := s.site.BaseURL
	now := time.Now()
	return []SitemapEntry{
		{URL: base, LastMod: now, ChangeFreq: "weekly", Priority: 1.0},
		{URL: base + "/#space", LastMod: now, ChangeFreq: "monthly", Priority: 0.8},
		{URL: base + "/#events", LastMod: now, ChangeFreq: "monthly", Priority: 0.8},
		{URL: base + "/#details", LastMod: now, ChangeFreq: "monthly", Priority: 0.7},
		{URL: base + "/#contact", LastMod: now, ChangeFreq: "monthly", Priority: 0.9},
	}
}

// StructuredData returns the schema.org JSON-LD graph for the venue:
// EventVenue, Organization, WebSite and an FAQ page for rich snippets.
func (s *SEOService) StructuredData() map[string]any {
	base := s.site.BaseURL
	name := s.site.Name
	venue := models.Venue()

	return map[string]any{
		"@context": "https://schema.org",
		"@graph": []map[string]any{
			{
				"@type":       "EventVenue",
				"@id":         base + "/#venue",
				"name":        name,
				"description": "Exclusive event venue in Hell's Kitchen for corporate events, milestone celebrations, and private gatherings.",
				"url":         base,
				"priceRange":  "$$$$",
				"address": map[string]any{
					"@type":           "PostalAddress",
					"streetAddress":   "358 W 40th St, 2nd Floor",
					"addressLocality": "New York",
					"addressRegion":   "NY",
					"postalCode":      "10018",
					"addressCountry":  "US",
				},
				"geo": map[string]any{
					"@type":     "GeoCoordinates",
					"latitude":  40.7571,
					"longitude": -73.9916,
				},
				"amenityFeature": []map[string]any{
					{
						"@type": "LocationFeatureSpecification",
						"name":  "Standing Capacity",
						"value": venue.Capacity,
					},
				},
			},
			{
				"@type": "Organization",
				"@id":   base + "/#organization",
				"name":  name,
				"url":   base,
				"contactPoint": map[string]any{
					"@type":             "ContactPoint",
					"contactType":       "Sales",
					"areaServed":        "US",
					"availableLanguage": "English",
				},
			},
			{
				"@type":       "WebSite",
				"@id":         base + "/#website",
				"url":         base,
				"name":        name,
				"description": "Premium event space in Hell's Kitchen, NYC",
				"publisher":   map[string]any{"@id": base + "/#organization"},
			},
			{
				"@type": "FAQPage",
				"@id":   base + "/#faq",
				"mainEntity": []map[string]any{
					faqQuestion(
						fmt.Sprintf("What is the capacity of %s?", name),
						fmt.Sprintf("%s accommodates up to %d guests in a standing reception style, perfect for corporate events, celebrations, and private gatherings.", name, venue.Capacity),
					),
					faqQuestion(
						fmt.Sprintf("How much does it cost to rent %s?", name),
						fmt.Sprintf("Pricing starts at %s with flexible packages available for corporate events, celebrations, and creative gatherings.", venue.PriceRange),
					),
					faqQuestion(
						fmt.Sprintf("Where is %s located?", name),
						fmt.Sprintf("%s is located in %s, convenient to Times Square and Midtown West.", name, venue.Location),
					),
					faqQuestion(
						fmt.Sprintf("What types of events can I host at %s?", name),
						fmt.Sprintf("%s is ideal for corporate events, milestone birthdays, engagement parties, art exhibitions, creative workshops, and intimate private celebrations.", name),
					),
				},
			},
		},
	}
}

func faqQuestion(question, answer string) map[string]any {
	return map[string]any{
		"@type": "Question",
		"name":  question,
		"acceptedAnswer": map[string]any{
			"@type": "Answer",
			"text":  answer,
		},
	}
}
