package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const measurementEndpoint = "https://www.google-analytics.com/mp/collect"

// NewGAConversion returns an AnalyticsFunc that posts the conversion event
// to the Google Analytics Measurement Protocol, the backend equivalent of
// the site's gtag conversion ping. Failures are logged and swallowed; the
// ping never affects the submission outcome.
func NewGAConversion(measurementID, apiSecret string, log zerolog.Logger) AnalyticsFunc {
	endpoint := fmt.Sprintf("%s?measurement_id=%s&api_secret=%s",
		measurementEndpoint, url.QueryEscape(measurementID), url.QueryEscape(apiSecret))
	hc := &http.Client{Timeout: 5 * time.Second}
	log = log.With().Str("component", "analytics").Logger()

	return func(event string) {
		body, err := json.Marshal(map[string]any{
			"client_id": uuid.New().String(),
			"events":    []map[string]any{{"name": event}},
		})
		if err != nil {
			log.Warn().Err(err).Msg("marshal analytics event")
			return
		}
		resp, err := hc.Post(endpoint, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Warn().Err(err).Str("event", event).Msg("analytics ping failed")
			return
		}
		resp.Body.Close()
	}
}
