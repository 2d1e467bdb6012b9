package models

import (
	"encoding/json"
	"strings"
)

// Event type values accepted by the contact form. The public catalogue in
// venue.go lists the first four; "other" exists only as a form option.
const (
	EventTypeBirthday  = "birthday"
	EventTypeCorporate = "corporate"
	EventTypeCreative  = "creative"
	EventTypePrivate   = "private"
	EventTypeOther     = "other"
)

// GuestCount accepts both numeric and quoted-numeric JSON values, since the
// form widget may serialize the guests input either way.
type GuestCount string

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*g = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*g = GuestCount(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*g = GuestCount(n.String())
	return nil
}

func (g GuestCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(g))
}

func (g GuestCount) String() string { return string(g) }

// Inquiry is one contact-form submission describing a prospective event
// booking. It has no identity and no lifecycle beyond the request that
// carries it.
type Inquiry struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	EventType string     `json:"eventType"`
	Date      string     `json:"date,omitempty"`
	Guests    GuestCount `json:"guests,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// MissingFields reports which required fields are absent or blank.
func (i *Inquiry) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(i.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(i.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(i.EventType) == "" {
		missing = append(missing, "eventType")
	}
	return missing
}
