package models

// EventTypeInfo is one entry of the public event-type catalogue shown on the
// site and offered by the contact form's select widget.
type EventTypeInfo struct {
	ID          string `json:"id"`
	Value       string `json:"value"`
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VenueDetails carries the fixed facts about the space.
type VenueDetails struct {
	Capacity   int    `json:"capacity"`
	Location   string `json:"location"`
	PriceRange string `json:"priceRange"`
	BYOB       bool   `json:"byob"`
}

// EventTypeCatalogue returns the fixed set of hostable event categories.
func EventTypeCatalogue() []EventTypeInfo {
	return []EventTypeInfo{
		{
			ID:          "celebrations",
			Value:       EventTypeBirthday,
			Label:       "Birthday/Celebration",
			Title:       "Celebrations",
			Description: "Milestone birthdays. Engagement parties. The moments worth remembering.",
		},
		{
			ID:          "corporate",
			Value:       EventTypeCorporate,
			Label:       "Corporate Event",
			Title:       "Corporate",
			Description: "Team gatherings that don't feel corporate. Mixers with actual mixing.",
		},
		{
			ID:          "creative",
			Value:       EventTypeCreative,
			Label:       "Creative/Art Event",
			Title:       "Creative",
			Description: "Art openings. Workshops. Film screenings. If you can dream it, we can host it.",
		},
		{
			ID:          "private",
			Value:       EventTypePrivate,
			Label:       "Private Gathering",
			Title:       "Private",
			Description: "Intimate dinners. Anniversary celebrations. Moments meant just for you.",
		},
	}
}

// Venue returns the venue fact sheet.
func Venue() VenueDetails {
	return VenueDetails{
		Capacity:   70,
		Location:   "Hell's Kitchen, NYC",
		PriceRange: "from $200",
		BYOB:       true,
	}
}
