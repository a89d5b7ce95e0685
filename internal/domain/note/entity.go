package note

// Note is a free-form text note attached to a calendar date.
type Note struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// Stats summarizes the stored notes for the dashboard badge.
type Stats struct {
	Total     int `json:"total"`
	ThisMonth int `json:"this_month"`
}
