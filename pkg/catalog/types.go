package catalog

// Monument is one heritage site in the catalog. Year and Visitors are
// free-text labels, not numbers ("200 BCE", "7-8 million/year").
type Monument struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	State       string  `json:"state"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Era         string  `json:"era"`
	Year        string  `json:"year"`
	Rating      float64 `json:"rating"`
	Visitors    string  `json:"visitors"`
}

// Tour is an embedded virtual-tour video. Seed-only and immutable.
type Tour struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration"`
}
