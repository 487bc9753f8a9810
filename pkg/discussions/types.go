package discussions

// Post is one discussion-board entry. CreatedAt is a unix-millisecond
// timestamp; Likes and Comments are display counts carried from creation.
type Post struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"createdAt"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
}
