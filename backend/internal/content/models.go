package content

import "time"

// Post is a feed entry. Likes holds the IDs of users who liked the post;
// membership is the only like state, so a user can never like twice.
type Post struct {
	ID            string    `json:"id"`
	AuthorID      string    `json:"userId"`
	Content       string    `json:"content"`
	Images        []string  `json:"images,omitempty"`
	Likes         []string  `json:"likes"`
	CommentsCount int       `json:"commentsCount"`
	IsAdminPost   bool      `json:"isAdminPost"`
	IsJobPosting  bool      `json:"isJobPosting"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LikedBy reports whether the given user has liked the post
func (p *Post) LikedBy(userID string) bool {
	return containsID(p.Likes, userID)
}

// Comment belongs to exactly one post. The parent post's CommentsCount is
// adjusted in the same store mutation that inserts or removes a comment.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	AuthorID  string    `json:"userId"`
	Content   string    `json:"content"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LikedBy reports whether the given user has liked the comment
func (c *Comment) LikedBy(userID string) bool {
	return containsID(c.Likes, userID)
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
