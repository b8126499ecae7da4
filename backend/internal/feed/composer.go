package feed

import (
	"pulse/backend/internal/content"
	"pulse/backend/internal/social"
)

// Composer derives viewer-specific post collections from the current store
// state. Every method is a pure read recomputed per call; nothing here is
// cached or persisted.
type Composer struct {
	content *content.Store
	social  *social.Store
}

// NewComposer creates a feed composer over the given stores
func NewComposer(contentStore *content.Store, socialStore *social.Store) *Composer {
	return &Composer{
		content: contentStore,
		social:  socialStore,
	}
}

// AllPosts returns every post, newest first
func (c *Composer) AllPosts() []*content.Post {
	return c.content.Posts()
}

// FollowingFeed returns the viewer's own posts, posts from authors the
// viewer follows, and admin announcements, newest first. Announcements are
// always included regardless of follow state.
func (c *Composer) FollowingFeed(viewerID string) ([]*content.Post, error) {
	if _, err := c.social.UserByID(viewerID); err != nil {
		return nil, err
	}

	posts := []*content.Post{}
	for _, post := range c.content.Posts() {
		if post.AuthorID == viewerID ||
			c.social.IsFollowing(viewerID, post.AuthorID) ||
			post.IsAdminPost {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// Announcements returns all admin posts, newest first
func (c *Composer) Announcements() []*content.Post {
	posts := []*content.Post{}
	for _, post := range c.content.Posts() {
		if post.IsAdminPost {
			posts = append(posts, post)
		}
	}
	return posts
}

// JobBoard returns all job postings, newest first
func (c *Composer) JobBoard() []*content.Post {
	posts := []*content.Post{}
	for _, post := range c.content.Posts() {
		if post.IsJobPosting {
			posts = append(posts, post)
		}
	}
	return posts
}

// PostsByUser returns the user's posts, newest first
func (c *Composer) PostsByUser(userID string) []*content.Post {
	posts := []*content.Post{}
	for _, post := range c.content.Posts() {
		if post.AuthorID == userID {
			posts = append(posts, post)
		}
	}
	return posts
}

// CommentsForPost returns the post's comments in creation order, oldest
// first; like counts never influence the ordering
func (c *Composer) CommentsForPost(postID string) ([]*content.Comment, error) {
	if _, err := c.content.PostByID(postID); err != nil {
		return nil, err
	}
	return c.content.CommentsFor(postID), nil
}
