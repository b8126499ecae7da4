package content

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"pulse/backend/pkg/errors"
)

// Store is the in-memory content store for posts and comments. Every
// compound mutation (comment insert plus counter bump, cascade delete) runs
// inside one critical section so no intermediate state is observable.
type Store struct {
	mu           sync.RWMutex
	posts        []*Post // canonical feed order, newest first
	postsByID    map[string]*Post
	comments     []*Comment // creation order
	commentsByID map[string]*Comment
}

// NewStore creates an empty content store
func NewStore() *Store {
	return &Store{
		posts:        []*Post{},
		postsByID:    make(map[string]*Post),
		comments:     []*Comment{},
		commentsByID: make(map[string]*Comment),
	}
}

// ============================================================================
// Post Operations
// ============================================================================

// InsertPost creates a post and prepends it to the canonical ordering
func (s *Store) InsertPost(authorID, content string, images []string, isAdminPost, isJobPosting bool) *Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	post := &Post{
		ID:           uuid.New().String(),
		AuthorID:     authorID,
		Content:      content,
		Images:       images,
		Likes:        []string{},
		IsAdminPost:  isAdminPost,
		IsJobPosting: isJobPosting,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.posts = append([]*Post{post}, s.posts...)
	s.postsByID[post.ID] = post

	return clonePost(post)
}

// RemovePost deletes the post and every comment referencing it as one unit
func (s *Store) RemovePost(postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.postsByID[postID]; !ok {
		return errors.NotFound("post", postID)
	}

	delete(s.postsByID, postID)
	for i, post := range s.posts {
		if post.ID == postID {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			break
		}
	}

	kept := s.comments[:0]
	for _, comment := range s.comments {
		if comment.PostID == postID {
			delete(s.commentsByID, comment.ID)
			continue
		}
		kept = append(kept, comment)
	}
	s.comments = kept

	return nil
}

// PostByID returns a copy of the post
func (s *Store) PostByID(postID string) (*Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.postsByID[postID]
	if !ok {
		return nil, errors.NotFound("post", postID)
	}
	return clonePost(post), nil
}

// Posts returns copies of all posts in canonical order, newest first
func (s *Store) Posts() []*Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*Post, len(s.posts))
	for i, post := range s.posts {
		posts[i] = clonePost(post)
	}
	return posts
}

// LikePost records a like; liking an already-liked post is a no-op
func (s *Store) LikePost(userID, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.postsByID[postID]
	if !ok {
		return errors.NotFound("post", postID)
	}
	if post.LikedBy(userID) {
		return nil
	}
	post.Likes = append(post.Likes, userID)
	return nil
}

// UnlikePost removes a like; unliking a post that was never liked is a no-op
func (s *Store) UnlikePost(userID, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.postsByID[postID]
	if !ok {
		return errors.NotFound("post", postID)
	}
	post.Likes = removeID(post.Likes, userID)
	return nil
}

// ============================================================================
// Comment Operations
// ============================================================================

// InsertComment creates a comment and increments the parent post's counter
// in the same mutation
func (s *Store) InsertComment(authorID, postID, content string) (*Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.postsByID[postID]
	if !ok {
		return nil, errors.NotFound("post", postID)
	}

	now := time.Now().UTC()
	comment := &Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.comments = append(s.comments, comment)
	s.commentsByID[comment.ID] = comment
	post.CommentsCount++

	return cloneComment(comment), nil
}

// RemoveComment deletes the comment and decrements the parent post's counter
// in the same mutation
func (s *Store) RemoveComment(commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.commentsByID[commentID]
	if !ok {
		return errors.NotFound("comment", commentID)
	}

	delete(s.commentsByID, commentID)
	for i, c := range s.comments {
		if c.ID == commentID {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			break
		}
	}

	// The parent is guaranteed to exist; comments never outlive their post
	if post, ok := s.postsByID[comment.PostID]; ok {
		post.CommentsCount--
	}

	return nil
}

// CommentByID returns a copy of the comment
func (s *Store) CommentByID(commentID string) (*Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.commentsByID[commentID]
	if !ok {
		return nil, errors.NotFound("comment", commentID)
	}
	return cloneComment(comment), nil
}

// CommentsFor returns copies of the post's comments in creation order
func (s *Store) CommentsFor(postID string) []*Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := []*Comment{}
	for _, comment := range s.comments {
		if comment.PostID == postID {
			comments = append(comments, cloneComment(comment))
		}
	}
	return comments
}

// LikeComment records a like; idempotent like LikePost
func (s *Store) LikeComment(userID, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.commentsByID[commentID]
	if !ok {
		return errors.NotFound("comment", commentID)
	}
	if comment.LikedBy(userID) {
		return nil
	}
	comment.Likes = append(comment.Likes, userID)
	return nil
}

// UnlikeComment removes a like; a no-op when the user never liked the comment
func (s *Store) UnlikeComment(userID, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.commentsByID[commentID]
	if !ok {
		return errors.NotFound("comment", commentID)
	}
	comment.Likes = removeID(comment.Likes, userID)
	return nil
}

func clonePost(p *Post) *Post {
	clone := *p
	clone.Likes = append([]string{}, p.Likes...)
	if p.Images != nil {
		clone.Images = append([]string{}, p.Images...)
	}
	return &clone
}

func cloneComment(c *Comment) *Comment {
	clone := *c
	clone.Likes = append([]string{}, c.Likes...)
	return &clone
}

func removeID(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
