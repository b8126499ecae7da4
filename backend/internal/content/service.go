package content

import (
	"strings"

	"go.uber.org/zap"
	"pulse/backend/internal/social"
	"pulse/backend/pkg/errors"
	"pulse/backend/pkg/logger"
)

// Service implements the engagement operations over the content store.
// The identity store is consulted for author existence and roles only; no
// content mutation ever touches identity state.
type Service struct {
	store  *Store
	users  *social.Store
	logger *zap.Logger
}

// NewService creates a content service backed by the given stores
func NewService(store *Store, users *social.Store) *Service {
	return &Service{
		store:  store,
		users:  users,
		logger: logger.Get(),
	}
}

// Store exposes the underlying content store for read projections
func (s *Service) Store() *Store {
	return s.store
}

// CreatePost publishes a post. IsAdminPost reflects the author's role at
// creation time; a job-posting request from a non-admin is silently
// downgraded, never rejected.
func (s *Service) CreatePost(authorID, content string, images []string, isJobRequested bool) (*Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.EmptyContent("post content")
	}

	author, err := s.users.UserByID(authorID)
	if err != nil {
		return nil, err
	}

	isAdminPost := author.IsAdmin()
	isJobPosting := isJobRequested && isAdminPost

	post := s.store.InsertPost(authorID, content, images, isAdminPost, isJobPosting)
	s.logger.Info("Post created",
		zap.String("post_id", post.ID),
		zap.String("author_id", authorID),
		zap.Bool("admin_post", isAdminPost),
		zap.Bool("job_posting", isJobPosting),
	)
	return post, nil
}

// DeletePost removes a post and all of its comments. Only the author or an
// admin may delete.
func (s *Service) DeletePost(actorID, postID string) error {
	post, err := s.store.PostByID(postID)
	if err != nil {
		return err
	}
	if err := s.authorize(actorID, post.AuthorID, "delete post"); err != nil {
		return err
	}

	if err := s.store.RemovePost(postID); err != nil {
		return err
	}
	s.logger.Info("Post deleted", zap.String("post_id", postID), zap.String("actor_id", actorID))
	return nil
}

// LikePost records the user's like on the post; idempotent
func (s *Service) LikePost(userID, postID string) error {
	if _, err := s.users.UserByID(userID); err != nil {
		return err
	}
	return s.store.LikePost(userID, postID)
}

// UnlikePost removes the user's like on the post; idempotent
func (s *Service) UnlikePost(userID, postID string) error {
	if _, err := s.users.UserByID(userID); err != nil {
		return err
	}
	return s.store.UnlikePost(userID, postID)
}

// AddComment attaches a comment to the post and bumps its comment counter
func (s *Service) AddComment(authorID, postID, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.EmptyContent("comment content")
	}
	if _, err := s.users.UserByID(authorID); err != nil {
		return nil, err
	}

	comment, err := s.store.InsertComment(authorID, postID, content)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Comment added",
		zap.String("comment_id", comment.ID),
		zap.String("post_id", postID),
	)
	return comment, nil
}

// DeleteComment removes a comment under the same author-or-admin rule as
// post deletion
func (s *Service) DeleteComment(actorID, commentID string) error {
	comment, err := s.store.CommentByID(commentID)
	if err != nil {
		return err
	}
	if err := s.authorize(actorID, comment.AuthorID, "delete comment"); err != nil {
		return err
	}
	return s.store.RemoveComment(commentID)
}

// LikeComment records the user's like on the comment; idempotent
func (s *Service) LikeComment(userID, commentID string) error {
	if _, err := s.users.UserByID(userID); err != nil {
		return err
	}
	return s.store.LikeComment(userID, commentID)
}

// UnlikeComment removes the user's like on the comment; idempotent
func (s *Service) UnlikeComment(userID, commentID string) error {
	if _, err := s.users.UserByID(userID); err != nil {
		return err
	}
	return s.store.UnlikeComment(userID, commentID)
}

// authorize allows the content author or any admin
func (s *Service) authorize(actorID, authorID, action string) error {
	actor, err := s.users.UserByID(actorID)
	if err != nil {
		return err
	}
	if actor.ID != authorID && !actor.IsAdmin() {
		return errors.NotAuthorized(actorID, action)
	}
	return nil
}
