package feed

import (
	"testing"

	"pulse/backend/internal/content"
	"pulse/backend/internal/social"
	"pulse/backend/pkg/errors"
)

type fixture struct {
	composer *Composer
	posts    *content.Service
	social   *social.Store
	sarah    *social.User // admin
	michael  *social.User
	lisa     *social.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	socialStore := social.NewStore()
	contentStore := content.NewStore()

	sarah, err := socialStore.CreateUser("sarah@example.com", "Sarah Johnson", "s")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := socialStore.SetRole(sarah.ID, social.RoleAdmin); err != nil {
		t.Fatalf("SetRole failed: %v", err)
	}
	michael, _ := socialStore.CreateUser("michael@example.com", "Michael Chen", "s")
	lisa, _ := socialStore.CreateUser("lisa@example.com", "Lisa Rodriguez", "s")

	return &fixture{
		composer: NewComposer(contentStore, socialStore),
		posts:    content.NewService(contentStore, socialStore),
		social:   socialStore,
		sarah:    sarah,
		michael:  michael,
		lisa:     lisa,
	}
}

func TestAllPosts_NewestFirst(t *testing.T) {
	f := newFixture(t)

	older, _ := f.posts.CreatePost(f.michael.ID, "older", nil, false)
	newer, _ := f.posts.CreatePost(f.lisa.ID, "newer", nil, false)

	posts := f.composer.AllPosts()
	if len(posts) != 2 {
		t.Fatalf("Expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != newer.ID || posts[1].ID != older.ID {
		t.Errorf("Expected newest-first order, got [%s, %s]", posts[0].Content, posts[1].Content)
	}
}

func TestFollowingFeed_IncludesOwnFollowedAndAdmin(t *testing.T) {
	f := newFixture(t)

	// Michael follows Sarah
	if err := f.social.Follow(f.michael.ID, f.sarah.ID); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}

	sarahPost, _ := f.posts.CreatePost(f.sarah.ID, "announcement from Sarah", nil, false)
	ownPost, _ := f.posts.CreatePost(f.michael.ID, "Michael's own post", nil, false)
	lisaPost, _ := f.posts.CreatePost(f.lisa.ID, "Lisa's post", nil, false)

	feed, err := f.composer.FollowingFeed(f.michael.ID)
	if err != nil {
		t.Fatalf("FollowingFeed failed: %v", err)
	}

	ids := make(map[string]bool)
	for _, p := range feed {
		ids[p.ID] = true
	}
	if !ids[sarahPost.ID] {
		t.Error("Expected followed author's post in feed")
	}
	if !ids[ownPost.ID] {
		t.Error("Expected viewer's own post in feed")
	}
	if ids[lisaPost.ID] {
		t.Error("Did not expect unfollowed non-admin post in feed")
	}

	// Newest first
	if len(feed) != 2 || feed[0].ID != ownPost.ID || feed[1].ID != sarahPost.ID {
		t.Errorf("Expected newest-first feed, got %d posts", len(feed))
	}
}

func TestFollowingFeed_AdminPostsAlwaysVisible(t *testing.T) {
	f := newFixture(t)

	// Lisa follows no one; Sarah's post is an admin post
	adminPost, _ := f.posts.CreatePost(f.sarah.ID, "Platform update", nil, false)

	feed, err := f.composer.FollowingFeed(f.lisa.ID)
	if err != nil {
		t.Fatalf("FollowingFeed failed: %v", err)
	}
	if len(feed) != 1 || feed[0].ID != adminPost.ID {
		t.Errorf("Expected admin post regardless of follow state, got %d posts", len(feed))
	}
}

func TestFollowingFeed_UnknownViewer(t *testing.T) {
	f := newFixture(t)
	if _, err := f.composer.FollowingFeed("missing"); !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("Expected NotFound, got %v", err)
	}
}

func TestAnnouncementsAndJobBoard(t *testing.T) {
	f := newFixture(t)

	jobPost, _ := f.posts.CreatePost(f.sarah.ID, "Career fair!", nil, true)
	plainAdmin, _ := f.posts.CreatePost(f.sarah.ID, "Policy update", nil, false)
	userPost, _ := f.posts.CreatePost(f.michael.ID, "Regular post", nil, true)

	announcements := f.composer.Announcements()
	if len(announcements) != 2 {
		t.Fatalf("Expected 2 announcements, got %d", len(announcements))
	}
	for _, p := range announcements {
		if p.ID == userPost.ID {
			t.Error("Non-admin post must not appear in announcements")
		}
	}

	jobs := f.composer.JobBoard()
	if len(jobs) != 1 || jobs[0].ID != jobPost.ID {
		t.Errorf("Expected only the admin job posting on the job board, got %d", len(jobs))
	}
	for _, p := range jobs {
		if p.ID == plainAdmin.ID {
			t.Error("Non-job admin post must not appear on the job board")
		}
	}

	// The admin job posting shows up in both projections
	if !announcements[0].IsAdminPost || !jobs[0].IsJobPosting {
		t.Error("Admin job posting must carry both flags")
	}
}

func TestPostsByUser(t *testing.T) {
	f := newFixture(t)

	mine, _ := f.posts.CreatePost(f.michael.ID, "mine", nil, false)
	f.posts.CreatePost(f.lisa.ID, "hers", nil, false)

	posts := f.composer.PostsByUser(f.michael.ID)
	if len(posts) != 1 || posts[0].ID != mine.ID {
		t.Errorf("Expected only Michael's post, got %d posts", len(posts))
	}
}

func TestCommentsForPost_CreationOrder(t *testing.T) {
	f := newFixture(t)
	post, _ := f.posts.CreatePost(f.michael.ID, "discuss", nil, false)

	first, _ := f.posts.AddComment(f.lisa.ID, post.ID, "first")
	second, _ := f.posts.AddComment(f.sarah.ID, post.ID, "second")

	// Likes never influence comment ordering
	if err := f.posts.LikeComment(f.michael.ID, second.ID); err != nil {
		t.Fatalf("LikeComment failed: %v", err)
	}

	comments, err := f.composer.CommentsForPost(post.ID)
	if err != nil {
		t.Fatalf("CommentsForPost failed: %v", err)
	}
	if len(comments) != 2 || comments[0].ID != first.ID || comments[1].ID != second.ID {
		t.Errorf("Expected creation-order comments, got %d", len(comments))
	}

	if _, err := f.composer.CommentsForPost("missing"); !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("Expected NotFound for unknown post, got %v", err)
	}
}
