package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pulse/backend/internal/assistant"
	"pulse/backend/internal/content"
	"pulse/backend/internal/feed"
	"pulse/backend/internal/messaging"
	"pulse/backend/internal/session"
	"pulse/backend/internal/social"
	"pulse/backend/pkg/config"
)

type stubCompleter struct{}

func (stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	return "canned reply", nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:      "8080",
		Env:       "test",
		JWTSecret: "test-secret",
		DataDir:   t.TempDir(),
	}

	socialStore := social.NewStore()
	contentStore := content.NewStore()
	socialSvc := social.NewService(socialStore)

	return New(Deps{
		Config:    cfg,
		Social:    socialSvc,
		Content:   content.NewService(contentStore, socialStore),
		Feed:      feed.NewComposer(contentStore, socialStore),
		Messaging: messaging.NewService(socialStore),
		Assistant: assistant.NewService(stubCompleter{}),
		Session:   session.NewStore(cfg.DataDir),
	})
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, s *Server, email, name string) (token, userID string) {
	t.Helper()
	w := doJSON(t, s, "POST", "/api/auth/register", "", gin.H{
		"email": email, "name": name, "password": "secret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User.ID
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	registerUser(t, s, "a@example.com", "A")

	w := doJSON(t, s, "POST", "/api/auth/register", "", gin.H{
		"email": "a@example.com", "name": "Other", "password": "secret",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	registerUser(t, s, "a@example.com", "A")

	w := doJSON(t, s, "POST", "/api/auth/login", "", gin.H{
		"email": "a@example.com", "password": "secret",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, "POST", "/api/auth/login", "", gin.H{
		"email": "a@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePost_RequiresAuth(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, "POST", "/api/posts", "", gin.H{"content": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, s, "POST", "/api/posts", "not-a-token", gin.H{"content": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePost_JobFlagDowngradedForNonAdmin(t *testing.T) {
	s := newTestServer(t)
	token, _ := registerUser(t, s, "a@example.com", "A")

	w := doJSON(t, s, "POST", "/api/posts", token, gin.H{
		"content": "Hiring!", "isJobPosting": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var post struct {
		IsAdminPost  bool `json:"isAdminPost"`
		IsJobPosting bool `json:"isJobPosting"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.False(t, post.IsAdminPost)
	assert.False(t, post.IsJobPosting)

	// And it stays off the job board
	w = doJSON(t, s, "GET", "/api/posts/jobs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var board struct {
		Posts []json.RawMessage `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Empty(t, board.Posts)
}

func TestFollowingFeed_Scenario(t *testing.T) {
	s := newTestServer(t)
	sarahToken, sarahID := registerUser(t, s, "sarah@example.com", "Sarah Johnson")
	michaelToken, _ := registerUser(t, s, "michael@example.com", "Michael Chen")

	w := doJSON(t, s, "POST", "/api/posts", sarahToken, gin.H{"content": "Sarah's post"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Michael follows Sarah, posts, then reads his feed
	w = doJSON(t, s, "POST", "/api/users/"+sarahID+"/follow", michaelToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, "POST", "/api/posts", michaelToken, gin.H{"content": "Michael's post"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, "GET", "/api/feed", michaelToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feedResp struct {
		Posts []struct {
			Content string `json:"content"`
		} `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feedResp))
	require.Len(t, feedResp.Posts, 2)
	assert.Equal(t, "Michael's post", feedResp.Posts[0].Content)
	assert.Equal(t, "Sarah's post", feedResp.Posts[1].Content)
}

func TestSearchUsers(t *testing.T) {
	s := newTestServer(t)
	registerUser(t, s, "lisa@example.com", "Lisa Rodriguez")

	w := doJSON(t, s, "GET", "/api/users/search?q=rodriguez", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Users []json.RawMessage `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 1)

	// Empty query returns no users
	w = doJSON(t, s, "GET", "/api/users/search", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Users)
}

func TestMessaging_Flow(t *testing.T) {
	s := newTestServer(t)
	aToken, aID := registerUser(t, s, "a@example.com", "A")
	bToken, bID := registerUser(t, s, "b@example.com", "B")

	w := doJSON(t, s, "POST", "/api/messages/"+bID, aToken, gin.H{"content": "hi"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, "GET", "/api/messages/"+aID+"/unread", bToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var unread struct {
		Unread int `json:"unread"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unread))
	assert.Equal(t, 1, unread.Unread)

	w = doJSON(t, s, "POST", "/api/messages/"+aID+"/read", bToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, "GET", "/api/messages/"+aID+"/unread", bToken, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unread))
	assert.Equal(t, 0, unread.Unread)

	w = doJSON(t, s, "GET", "/api/messages/"+bID, aToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var conv struct {
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conv))
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, "hi", conv.Messages[0].Content)

	// Self-messaging is rejected
	w = doJSON(t, s, "POST", "/api/messages/"+aID, aToken, gin.H{"content": "hi me"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAssistantChat(t *testing.T) {
	s := newTestServer(t)
	token, _ := registerUser(t, s, "a@example.com", "A")

	w := doJSON(t, s, "POST", "/api/assistant/chat", token, gin.H{"message": "hello"})
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = doJSON(t, s, "GET", "/api/assistant/history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.NotEmpty(t, history.Messages)
	assert.Equal(t, "user", history.Messages[0].Role)
	assert.Equal(t, "hello", history.Messages[0].Content)

	w = doJSON(t, s, "DELETE", "/api/assistant/history", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletePost_Authorization(t *testing.T) {
	s := newTestServer(t)
	authorToken, _ := registerUser(t, s, "author@example.com", "Author")
	otherToken, _ := registerUser(t, s, "other@example.com", "Other")

	w := doJSON(t, s, "POST", "/api/posts", authorToken, gin.H{"content": "mine"})
	require.Equal(t, http.StatusCreated, w.Code)
	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))

	w = doJSON(t, s, "DELETE", "/api/posts/"+post.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, s, "DELETE", "/api/posts/"+post.ID, authorToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, "DELETE", "/api/posts/"+post.ID, authorToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
