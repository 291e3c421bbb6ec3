package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, r http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/api/", 2*time.Second)
}

func TestHTTPClient_Login(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Username != "admin" || creds.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"token": "T", "userId": 1, "username": "admin", "isAdmin": true})
	})
	c := newTestClient(t, r)

	resp, err := c.Login(context.Background(), models.Credentials{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, &models.AuthResponse{Token: "T", UserID: 1, Username: "admin", IsAdmin: true}, resp)

	_, err = c.Login(context.Background(), models.Credentials{Username: "admin", Password: "nope"})
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "Invalid credentials", MessageOf(err, "Login failed. Please check your credentials."))
}

func TestHTTPClient_RegisterNeverAdmin(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"token": "T", "userId": 5, "username": "bob", "isAdmin": true})
	})
	c := newTestClient(t, r)

	resp, err := c.Register(context.Background(), models.Credentials{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.False(t, resp.IsAdmin)
	assert.Equal(t, int64(5), resp.UserID)
}

func TestHTTPClient_MeSendsBearer(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid or expired token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"userId": 3, "username": "carol", "isAdmin": false})
	})
	c := newTestClient(t, r)

	me, err := c.Me(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "carol", me.Username)

	_, err = c.Me(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_ErrorMapping(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/posts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Delete("/api/comments/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	r.Get("/api/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "Post not found")
	})
	c := newTestClient(t, r)
	ctx := context.Background()

	_, err := c.ListPosts(ctx, "t")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "fallback", MessageOf(err, "fallback"))

	err = c.DeleteComment(ctx, "t", 9)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.False(t, errors.Is(err, ErrUnauthorized))

	_, err = c.GetPost(ctx, "t", 4)
	assert.Equal(t, "Post not found", MessageOf(err, "fallback"))
}

func TestHTTPClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewHTTPClient(srv.URL, time.Second)

	_, err := c.ListSubscriptionPlans(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "fallback", MessageOf(err, "fallback"))
}

func TestHTTPClient_TimeoutIsUnavailable(t *testing.T) {
	release := make(chan struct{})
	r := chi.NewRouter()
	r.Get("/api/posts", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := NewHTTPClient(srv.URL+"/api", 50*time.Millisecond)
	_, err := c.ListPosts(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_CallerCancelIsNotUnavailable(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1/api", time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListPosts(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_CreatePostMultipart(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/posts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Go tips", r.FormValue("title"))
		assert.Equal(t, "Use gofmt", r.FormValue("content"))
		assert.Equal(t, "go", r.FormValue("tags"))
		_, hasCategory := r.MultipartForm.Value["category"]
		assert.False(t, hasCategory)

		files := r.MultipartForm.File["files"]
		require.Len(t, files, 2)
		assert.Equal(t, "a.png", files[0].Filename)
		f, err := files[1].Open()
		require.NoError(t, err)
		b, _ := io.ReadAll(f)
		assert.Equal(t, "BBB", string(b))

		writeJSON(w, http.StatusOK, models.Post{ID: 11, Title: "Go tips", Images: "/uploads/a.png,/uploads/b.png"})
	})
	c := newTestClient(t, r)

	post, err := c.CreatePost(context.Background(), "tok", models.PostForm{
		Title:   "Go tips",
		Content: "Use gofmt",
		Tags:    "go",
		Files: []models.Attachment{
			{FileName: "a.png", Content: strings.NewReader("AAA")},
			{FileName: "b.png", Content: strings.NewReader("BBB")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), post.ID)
	assert.Len(t, post.ImageURLs(), 2)
}

func TestHTTPClient_LearningPlans(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/learning-plans", func(w http.ResponseWriter, r *http.Request) {
		var in models.LearningPlanInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusOK, map[string]any{"learningPlan": models.LearningPlan{ID: 7, Title: in.Title, Status: "NOT_STARTED"}})
	})
	r.Get("/api/learning-plans/all", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.LearningPlan{{ID: 1, Status: r.URL.Query().Get("status")}})
	})
	r.Put("/api/learning-plans/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusOK, models.LearningPlan{ID: 7, Status: in["status"]})
	})
	c := newTestClient(t, r)
	ctx := context.Background()

	plan, err := c.CreateLearningPlan(ctx, "t", models.LearningPlanInput{Title: "Learn Go"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), plan.ID)
	assert.Equal(t, "Learn Go", plan.Title)

	all, err := c.ListAllLearningPlans(ctx, "t", models.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "COMPLETED", all[0].Status)

	all, err = c.ListAllLearningPlans(ctx, "t", "")
	require.NoError(t, err)
	assert.Empty(t, all[0].Status)

	plan, err = c.UpdateLearningPlanStatus(ctx, "t", 7, models.StatusInput{Status: models.StatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", plan.Status)
}

func TestHTTPClient_Upload(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/uploads", func(w http.ResponseWriter, r *http.Request) {
		f, h, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "cover.jpg", h.Filename)
		writeJSON(w, http.StatusOK, map[string]string{"url": "/uploads/123_cover.jpg"})
	})
	c := newTestClient(t, r)

	res, err := c.Upload(context.Background(), "t", "cover.jpg", strings.NewReader("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/123_cover.jpg", res.URL)
}

func TestHTTPClient_NotesCarryOwner(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/notes/user/{userId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4", chi.URLParam(r, "userId"))
		writeJSON(w, http.StatusOK, []models.Note{{ID: 1, Title: "n"}})
	})
	r.Post("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4", r.URL.Query().Get("userId"))
		var in models.NoteInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusOK, models.Note{ID: 2, Title: in.Title, Content: in.Content})
	})
	r.Delete("/api/notes/{noteId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", chi.URLParam(r, "noteId"))
		assert.Equal(t, "4", r.URL.Query().Get("userId"))
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, r)
	ctx := context.Background()

	notes, err := c.ListNotes(ctx, "t", 4)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	note, err := c.CreateNote(ctx, "t", 4, models.NoteInput{Title: "a", Content: "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", note.Title)

	require.NoError(t, c.DeleteNote(ctx, "t", 4, 2))
}

func TestHTTPClient_FollowReturnsProfile(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/users/{id}/follow", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.Profile{ID: 9, Username: "dan", Followers: []models.User{{ID: 1}}})
	})
	r.Post("/api/users/{id}/unfollow", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.Profile{ID: 9, Username: "dan"})
	})
	c := newTestClient(t, r)
	ctx := context.Background()

	p, err := c.Follow(ctx, "t", 9)
	require.NoError(t, err)
	assert.True(t, p.FollowedBy(1))

	p, err = c.Unfollow(ctx, "t", 9)
	require.NoError(t, err)
	assert.False(t, p.FollowedBy(1))
}

func TestHTTPClient_AdminPlans(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/api/admin/subscription-plans", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []models.SubscriptionPlan{{ID: 1, Name: "Basic"}})
		})
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var in models.PlanInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			writeJSON(w, http.StatusOK, models.SubscriptionPlan{ID: 2, Name: in.Name, Price: in.Price})
		})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Failed to delete subscription plan: in use"})
		})
	})
	c := newTestClient(t, r)
	ctx := context.Background()

	plans, err := c.AdminListPlans(ctx, "t")
	require.NoError(t, err)
	assert.Len(t, plans, 1)

	plan, err := c.AdminCreatePlan(ctx, "t", models.PlanInput{Name: "Pro", Description: "d", Price: 9.5})
	require.NoError(t, err)
	assert.Equal(t, 9.5, plan.Price)

	err = c.AdminDeletePlan(ctx, "t", 2)
	assert.Equal(t, "Failed to delete subscription plan: in use", MessageOf(err, "x"))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "", MessageOf(nil, "fb"))
	assert.Equal(t, "fb", MessageOf(errors.New("boom"), "fb"))
	assert.Equal(t, "fb", MessageOf(&APIError{StatusCode: 400, Message: "  "}, "fb"))
	assert.Equal(t, "username: this field is required",
		MessageOf(&common.ValidationError{Fields: map[string]string{"username": "this field is required"}}, "fb"))
}
