package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/skillsphere/internal/client/client"
	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/client/services"
)

// fakeClient answers the backend calls the CLI tests exercise. Anything
// else panics on the nil embedded interface.
type fakeClient struct {
	client.Client

	mu    sync.Mutex
	calls []string

	authResp *models.AuthResponse
	authErr  error
	me       *models.CurrentUser
	meErr    error
	creds    models.Credentials

	posts    []models.Post
	postsErr error
	delErr   error
	form     models.PostForm
	profile  *models.Profile
	notes    []models.Note
	notesErr error
	plans    []models.LearningPlan
	subPlans []models.SubscriptionPlan
	fileName string
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	f.record("Login")
	f.creds = creds
	return f.authResp, f.authErr
}

func (f *fakeClient) Register(_ context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	f.record("Register")
	f.creds = creds
	return f.authResp, f.authErr
}

func (f *fakeClient) Me(_ context.Context, _ string) (*models.CurrentUser, error) {
	f.record("Me")
	return f.me, f.meErr
}

func (f *fakeClient) DeletePost(_ context.Context, _ string, _ int64) error {
	f.record("DeletePost")
	return f.delErr
}

func (f *fakeClient) ListPosts(_ context.Context, _ string) ([]models.Post, error) {
	f.record("ListPosts")
	return f.posts, f.postsErr
}

func (f *fakeClient) CreatePost(_ context.Context, _ string, form models.PostForm) (*models.Post, error) {
	f.record("CreatePost")
	f.form = form
	return &models.Post{ID: 5, Title: form.Title}, nil
}

func (f *fakeClient) Profile(_ context.Context, _ string, userID int64) (*models.Profile, error) {
	f.record("Profile")
	if f.profile != nil {
		return f.profile, nil
	}
	return &models.Profile{ID: userID, Username: "user"}, nil
}

func (f *fakeClient) ListNotes(_ context.Context, _ string, _ int64) ([]models.Note, error) {
	f.record("ListNotes")
	return f.notes, f.notesErr
}

func (f *fakeClient) ListLearningPlans(_ context.Context, _ string) ([]models.LearningPlan, error) {
	f.record("ListLearningPlans")
	return f.plans, nil
}

func (f *fakeClient) Upload(_ context.Context, _ string, fileName string, content io.Reader) (*models.UploadResult, error) {
	f.record("Upload")
	f.fileName = fileName
	return &models.UploadResult{URL: "/uploads/" + fileName}, nil
}

func (f *fakeClient) ListSubscriptionPlans(_ context.Context) ([]models.SubscriptionPlan, error) {
	f.record("ListSubscriptionPlans")
	return f.subPlans, nil
}

func (f *fakeClient) AdminListPlans(_ context.Context, _ string) ([]models.SubscriptionPlan, error) {
	f.record("AdminListPlans")
	return f.subPlans, nil
}

// fakePrefs is an in-memory Preferences.
type fakePrefs struct {
	mu    sync.Mutex
	token string
	theme string
}

func (p *fakePrefs) LoadToken(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token, nil
}

func (p *fakePrefs) SaveToken(_ context.Context, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
	return nil
}

func (p *fakePrefs) ClearToken(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = ""
	return nil
}

func (p *fakePrefs) LoadTheme(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme, nil
}

func (p *fakePrefs) SaveTheme(_ context.Context, theme string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = theme
	return nil
}

func (p *fakePrefs) Reset(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token, p.theme = "", ""
	return nil
}

// stubPassword makes GetPassword return pw for the duration of the test.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := getPassword
	t.Cleanup(func() { getPassword = old })
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
}

// runScript runs the app on the given input and returns what it printed.
func runScript(t *testing.T, fc *fakeClient, prefs *fakePrefs, input string, tweak ...func(*App)) string {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(Deps{
		Client:          fc,
		Auth:            services.NewAuthService(fc),
		Prefs:           prefs,
		NotificationTTL: time.Hour,
		In:              strings.NewReader(input),
		Out:             &out,
	})
	for _, fn := range tweak {
		fn(app)
	}
	app.Run(context.Background())
	return out.String()
}
