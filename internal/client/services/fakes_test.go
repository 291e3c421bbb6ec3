package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/skillsphere/internal/client/client"
	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/client/session"
)

// fakeClient overrides the calls a test needs; anything else panics on the
// nil embedded interface.
type fakeClient struct {
	client.Client

	calls     []string
	lastToken string
	lastUser  int64
	lastForm  models.PostForm
	lastPlan  models.LearningPlanInput
	lastAdmin models.PlanInput
	lastFile  string
	lastCreds models.Credentials

	err       error
	authResp  *models.AuthResponse
	posts     []models.Post
	post      *models.Post
	profile   *models.Profile
	plans     []models.LearningPlan
	plan      *models.LearningPlan
	subPlans  []models.SubscriptionPlan
	subPlan   *models.SubscriptionPlan
	notes     []models.Note
	note      *models.Note
	uploadURL string
	status    models.PlanStatus
}

func (f *fakeClient) record(name, token string) {
	f.calls = append(f.calls, name)
	f.lastToken = token
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	f.record("Login", "")
	f.lastCreds = creds
	return f.authResp, f.err
}

func (f *fakeClient) Register(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	f.record("Register", "")
	f.lastCreds = creds
	return f.authResp, f.err
}

func (f *fakeClient) Me(ctx context.Context, token string) (*models.CurrentUser, error) {
	f.record("Me", token)
	return &models.CurrentUser{UserID: 1}, f.err
}

func (f *fakeClient) ListPosts(ctx context.Context, token string) ([]models.Post, error) {
	f.record("ListPosts", token)
	return f.posts, f.err
}

func (f *fakeClient) CreatePost(ctx context.Context, token string, form models.PostForm) (*models.Post, error) {
	f.record("CreatePost", token)
	f.lastForm = form
	return f.post, f.err
}

func (f *fakeClient) DeletePost(ctx context.Context, token string, postID int64) error {
	f.record("DeletePost", token)
	return f.err
}

func (f *fakeClient) React(ctx context.Context, token string, postID int64, in models.ReactionInput) (*models.Post, error) {
	f.record("React", token)
	return f.post, f.err
}

func (f *fakeClient) AddComment(ctx context.Context, token string, postID int64, in models.CommentInput) (*models.Post, error) {
	f.record("AddComment", token)
	return f.post, f.err
}

func (f *fakeClient) Profile(ctx context.Context, token string, userID int64) (*models.Profile, error) {
	f.record("Profile", token)
	f.lastUser = userID
	return f.profile, f.err
}

func (f *fakeClient) Follow(ctx context.Context, token string, userID int64) (*models.Profile, error) {
	f.record("Follow", token)
	f.lastUser = userID
	return f.profile, f.err
}

func (f *fakeClient) CreateNote(ctx context.Context, token string, userID int64, in models.NoteInput) (*models.Note, error) {
	f.record("CreateNote", token)
	f.lastUser = userID
	return f.note, f.err
}

func (f *fakeClient) DeleteNote(ctx context.Context, token string, userID, noteID int64) error {
	f.record("DeleteNote", token)
	f.lastUser = userID
	return f.err
}

func (f *fakeClient) ListLearningPlans(ctx context.Context, token string) ([]models.LearningPlan, error) {
	f.record("ListLearningPlans", token)
	return f.plans, f.err
}

func (f *fakeClient) ListAllLearningPlans(ctx context.Context, token string, status models.PlanStatus) ([]models.LearningPlan, error) {
	f.record("ListAllLearningPlans", token)
	f.status = status
	return f.plans, f.err
}

func (f *fakeClient) CreateLearningPlan(ctx context.Context, token string, in models.LearningPlanInput) (*models.LearningPlan, error) {
	f.record("CreateLearningPlan", token)
	f.lastPlan = in
	return f.plan, f.err
}

func (f *fakeClient) UpdateLearningPlanStatus(ctx context.Context, token string, planID int64, in models.StatusInput) (*models.LearningPlan, error) {
	f.record("UpdateLearningPlanStatus", token)
	f.status = in.Status
	return f.plan, f.err
}

func (f *fakeClient) DeleteLearningPlan(ctx context.Context, token string, planID int64) error {
	f.record("DeleteLearningPlan", token)
	return f.err
}

func (f *fakeClient) Upload(ctx context.Context, token string, fileName string, content io.Reader) (*models.UploadResult, error) {
	f.record("Upload", token)
	f.lastFile = fileName
	return &models.UploadResult{URL: f.uploadURL}, f.err
}

func (f *fakeClient) ListSubscriptionPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	f.record("ListSubscriptionPlans", "")
	return f.subPlans, f.err
}

func (f *fakeClient) Subscribe(ctx context.Context, token string, in models.SubscribeInput) (*models.Subscription, error) {
	f.record("Subscribe", token)
	return &models.Subscription{ID: 1, Plan: in.Plan, Active: true}, f.err
}

func (f *fakeClient) AdminListPlans(ctx context.Context, token string) ([]models.SubscriptionPlan, error) {
	f.record("AdminListPlans", token)
	return f.subPlans, f.err
}

func (f *fakeClient) AdminCreatePlan(ctx context.Context, token string, in models.PlanInput) (*models.SubscriptionPlan, error) {
	f.record("AdminCreatePlan", token)
	f.lastAdmin = in
	return f.subPlan, f.err
}

func (f *fakeClient) AdminDeletePlan(ctx context.Context, token string, planID int64) error {
	f.record("AdminDeletePlan", token)
	return f.err
}

// fakeSession is a fixed credential with a recording guard.
type fakeSession struct {
	identity *session.Identity
	epoch    uint64
	guarded  []error
}

func signedIn(id int64, admin bool) *fakeSession {
	return &fakeSession{
		identity: &session.Identity{ID: id, Username: "user", Token: "tok", IsAdmin: admin},
		epoch:    3,
	}
}

func (s *fakeSession) Credential() (string, uint64, bool) {
	if s.identity == nil {
		return "", s.epoch, false
	}
	return s.identity.Token, s.epoch, true
}

func (s *fakeSession) Identity() (session.Identity, bool) {
	if s.identity == nil {
		return session.Identity{}, false
	}
	return *s.identity, true
}

func (s *fakeSession) GuardEpoch(epoch uint64, err error) error {
	s.guarded = append(s.guarded, err)
	return err
}
