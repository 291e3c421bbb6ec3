package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
)

// Client is the backend API. Methods taking a token send it as a bearer
// credential; an empty token sends no Authorization header.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Me(ctx context.Context, token string) (*models.CurrentUser, error)

	Profile(ctx context.Context, token string, userID int64) (*models.Profile, error)
	Follow(ctx context.Context, token string, userID int64) (*models.Profile, error)
	Unfollow(ctx context.Context, token string, userID int64) (*models.Profile, error)

	ListPosts(ctx context.Context, token string) ([]models.Post, error)
	GetPost(ctx context.Context, token string, postID int64) (*models.Post, error)
	CreatePost(ctx context.Context, token string, form models.PostForm) (*models.Post, error)
	UpdatePost(ctx context.Context, token string, postID int64, form models.PostForm) (*models.Post, error)
	DeletePost(ctx context.Context, token string, postID int64) error

	AddComment(ctx context.Context, token string, postID int64, in models.CommentInput) (*models.Post, error)
	UpdateComment(ctx context.Context, token string, postID, commentID int64, in models.CommentInput) (*models.Post, error)
	DeleteComment(ctx context.Context, token string, commentID int64) error
	React(ctx context.Context, token string, postID int64, in models.ReactionInput) (*models.Post, error)

	ListLearningPlans(ctx context.Context, token string) ([]models.LearningPlan, error)
	ListAllLearningPlans(ctx context.Context, token string, status models.PlanStatus) ([]models.LearningPlan, error)
	CreateLearningPlan(ctx context.Context, token string, in models.LearningPlanInput) (*models.LearningPlan, error)
	UpdateLearningPlan(ctx context.Context, token string, planID int64, in models.LearningPlanInput) (*models.LearningPlan, error)
	UpdateLearningPlanStatus(ctx context.Context, token string, planID int64, in models.StatusInput) (*models.LearningPlan, error)
	DeleteLearningPlan(ctx context.Context, token string, planID int64) error
	Upload(ctx context.Context, token string, fileName string, content io.Reader) (*models.UploadResult, error)

	ListSubscriptionPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	Subscribe(ctx context.Context, token string, in models.SubscribeInput) (*models.Subscription, error)
	MySubscriptions(ctx context.Context, token string) ([]models.Subscription, error)

	AdminListPlans(ctx context.Context, token string) ([]models.SubscriptionPlan, error)
	AdminCreatePlan(ctx context.Context, token string, in models.PlanInput) (*models.SubscriptionPlan, error)
	AdminUpdatePlan(ctx context.Context, token string, planID int64, in models.PlanInput) (*models.SubscriptionPlan, error)
	AdminDeletePlan(ctx context.Context, token string, planID int64) error

	ListNotes(ctx context.Context, token string, userID int64) ([]models.Note, error)
	CreateNote(ctx context.Context, token string, userID int64, in models.NoteInput) (*models.Note, error)
	UpdateNote(ctx context.Context, token string, userID, noteID int64, in models.NoteInput) (*models.Note, error)
	DeleteNote(ctx context.Context, token string, userID, noteID int64) error
}
