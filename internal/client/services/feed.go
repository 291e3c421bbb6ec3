package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/skillsphere/internal/client/client"
	"github.com/dmitrijs2005/skillsphere/internal/client/models"
)

// FeedService covers posts, comments and reactions.
type FeedService interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, postID int64) (*models.Post, error)
	Create(ctx context.Context, form models.PostForm) (*models.Post, error)
	Update(ctx context.Context, postID int64, form models.PostForm) (*models.Post, error)
	Delete(ctx context.Context, postID int64) error
	Comment(ctx context.Context, postID int64, text string) (*models.Post, error)
	EditComment(ctx context.Context, postID, commentID int64, text string) (*models.Post, error)
	DeleteComment(ctx context.Context, commentID int64) error
	React(ctx context.Context, postID int64, reaction models.ReactionType) (*models.Post, error)
}

type feedService struct {
	client  client.Client
	session Session
}

func NewFeedService(client client.Client, s Session) FeedService {
	return &feedService{client: client, session: s}
}

// List works for anonymous users too; the credential is sent when present.
func (f *feedService) List(ctx context.Context) ([]models.Post, error) {
	return optional(ctx, f.session, f.client.ListPosts)
}

func (f *feedService) Get(ctx context.Context, postID int64) (*models.Post, error) {
	return optional(ctx, f.session, func(ctx context.Context, token string) (*models.Post, error) {
		return f.client.GetPost(ctx, token, postID)
	})
}

func (f *feedService) Create(ctx context.Context, form models.PostForm) (*models.Post, error) {
	form = trimPostForm(form)
	if err := models.Validate(form); err != nil {
		return nil, err
	}
	return authorized(ctx, f.session, func(ctx context.Context, token string) (*models.Post, error) {
		return f.client.CreatePost(ctx, token, form)
	})
}

func (f *feedService) Update(ctx context.Context, postID int64, form models.PostForm) (*models.Post, error) {
	form = trimPostForm(form)
	if err := models.Validate(form); err != nil {
		return nil, err
	}
	return authorized(ctx, f.session, func(ctx context.Context, token string) (*models.Post, error) {
		return f.client.UpdatePost(ctx, token, postID, form)
	})
}

func (f *feedService) Delete(ctx context.Context, postID int64) error {
	return exec(ctx, f.session, func(ctx context.Context, token string) error {
		return f.client.DeletePost(ctx, token, postID)
	})
}

func (f *feedService) Comment(ctx context.Context, postID int64, text string) (*models.Post, error) {
	in := models.CommentInput{Text: strings.TrimSpace(text)}
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return authorized(ctx, f.session, func(ctx context.Context, token string) (*models.Post, error) {
		return f.client.AddComment(ctx, token, postID, in)
	})
}

func (f *feedService) EditComment(ctx context.Context, postID, commentID int64, text string) (*models.Post, error) {
	in := models.CommentInput{Text: strings.TrimSpace(text)}
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return authorized(ctx, f.session, func(ctx context.Context, token string) (*models.Post, error) {
		return f.client.UpdateComment(ctx, token, postID, commentID, in)
	})
}

func (f *feedService) DeleteComment(ctx context.Context, commentID int64) error {
	return exec(ctx, f.session, func(ctx context.Context, token string) error {
		return f.client.DeleteComment(ctx, token, commentID)
	})
}

func (f *feedService) React(ctx context.Context, postID int64, reaction models.ReactionType) (*models.Post, error) {
	in := models.ReactionInput{ReactionType: models.ReactionType(strings.ToUpper(string(reaction)))}
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return authorized(ctx, f.session, func(ctx context.Context, token string) (*models.Post, error) {
		return f.client.React(ctx, token, postID, in)
	})
}

func trimPostForm(form models.PostForm) models.PostForm {
	form.Title = strings.TrimSpace(form.Title)
	form.Content = strings.TrimSpace(form.Content)
	form.Category = strings.TrimSpace(form.Category)
	form.Tags = strings.TrimSpace(form.Tags)
	return form
}
