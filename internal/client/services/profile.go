package services

import (
	"context"

	"github.com/dmitrijs2005/skillsphere/internal/client/client"
	"github.com/dmitrijs2005/skillsphere/internal/client/models"
)

// ProfileService covers profiles, follows and the signed-in user's notes.
type ProfileService interface {
	Get(ctx context.Context, userID int64) (*models.Profile, error)
	Follow(ctx context.Context, userID int64) (*models.Profile, error)
	Unfollow(ctx context.Context, userID int64) (*models.Profile, error)
	Notes(ctx context.Context, userID int64) ([]models.Note, error)
	AddNote(ctx context.Context, in models.NoteInput) (*models.Note, error)
	UpdateNote(ctx context.Context, noteID int64, in models.NoteInput) (*models.Note, error)
	DeleteNote(ctx context.Context, noteID int64) error
}

type profileService struct {
	client  client.Client
	session Session
}

func NewProfileService(client client.Client, s Session) ProfileService {
	return &profileService{client: client, session: s}
}

func (p *profileService) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	return optional(ctx, p.session, func(ctx context.Context, token string) (*models.Profile, error) {
		return p.client.Profile(ctx, token, userID)
	})
}

func (p *profileService) Follow(ctx context.Context, userID int64) (*models.Profile, error) {
	return authorized(ctx, p.session, func(ctx context.Context, token string) (*models.Profile, error) {
		return p.client.Follow(ctx, token, userID)
	})
}

func (p *profileService) Unfollow(ctx context.Context, userID int64) (*models.Profile, error) {
	return authorized(ctx, p.session, func(ctx context.Context, token string) (*models.Profile, error) {
		return p.client.Unfollow(ctx, token, userID)
	})
}

func (p *profileService) Notes(ctx context.Context, userID int64) ([]models.Note, error) {
	return authorized(ctx, p.session, func(ctx context.Context, token string) ([]models.Note, error) {
		return p.client.ListNotes(ctx, token, userID)
	})
}

// AddNote creates a note owned by the signed-in user.
func (p *profileService) AddNote(ctx context.Context, in models.NoteInput) (*models.Note, error) {
	me, err := currentUser(p.session)
	if err != nil {
		return nil, err
	}
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return authorized(ctx, p.session, func(ctx context.Context, token string) (*models.Note, error) {
		return p.client.CreateNote(ctx, token, me.ID, in)
	})
}

func (p *profileService) UpdateNote(ctx context.Context, noteID int64, in models.NoteInput) (*models.Note, error) {
	me, err := currentUser(p.session)
	if err != nil {
		return nil, err
	}
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return authorized(ctx, p.session, func(ctx context.Context, token string) (*models.Note, error) {
		return p.client.UpdateNote(ctx, token, me.ID, noteID, in)
	})
}

func (p *profileService) DeleteNote(ctx context.Context, noteID int64) error {
	me, err := currentUser(p.session)
	if err != nil {
		return err
	}
	return exec(ctx, p.session, func(ctx context.Context, token string) error {
		return p.client.DeleteNote(ctx, token, me.ID, noteID)
	})
}
