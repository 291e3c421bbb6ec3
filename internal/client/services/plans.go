package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/skillsphere/internal/client/client"
	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/common"
)

// MaxUploadSize is the largest image the backend accepts.
const MaxUploadSize = 5 << 20

var uploadExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// PlanService covers learning plans and thumbnail uploads.
type PlanService interface {
	Mine(ctx context.Context) ([]models.LearningPlan, error)
	All(ctx context.Context, status string) ([]models.LearningPlan, error)
	Create(ctx context.Context, in models.LearningPlanInput) (*models.LearningPlan, error)
	Update(ctx context.Context, planID int64, in models.LearningPlanInput) (*models.LearningPlan, error)
	SetStatus(ctx context.Context, planID int64, status string) (*models.LearningPlan, error)
	Delete(ctx context.Context, planID int64) error
	Upload(ctx context.Context, fileName string, content []byte) (string, error)
}

type planService struct {
	client  client.Client
	session Session
}

func NewPlanService(client client.Client, s Session) PlanService {
	return &planService{client: client, session: s}
}

func (p *planService) Mine(ctx context.Context) ([]models.LearningPlan, error) {
	return authorized(ctx, p.session, p.client.ListLearningPlans)
}

// All lists every user's plans; an empty status means no filter.
func (p *planService) All(ctx context.Context, status string) ([]models.LearningPlan, error) {
	var filter models.PlanStatus
	if status != "" {
		s, ok := models.ParsePlanStatus(strings.ToUpper(status))
		if !ok {
			return nil, invalidStatus()
		}
		filter = s
	}
	return optional(ctx, p.session, func(ctx context.Context, token string) ([]models.LearningPlan, error) {
		return p.client.ListAllLearningPlans(ctx, token, filter)
	})
}

func (p *planService) Create(ctx context.Context, in models.LearningPlanInput) (*models.LearningPlan, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return authorized(ctx, p.session, func(ctx context.Context, token string) (*models.LearningPlan, error) {
		return p.client.CreateLearningPlan(ctx, token, in)
	})
}

func (p *planService) Update(ctx context.Context, planID int64, in models.LearningPlanInput) (*models.LearningPlan, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return authorized(ctx, p.session, func(ctx context.Context, token string) (*models.LearningPlan, error) {
		return p.client.UpdateLearningPlan(ctx, token, planID, in)
	})
}

func (p *planService) SetStatus(ctx context.Context, planID int64, status string) (*models.LearningPlan, error) {
	in := models.StatusInput{Status: models.PlanStatus(strings.ToUpper(strings.TrimSpace(status)))}
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return authorized(ctx, p.session, func(ctx context.Context, token string) (*models.LearningPlan, error) {
		return p.client.UpdateLearningPlanStatus(ctx, token, planID, in)
	})
}

func (p *planService) Delete(ctx context.Context, planID int64) error {
	return exec(ctx, p.session, func(ctx context.Context, token string) error {
		return p.client.DeleteLearningPlan(ctx, token, planID)
	})
}

// Upload sends an image and returns the URL the backend serves it under.
func (p *planService) Upload(ctx context.Context, fileName string, content []byte) (string, error) {
	if err := checkUpload(fileName, content); err != nil {
		return "", err
	}
	res, err := authorized(ctx, p.session, func(ctx context.Context, token string) (*models.UploadResult, error) {
		return p.client.Upload(ctx, token, filepath.Base(fileName), bytes.NewReader(content))
	})
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

func checkUpload(fileName string, content []byte) error {
	switch {
	case len(content) == 0:
		return &common.ValidationError{Fields: map[string]string{"file": "file is empty"}}
	case len(content) > MaxUploadSize:
		return &common.ValidationError{Fields: map[string]string{"file": "file size exceeds 5MB limit"}}
	case !uploadExtensions[strings.ToLower(filepath.Ext(fileName))]:
		return &common.ValidationError{Fields: map[string]string{
			"file": fmt.Sprintf("invalid file extension %q, allowed: jpg, jpeg, png, gif, webp", filepath.Ext(fileName)),
		}}
	}
	return nil
}

func invalidStatus() error {
	return &common.ValidationError{Fields: map[string]string{
		"status": "must be one of: NOT_STARTED, IN_PROGRESS, COMPLETED",
	}}
}
