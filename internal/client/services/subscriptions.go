package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/skillsphere/internal/client/client"
	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/common"
)

// SubscriptionService covers subscription plans and, for admins, their
// administration.
type SubscriptionService interface {
	Plans(ctx context.Context) ([]models.SubscriptionPlan, error)
	Subscribe(ctx context.Context, plan string) (*models.Subscription, error)
	Mine(ctx context.Context) ([]models.Subscription, error)

	AdminPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	AdminCreate(ctx context.Context, in models.PlanInput) (*models.SubscriptionPlan, error)
	AdminUpdate(ctx context.Context, planID int64, in models.PlanInput) (*models.SubscriptionPlan, error)
	AdminDelete(ctx context.Context, planID int64) error
}

type subscriptionService struct {
	client  client.Client
	session Session
}

func NewSubscriptionService(client client.Client, s Session) SubscriptionService {
	return &subscriptionService{client: client, session: s}
}

// Plans is public.
func (s *subscriptionService) Plans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	return s.client.ListSubscriptionPlans(ctx)
}

func (s *subscriptionService) Subscribe(ctx context.Context, plan string) (*models.Subscription, error) {
	in := models.SubscribeInput{Plan: strings.TrimSpace(plan)}
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return authorized(ctx, s.session, func(ctx context.Context, token string) (*models.Subscription, error) {
		return s.client.Subscribe(ctx, token, in)
	})
}

func (s *subscriptionService) Mine(ctx context.Context) ([]models.Subscription, error) {
	return authorized(ctx, s.session, s.client.MySubscriptions)
}

// requireAdmin fails locally for anonymous and non-admin users.
func (s *subscriptionService) requireAdmin() error {
	me, err := currentUser(s.session)
	if err != nil {
		return err
	}
	if !me.IsAdmin {
		return common.ErrForbidden
	}
	return nil
}

func (s *subscriptionService) AdminPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return authorized(ctx, s.session, s.client.AdminListPlans)
}

func (s *subscriptionService) AdminCreate(ctx context.Context, in models.PlanInput) (*models.SubscriptionPlan, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	in = trimPlanInput(in)
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return authorized(ctx, s.session, func(ctx context.Context, token string) (*models.SubscriptionPlan, error) {
		return s.client.AdminCreatePlan(ctx, token, in)
	})
}

func (s *subscriptionService) AdminUpdate(ctx context.Context, planID int64, in models.PlanInput) (*models.SubscriptionPlan, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	in = trimPlanInput(in)
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return authorized(ctx, s.session, func(ctx context.Context, token string) (*models.SubscriptionPlan, error) {
		return s.client.AdminUpdatePlan(ctx, token, planID, in)
	})
}

func (s *subscriptionService) AdminDelete(ctx context.Context, planID int64) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	return exec(ctx, s.session, func(ctx context.Context, token string) error {
		return s.client.AdminDeletePlan(ctx, token, planID)
	})
}

func trimPlanInput(in models.PlanInput) models.PlanInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	features := in.Features[:0:0]
	for _, f := range in.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	in.Features = features
	return in
}
