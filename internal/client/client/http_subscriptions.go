package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
)

func (c *HTTPClient) ListSubscriptionPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	var out []models.SubscriptionPlan
	if err := c.doJSON(ctx, http.MethodGet, "/subscriptions/plans", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Subscribe(ctx context.Context, token string, in models.SubscribeInput) (*models.Subscription, error) {
	var out models.Subscription
	if err := c.doJSON(ctx, http.MethodPost, "/subscriptions", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) MySubscriptions(ctx context.Context, token string) ([]models.Subscription, error) {
	var out []models.Subscription
	if err := c.doJSON(ctx, http.MethodGet, "/subscriptions/user", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AdminListPlans(ctx context.Context, token string) ([]models.SubscriptionPlan, error) {
	var out []models.SubscriptionPlan
	if err := c.doJSON(ctx, http.MethodGet, "/admin/subscription-plans", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AdminCreatePlan(ctx context.Context, token string, in models.PlanInput) (*models.SubscriptionPlan, error) {
	var out models.SubscriptionPlan
	if err := c.doJSON(ctx, http.MethodPost, "/admin/subscription-plans", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AdminUpdatePlan(ctx context.Context, token string, planID int64, in models.PlanInput) (*models.SubscriptionPlan, error) {
	var out models.SubscriptionPlan
	if err := c.doJSON(ctx, http.MethodPut, idPath("/admin/subscription-plans/%d", planID), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AdminDeletePlan(ctx context.Context, token string, planID int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/admin/subscription-plans/%d", planID), token, nil, nil)
}
