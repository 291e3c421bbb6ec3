package client

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/netx"
)

// ListLearningPlans returns the plans owned by the token's user.
func (c *HTTPClient) ListLearningPlans(ctx context.Context, token string) ([]models.LearningPlan, error) {
	var out []models.LearningPlan
	if err := c.doJSON(ctx, http.MethodGet, "/learning-plans", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllLearningPlans returns everyone's plans, filtered by status when
// status is non-empty.
func (c *HTTPClient) ListAllLearningPlans(ctx context.Context, token string, status models.PlanStatus) ([]models.LearningPlan, error) {
	r := request{method: http.MethodGet, path: "/learning-plans/all", token: token}
	if status != "" {
		r.query = url.Values{"status": []string{string(status)}}
	}

	var out []models.LearningPlan
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLearningPlan unwraps the {"learningPlan": {...}} envelope.
func (c *HTTPClient) CreateLearningPlan(ctx context.Context, token string, in models.LearningPlanInput) (*models.LearningPlan, error) {
	var out struct {
		LearningPlan models.LearningPlan `json:"learningPlan"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/learning-plans", token, in, &out); err != nil {
		return nil, err
	}
	return &out.LearningPlan, nil
}

func (c *HTTPClient) UpdateLearningPlan(ctx context.Context, token string, planID int64, in models.LearningPlanInput) (*models.LearningPlan, error) {
	var out models.LearningPlan
	if err := c.doJSON(ctx, http.MethodPut, idPath("/learning-plans/%d", planID), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateLearningPlanStatus(ctx context.Context, token string, planID int64, in models.StatusInput) (*models.LearningPlan, error) {
	var out models.LearningPlan
	if err := c.doJSON(ctx, http.MethodPut, idPath("/learning-plans/%d/status", planID), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteLearningPlan(ctx context.Context, token string, planID int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/learning-plans/%d", planID), token, nil, nil)
}

// Upload sends content as the multipart "file" part and returns its URL.
func (c *HTTPClient) Upload(ctx context.Context, token string, fileName string, content io.Reader) (*models.UploadResult, error) {
	body, contentType, err := netx.BuildMultipart(nil, []netx.File{{Field: "file", FileName: fileName, Content: content}})
	if err != nil {
		return nil, err
	}

	var out models.UploadResult
	r := request{method: http.MethodPost, path: "/uploads", token: token, body: body, contentType: contentType}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
