package models

// PlanStatus is the progress state of a learning plan.
type PlanStatus string

const (
	StatusNotStarted PlanStatus = "NOT_STARTED"
	StatusInProgress PlanStatus = "IN_PROGRESS"
	StatusCompleted  PlanStatus = "COMPLETED"
)

// ParsePlanStatus accepts the canonical spelling only.
func ParsePlanStatus(s string) (PlanStatus, bool) {
	switch PlanStatus(s) {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return PlanStatus(s), true
	}
	return "", false
}

type LearningPlan struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Duration     int    `json:"duration,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Status       string `json:"status,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
	UserID       int64  `json:"userId,omitempty"`
	Username     string `json:"username,omitempty"`
}

// LearningPlanInput is the body of learning-plan create/update.
type LearningPlanInput struct {
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description,omitempty"`
	Duration     int        `json:"duration,omitempty" validate:"gte=0"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	Status       PlanStatus `json:"status,omitempty" validate:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
}

// StatusInput is the body of PUT /learning-plans/{id}/status.
type StatusInput struct {
	Status PlanStatus `json:"status" validate:"required,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
}

// UploadResult is returned by POST /uploads.
type UploadResult struct {
	URL string `json:"url"`
}
