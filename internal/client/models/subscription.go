package models

type SubscriptionPlan struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features"`
	Price       float64  `json:"price"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// PlanInput is the admin body for subscription-plan create/update.
type PlanInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Features    []string `json:"features,omitempty"`
}

// SubscribeInput is the body of POST /subscriptions.
type SubscribeInput struct {
	Plan string `json:"plan" validate:"required"`
}

type Subscription struct {
	ID        int64  `json:"id"`
	Plan      string `json:"plan"`
	Active    bool   `json:"active"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}
