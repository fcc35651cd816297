package models

import (
	"time"

	"github.com/google/uuid"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

type Review struct {
	ID         uuid.UUID    `json:"id"`
	ProductID  uuid.UUID    `json:"productId"`
	UserID     uuid.UUID    `json:"userId"`
	AuthorName string       `json:"authorName"`
	Rating     int          `json:"rating"`
	Title      string       `json:"title"`
	Body       string       `json:"body"`
	Status     ReviewStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

type ReviewFilter struct {
	ProductID *uuid.UUID
	UserID    *uuid.UUID
	Status    ReviewStatus
	Page      int
	PageSize  int
}

type CreateReviewRequest struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Title     string `json:"title" validate:"omitempty,max=120"`
	Body      string `json:"body" validate:"required,min=3,max=2000"`
	CSRFToken string `json:"csrfToken,omitempty"`
}

type ModerateReviewRequest struct {
	Status    ReviewStatus `json:"status" validate:"required,oneof=approved rejected"`
	CSRFToken string       `json:"csrfToken,omitempty"`
}

type ReviewList struct {
	Reviews       []Review `json:"reviews"`
	Total         int      `json:"total"`
	AverageRating float64  `json:"averageRating"`
	Page          int      `json:"page"`
	PageSize      int      `json:"pageSize"`
}
