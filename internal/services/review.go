package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/reviews"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ReviewService interface {
	ListForProduct(ctx context.Context, slug string, viewer *uuid.UUID, page, pageSize int) (*models.ReviewList, error)
	CreateReview(ctx context.Context, slug string, author *models.Claims, req *models.CreateReviewRequest) (*models.Review, error)
	ListForModeration(ctx context.Context, status models.ReviewStatus, page, pageSize int) (*models.ReviewList, error)
	ModerateReview(ctx context.Context, id uuid.UUID, status models.ReviewStatus) (*models.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

type reviewService struct {
	repo     repository.ReviewRepository
	users    repository.UserRepository
	products ProductService
	policy   *bluemonday.Policy
}

func NewReviewService(repo repository.ReviewRepository, users repository.UserRepository, products ProductService) ReviewService {
	return &reviewService{repo: repo, users: users, products: products, policy: bluemonday.StrictPolicy()}
}

// ListForProduct returns approved reviews and, for a signed-in viewer, their
// own reviews still waiting for moderation. Total and AverageRating cover
// approved reviews only.
func (s *reviewService) ListForProduct(ctx context.Context, slug string, viewer *uuid.UUID, page, pageSize int) (*models.ReviewList, error) {

	product, err := s.products.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	approved, total, err := s.repo.ListReviews(ctx, models.ReviewFilter{
		ProductID: &product.ID,
		Status:    models.ReviewStatusApproved,
	})
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch reviews").WithError(err)
	}

	var pending []models.Review

	if viewer != nil && page == 1 {
		pending, _, err = s.repo.ListReviews(ctx, models.ReviewFilter{
			ProductID: &product.ID,
			UserID:    viewer,
			Status:    models.ReviewStatusPending,
		})
		if err != nil {
			return nil, errors.DatabaseError("Failed to fetch reviews").WithError(err)
		}
	}

	merged := reviews.Reconcile(pending, paginate(approved, page, pageSize))

	return &models.ReviewList{
		Reviews:       merged.Reviews,
		Total:         total,
		AverageRating: averageRating(approved),
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

func (s *reviewService) CreateReview(ctx context.Context, slug string, author *models.Claims, req *models.CreateReviewRequest) (*models.Review, error) {

	product, err := s.products.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserById(ctx, author.UserID)
	if err != nil {
		return nil, errors.NotFoundError("User not found").WithKey(i18n.KeyNotFound).WithError(err)
	}

	body := strings.TrimSpace(s.policy.Sanitize(req.Body))
	if len([]rune(body)) < 3 {
		return nil, errors.ValidationError("Review body is empty after sanitizing").WithKey(i18n.KeyValidationFailed)
	}

	review := &models.Review{
		ID:         uuid.New(),
		ProductID:  product.ID,
		UserID:     user.ID,
		AuthorName: user.Name,
		Rating:     req.Rating,
		Title:      strings.TrimSpace(s.policy.Sanitize(req.Title)),
		Body:       body,
		Status:     models.ReviewStatusPending,
	}

	if i18n.FromContext(ctx) == i18n.Arabic && user.NameAr != "" {
		review.AuthorName = user.NameAr
	}

	if err := s.repo.CreateReview(ctx, review); err != nil {
		return nil, errors.DatabaseError("Failed to save review").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Review submitted for moderation", slog.String("reviewId", review.ID.String()), slog.String("productId", product.ID.String()))

	return review, nil
}

func (s *reviewService) ListForModeration(ctx context.Context, status models.ReviewStatus, page, pageSize int) (*models.ReviewList, error) {

	if status == "" {
		status = models.ReviewStatusPending
	}

	list, total, err := s.repo.ListReviews(ctx, models.ReviewFilter{Status: status, Page: page, PageSize: pageSize})
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch reviews").WithError(err)
	}

	return &models.ReviewList{Reviews: list, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *reviewService) ModerateReview(ctx context.Context, id uuid.UUID, status models.ReviewStatus) (*models.Review, error) {

	review, err := s.repo.UpdateReviewStatus(ctx, id, status)
	if err != nil {
		if isNoRows(err) {
			return nil, errors.NotFoundError("Review not found").WithKey(i18n.KeyNotFound).WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update review").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Review moderated", slog.String("reviewId", id.String()), slog.String("status", string(status)))

	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.DeleteReview(ctx, id); err != nil {
		if isNoRows(err) {
			return errors.NotFoundError("Review not found").WithKey(i18n.KeyNotFound).WithError(err)
		}

		return errors.DatabaseError("Failed to delete review").WithError(err)
	}

	return nil
}

func paginate(list []models.Review, page, pageSize int) []models.Review {
	start := (page - 1) * pageSize
	if start >= len(list) || start < 0 {
		return []models.Review{}
	}

	return list[start:min(start+pageSize, len(list))]
}

func averageRating(list []models.Review) float64 {
	if len(list) == 0 {
		return 0
	}

	var sum int
	for _, r := range list {
		sum += r.Rating
	}

	return float64(sum) / float64(len(list))
}
