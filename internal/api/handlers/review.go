package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	service "github.com/aaravmahajanofficial/apparel-storefront/internal/services"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: validator.New()}
}

// ListReviews godoc
//	@Summary		List reviews for a product
//	@Description	Approved reviews, newest first. A signed-in viewer also sees their own pending reviews on the first page.
//	@Tags			Reviews
//	@Produce		json
//	@Param			slug		path		string					true	"Product slug"
//	@Param			page		query		int						false	"Page number (default: 1)"	minimum(1)
//	@Param			pageSize	query		int						false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.ReviewList		"Reviews"
//	@Failure		404			{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{slug}/reviews [get]
func (h *ReviewHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("slug", slug))

		page, pageSize := utils.ParsePagination(r)

		var viewer *uuid.UUID
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			viewer = &claims.UserID
		}

		list, err := h.reviewService.ListForProduct(r.Context(), slug, viewer, page, pageSize)
		if err != nil {
			logger.Warn("Failed to list reviews", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, list)
	}
}

// CreateReview godoc
//	@Summary		Submit a review
//	@Description	Reviews start as pending and are hidden from other shoppers until approved.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string						true	"Product slug"
//	@Param			review	body		models.CreateReviewRequest	true	"Review"
//	@Success		201		{object}	models.Review				"Pending review"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid review"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{slug}/reviews [post]
func (h *ReviewHandler) CreateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CreateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		review, err := h.reviewService.CreateReview(r.Context(), r.PathValue("slug"), claims, &req)
		if err != nil {
			logger.Warn("Failed to create review", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusCreated, i18n.KeyReviewSubmitted, review)
	}
}

// AdminListReviews godoc
//	@Summary		List reviews for moderation
//	@Tags			Admin
//	@Produce		json
//	@Param			status		query		string					false	"Review status (default: pending)"	Enums(pending, approved, rejected)
//	@Param			page		query		int						false	"Page number (default: 1)"
//	@Param			pageSize	query		int						false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.ReviewList		"Reviews"
//	@Failure		403			{object}	response.ErrorResponse	"Admin role required"
//	@Security		BearerAuth
//	@Router			/admin/reviews [get]
func (h *ReviewHandler) AdminListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)
		status := models.ReviewStatus(r.URL.Query().Get("status"))

		list, err := h.reviewService.ListForModeration(r.Context(), status, page, pageSize)
		if err != nil {
			logger.Error("Failed to list reviews for moderation", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, list)
	}
}

// ModerateReview godoc
//	@Summary		Approve or reject a review
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Review ID"	Format(uuid)
//	@Param			status	body		models.ModerateReviewRequest	true	"New status"
//	@Success		200		{object}	models.Review					"Moderated review"
//	@Failure		404		{object}	response.ErrorResponse			"Review not found"
//	@Security		BearerAuth
//	@Router			/admin/reviews/{id} [patch]
func (h *ReviewHandler) ModerateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.LocalizedError(w, r, err)
			return
		}

		var req models.ModerateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		review, err := h.reviewService.ModerateReview(r.Context(), id, req.Status)
		if err != nil {
			logger.Warn("Failed to moderate review", slog.String("reviewId", id.String()), slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeyReviewModerated, review)
	}
}

// DeleteReview godoc
//	@Summary		Delete a review
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string					true	"Review ID"	Format(uuid)
//	@Success		200	{object}	response.APIResponse	"Deleted"
//	@Failure		404	{object}	response.ErrorResponse	"Review not found"
//	@Security		BearerAuth
//	@Router			/admin/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.LocalizedError(w, r, err)
			return
		}

		if err := h.reviewService.DeleteReview(r.Context(), id); err != nil {
			logger.Warn("Failed to delete review", slog.String("reviewId", id.String()), slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeyDeleted, nil)
	}
}
