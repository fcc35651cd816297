package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	service "github.com/aaravmahajanofficial/apparel-storefront/internal/services"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils/response"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// AdminListNotifications godoc
//	@Summary		List security notices
//	@Description	Audit log of password and MFA notices with their delivery status.
//	@Tags			Admin
//	@Produce		json
//	@Param			status		query		string																false	"Delivery status"	Enums(pending, sent, failed, skipped)
//	@Param			userId		query		string																false	"Recipient user ID"	Format(uuid)
//	@Param			page		query		int																	false	"Page number (default: 1)"
//	@Param			pageSize	query		int																	false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Notification}	"Notices"
//	@Failure		400			{object}	response.ErrorResponse												"Invalid filter"
//	@Failure		403			{object}	response.ErrorResponse												"Admin role required"
//	@Security		BearerAuth
//	@Router			/admin/notifications [get]
func (h *NotificationHandler) AdminListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)
		filter := models.NotificationFilter{Page: page, PageSize: pageSize}

		if status := models.NotificationStatus(r.URL.Query().Get("status")); status != "" {
			if !status.Valid() {
				response.LocalizedError(w, r, errors.ValidationError("Unknown notification status").WithKey(i18n.KeyValidationFailed))
				return
			}
			filter.Status = status
		}

		if raw := r.URL.Query().Get("userId"); raw != "" {
			userID, err := uuid.Parse(raw)
			if err != nil {
				response.LocalizedError(w, r, errors.ValidationError("Invalid user id").WithKey(i18n.KeyValidationFailed).WithError(err))
				return
			}
			filter.UserID = &userID
		}

		notifications, total, err := h.notificationService.ListNotifications(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list notifications", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		logger.Info("Notifications listed", slog.Int("count", len(notifications)), slog.Int("total", total))

		response.Success(w, http.StatusOK, models.PaginatedResponse{Data: notifications, Total: total, Page: page, PageSize: pageSize})
	}
}
