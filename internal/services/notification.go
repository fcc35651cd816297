package service

import (
	"context"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
)

// NotificationService exposes the security notice log to admins.
type NotificationService interface {
	ListNotifications(ctx context.Context, filter models.NotificationFilter) ([]*models.Notification, int, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListNotifications(ctx context.Context, filter models.NotificationFilter) ([]*models.Notification, int, error) {

	notifications, total, err := s.repo.ListNotifications(ctx, filter)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch notifications").WithError(err)
	}

	return notifications, total, nil
}
