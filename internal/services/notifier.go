package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/apparel-storefront/pkg/sendgrid"
	"github.com/google/uuid"
)

// SecurityNotifier tells a user about changes to their credentials. Delivery
// is best effort: failures are logged and never fail the calling operation.
type SecurityNotifier interface {
	PasswordChanged(ctx context.Context, user *models.User)
	MFAChanged(ctx context.Context, user *models.User, enabled bool)
}

type emailNotifier struct {
	email sendgrid.EmailService
	repo  repository.NotificationRepository
}

// NewSecurityNotifier returns a notifier that mails through email and records
// every notice in repo. A nil email service records notices as skipped.
func NewSecurityNotifier(email sendgrid.EmailService, repo repository.NotificationRepository) SecurityNotifier {
	return &emailNotifier{email: email, repo: repo}
}

func (n *emailNotifier) PasswordChanged(ctx context.Context, user *models.User) {
	n.send(ctx, user, i18n.KeyEmailPasswordSubject, i18n.KeyEmailPasswordBody)
}

func (n *emailNotifier) MFAChanged(ctx context.Context, user *models.User, enabled bool) {
	body := i18n.KeyEmailMFADisabledBody
	if enabled {
		body = i18n.KeyEmailMFAEnabledBody
	}

	n.send(ctx, user, i18n.KeyEmailMFASubject, body)
}

func (n *emailNotifier) send(ctx context.Context, user *models.User, subjectKey, bodyKey string) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("userId", user.ID.String()), slog.String("template", bodyKey))

	lang := userLang(user)

	notice := &models.Notification{
		ID:        uuid.New(),
		UserID:    user.ID,
		Template:  bodyKey,
		Lang:      string(lang),
		Recipient: user.Email,
		Subject:   i18n.T(lang, subjectKey),
		Status:    models.NotificationPending,
	}

	if n.email == nil {
		logger.Debug("Email delivery disabled, skipping security notice")
		notice.Status = models.NotificationSkipped
		n.record(ctx, logger, notice)
		return
	}

	recorded := n.record(ctx, logger, notice)

	msg := &sendgrid.Message{
		To:      user.Email,
		ToName:  user.Name,
		Subject: notice.Subject,
		Text:    i18n.T(lang, bodyKey),
		Dir:     lang.Dir(),
	}

	status, errMsg := models.NotificationSent, ""

	if err := n.email.Send(ctx, msg); err != nil {
		logger.Error("Failed to send security notice", slog.Any("error", err))
		status, errMsg = models.NotificationFailed, err.Error()
	} else {
		logger.Info("Security notice sent")
	}

	if !recorded {
		return
	}

	if err := n.repo.UpdateNotificationStatus(ctx, notice.ID, status, errMsg); err != nil {
		logger.Warn("Failed to update security notice status", slog.Any("error", err))
	}
}

// record reports whether the notice row was written.
func (n *emailNotifier) record(ctx context.Context, logger *slog.Logger, notice *models.Notification) bool {

	if err := n.repo.CreateNotification(ctx, notice); err != nil {
		logger.Warn("Failed to record security notice", slog.Any("error", err))
		return false
	}

	return true
}

func userLang(user *models.User) i18n.Lang {
	if i18n.Lang(user.PreferredLanguage) == i18n.Arabic {
		return i18n.Arabic
	}

	return i18n.English
}
