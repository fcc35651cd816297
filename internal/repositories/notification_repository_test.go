package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotificationRepoTest(t *testing.T) (repository.NotificationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewNotificationRepo(db), mock
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateNotification", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupNotificationRepoTest(t)
			notification := &models.Notification{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				Template:  "email.password.subject",
				Lang:      "ar",
				Recipient: "noor@example.com",
				Subject:   "Password changed",
				Status:    models.NotificationPending,
			}

			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notifications")).
				WithArgs(notification.ID, notification.UserID, notification.Template, notification.Lang,
					notification.Recipient, notification.Subject, notification.Status, "").
				WillReturnResult(sqlmock.NewResult(1, 1))

			// Act
			err := repo.CreateNotification(ctx, notification)

			// Assert
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupNotificationRepoTest(t)
			dbErr := errors.New("insert failed")

			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notifications")).WillReturnError(dbErr)

			// Act
			err := repo.CreateNotification(ctx, &models.Notification{ID: uuid.New()})

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateNotificationStatus", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupNotificationRepoTest(t)
			id := uuid.New()

			mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET status = $1, error_message = $2")).
				WithArgs(models.NotificationFailed, "sendgrid down", id).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.UpdateNotificationStatus(ctx, id, models.NotificationFailed, "sendgrid down")

			// Assert
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			// Arrange
			repo, mock := setupNotificationRepoTest(t)
			id := uuid.New()

			mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications")).
				WithArgs(models.NotificationSent, "", id).
				WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			err := repo.UpdateNotificationStatus(ctx, id, models.NotificationSent, "")

			// Assert
			require.Error(t, err)
			assert.Contains(t, err.Error(), "notification not found")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})
}

func TestNotificationRepository_ListNotifications(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "user_id", "template", "lang", "recipient", "subject", "status", "error_message", "created_at", "updated_at"}

	t.Run("Success - Filtered By User And Status", func(t *testing.T) {
		// Arrange
		repo, mock := setupNotificationRepoTest(t)
		userID := uuid.New()
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND status = $2")).
			WithArgs(userID, models.NotificationFailed).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

		mock.ExpectQuery(regexp.QuoteMeta("FROM notifications WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4")).
			WithArgs(userID, models.NotificationFailed, 5, 5).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(id.String(), userID.String(), "email.mfa.enabled.body", "ar", "noor@example.com", "تنبيه أمني", "failed", "sendgrid down", now, now))

		// Act
		list, total, err := repo.ListNotifications(ctx, models.NotificationFilter{UserID: &userID, Status: models.NotificationFailed, Page: 2, PageSize: 5})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 11, total)
		require.Len(t, list, 1)
		assert.Equal(t, id, list[0].ID)
		assert.Equal(t, models.NotificationFailed, list[0].Status)
		assert.Equal(t, "sendgrid down", list[0].ErrorMessage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Defaults Page Size", func(t *testing.T) {
		repo, mock := setupNotificationRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notifications")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(columns))

		list, total, err := repo.ListNotifications(ctx, models.NotificationFilter{})

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NotNil(t, list)
		assert.Empty(t, list)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Count Error", func(t *testing.T) {
		repo, mock := setupNotificationRepoTest(t)
		dbErr := errors.New("connection reset")

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notifications")).WillReturnError(dbErr)

		_, _, err := repo.ListNotifications(ctx, models.NotificationFilter{})

		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
