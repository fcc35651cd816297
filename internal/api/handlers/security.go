package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	service "github.com/aaravmahajanofficial/apparel-storefront/internal/services"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type SecurityHandler struct {
	securityService service.SecurityService
	validator       *validator.Validate
}

func NewSecurityHandler(securityService service.SecurityService) *SecurityHandler {
	return &SecurityHandler{securityService: securityService, validator: validator.New()}
}

// CSRFToken godoc
//	@Summary		Issue a CSRF token
//	@Description	Send the token in the X-CSRF-Token header (or a csrfToken body field) on every mutating request.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	models.CSRFTokenResponse	"Token"
//	@Failure		401	{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/auth/csrf [get]
func (h *SecurityHandler) CSRFToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		token, err := h.securityService.IssueCSRFToken(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to issue CSRF token", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		response.Success(w, http.StatusOK, token)
	}
}

// MFAStatus godoc
//	@Summary		Get MFA status
//	@Tags			MFA
//	@Produce		json
//	@Success		200	{object}	models.MFAStatusResponse	"Status"
//	@Security		BearerAuth
//	@Router			/auth/mfa/status [get]
func (h *SecurityHandler) MFAStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		status, err := h.securityService.MFAStatus(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to read MFA status", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, status)
	}
}

// SetupMFA godoc
//	@Summary		Start MFA setup
//	@Description	Generates a TOTP secret. MFA stays off until the first code is verified.
//	@Tags			MFA
//	@Produce		json
//	@Success		200	{object}	models.MFASetupResponse	"Secret and otpauth URL"
//	@Failure		400	{object}	response.ErrorResponse	"MFA already enabled"
//	@Security		BearerAuth
//	@Router			/auth/mfa/setup [post]
func (h *SecurityHandler) SetupMFA() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		setup, err := h.securityService.SetupMFA(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Failed to set up MFA", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		response.Success(w, http.StatusOK, setup)
	}
}

// VerifyMFASetup godoc
//	@Summary		Finish MFA setup
//	@Tags			MFA
//	@Accept			json
//	@Produce		json
//	@Param			code	body		models.MFACodeRequest	true	"Code from the authenticator app"
//	@Success		200		{object}	response.APIResponse	"MFA enabled"
//	@Failure		400		{object}	response.ErrorResponse	"Setup not started"
//	@Failure		401		{object}	response.ErrorResponse	"Invalid code"
//	@Security		BearerAuth
//	@Router			/auth/mfa/verify-setup [post]
func (h *SecurityHandler) VerifyMFASetup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.MFACodeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.securityService.VerifyMFASetup(r.Context(), claims.UserID, req.Code); err != nil {
			logger.Warn("MFA setup verification failed", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeyMFAEnabled, models.MFAStatusResponse{Enabled: true})
	}
}

// ToggleMFA godoc
//	@Summary		Enable or disable MFA
//	@Description	Requires a current code. Disabling discards the secret.
//	@Tags			MFA
//	@Accept			json
//	@Produce		json
//	@Param			toggle	body		models.MFAToggleRequest		true	"Desired state and code"
//	@Success		200		{object}	models.MFAStatusResponse	"Status"
//	@Failure		401		{object}	response.ErrorResponse		"Invalid code"
//	@Security		BearerAuth
//	@Router			/auth/mfa/toggle [post]
func (h *SecurityHandler) ToggleMFA() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.MFAToggleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		status, err := h.securityService.ToggleMFA(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("MFA toggle failed", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		key := i18n.KeyMFADisabled
		if status.Enabled {
			key = i18n.KeyMFAEnabled
		}

		response.SuccessWithMessage(w, r, http.StatusOK, key, status)
	}
}
