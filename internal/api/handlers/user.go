package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/auth"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	service "github.com/aaravmahajanofficial/apparel-storefront/internal/services"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const avatarField = "avatar"

type UserHandler struct {
	userService    service.UserService
	validator      *validator.Validate
	maxAvatarBytes int64
}

func NewUserHandler(userService service.UserService, maxAvatarBytes int64) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New(), maxAvatarBytes: maxAvatarBytes}
}

// Register godoc
//	@Summary		Register a new customer
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Account details"
//	@Success		201		{object}	models.User				"Created user"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid input or weak password"
//	@Failure		409		{object}	response.ErrorResponse	"Email already registered"
//	@Router			/auth/register [post]
func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("User registration failed", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		logger.Info("User registered", slog.String("userId", user.ID.String()))
		response.Success(w, http.StatusCreated, user)
	}
}

// Login godoc
//	@Summary		Sign in
//	@Description	Returns a bearer token and sets it as an HttpOnly cookie. Accounts with MFA enabled must send mfaCode.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Credentials"
//	@Success		200			{object}	models.LoginResponse	"Signed in"
//	@Failure		401			{object}	models.LoginResponse	"Invalid credentials or MFA code required"
//	@Failure		403			{object}	response.ErrorResponse	"Account disabled"
//	@Failure		429			{object}	models.LoginResponse	"Too many attempts"
//	@Router			/auth/login [post]
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		if !resp.Success {
			if resp.MFARequired {
				if req.MFACode == "" {
					response.LocalizedError(w, r, errors.MFARequiredError("MFA code required").WithKey(i18n.KeyMFARequired))
				} else {
					response.LocalizedError(w, r, errors.MFAInvalidError("Invalid MFA code").WithKey(i18n.KeyMFAInvalid))
				}
				return
			}

			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
				w.Header().Set("Retry-After", strconv.Itoa(resp.RetryAfter))
			}

			response.WriteJson(w, status, resp)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     auth.TokenCookie,
			Value:    resp.Token,
			Path:     "/",
			MaxAge:   resp.ExpiresIn,
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})

		logger.Info("User logged in")
		response.WriteJson(w, http.StatusOK, resp)
	}
}

// Profile godoc
//	@Summary		Get the signed-in user's profile
//	@Tags			Account
//	@Produce		json
//	@Success		200	{object}	models.User				"Profile"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/account/profile [get]
func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("User not found", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// UpdateProfile godoc
//	@Summary		Update profile fields
//	@Description	Only the fields present in the body change.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		models.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	models.User					"Updated profile"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid input"
//	@Security		BearerAuth
//	@Router			/account/profile [patch]
func (h *UserHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.UpdateProfileRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.UpdateProfile(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to update profile", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeyProfileUpdated, user)
	}
}

// UploadAvatar godoc
//	@Summary		Upload a profile picture
//	@Description	Multipart upload in the "avatar" field. JPEG, PNG and WebP are accepted. The CSRF token must be sent in the X-CSRF-Token header.
//	@Tags			Account
//	@Accept			mpfd
//	@Produce		json
//	@Param			avatar	formData	file					true	"Image"
//	@Success		200		{object}	models.User				"Updated profile"
//	@Failure		400		{object}	response.ErrorResponse	"Missing, oversized or unsupported image"
//	@Security		BearerAuth
//	@Router			/account/profile/avatar [post]
func (h *UserHandler) UploadAvatar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.maxAvatarBytes)

		if err := r.ParseMultipartForm(h.maxAvatarBytes); err != nil {
			logger.Warn("Invalid avatar upload", slog.Any("error", err))
			response.LocalizedError(w, r, errors.ValidationError("Avatar upload is invalid or too large").WithKey(i18n.KeyAvatarInvalid).WithError(err))
			return
		}

		file, _, err := r.FormFile(avatarField)
		if err != nil {
			response.LocalizedError(w, r, errors.ValidationError("Avatar file is missing").WithKey(i18n.KeyAvatarInvalid).WithError(err))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			response.LocalizedError(w, r, errors.BadRequestError("Failed to read avatar").WithKey(i18n.KeyAvatarInvalid).WithError(err))
			return
		}

		user, err := h.userService.UploadAvatar(r.Context(), claims.UserID, data)
		if err != nil {
			logger.Warn("Failed to upload avatar", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeyAvatarUpdated, user)
	}
}

// ChangePassword godoc
//	@Summary		Change password
//	@Description	Signs out every other session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			passwords	body		models.ChangePasswordRequest	true	"Current and new password"
//	@Success		200			{object}	response.APIResponse			"Password changed"
//	@Failure		400			{object}	response.ErrorResponse			"Incorrect, mismatched, reused or weak password"
//	@Security		BearerAuth
//	@Router			/auth/password [put]
func (h *UserHandler) ChangePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.ChangePasswordRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.userService.ChangePassword(r.Context(), claims.UserID, &req); err != nil {
			logger.Warn("Password change rejected", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeyPasswordChanged, nil)
	}
}

// AdminListUsers godoc
//	@Summary		List users
//	@Tags			Admin
//	@Produce		json
//	@Param			page		query		int											false	"Page number (default: 1)"
//	@Param			pageSize	query		int											false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.User}	"Users"
//	@Failure		403			{object}	response.ErrorResponse						"Admin role required"
//	@Security		BearerAuth
//	@Router			/admin/users [get]
func (h *UserHandler) AdminListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)

		users, total, err := h.userService.ListUsers(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list users", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{Data: users, Total: total, Page: page, PageSize: pageSize})
	}
}

// AdminUpdateUser godoc
//	@Summary		Change a user's role or active flag
//	@Description	Either change signs the user out everywhere.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"User ID"	Format(uuid)
//	@Param			user	body		models.AdminUpdateUserRequest	true	"Changes"
//	@Success		200		{object}	models.User						"Updated user"
//	@Failure		404		{object}	response.ErrorResponse			"User not found"
//	@Security		BearerAuth
//	@Router			/admin/users/{id} [patch]
func (h *UserHandler) AdminUpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.LocalizedError(w, r, err)
			return
		}

		var req models.AdminUpdateUserRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.AdminUpdateUser(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to update user", slog.String("userId", id.String()), slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeySaved, user)
	}
}
