package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/smartshoper/smartshoper/internal/account"
	"github.com/smartshoper/smartshoper/pkg/web"
)

// SignUpDto carries the registration form fields.
type SignUpDto struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LogInDto carries the login form fields.
type LogInDto struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUp registers a new account and starts its session.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto SignUpDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateDto(w, r, dto) {
		return
	}

	profile, err := h.accounts.SignUp(r.Context(), dto.Name, dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, account.ErrDuplicateEmail) {
			mLogger.WarnContext(r.Context(), "Duplicate signup", "email", dto.Email)
			web.RespondError(w, mLogger, http.StatusConflict, err.Error())
			return
		}
		mLogger.ErrorContext(r.Context(), "Error registering account", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to register account")
		return
	}
	mLogger.InfoContext(r.Context(), "Account created", "ID", profile.ID)
	web.RespondJSON(w, mLogger, http.StatusCreated, profile)
}

// LogIn authenticates and starts a session.
func (h *Handler) LogIn(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto LogInDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateDto(w, r, dto) {
		return
	}

	profile, err := h.accounts.LogIn(r.Context(), dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			mLogger.WarnContext(r.Context(), "Login rejected", "email", dto.Email)
			web.RespondError(w, mLogger, http.StatusUnauthorized, err.Error())
			return
		}
		mLogger.ErrorContext(r.Context(), "Error logging in", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to log in")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, profile)
}

// LogOut ends the active session, if any.
func (h *Handler) LogOut(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	if err := h.accounts.LogOut(r.Context()); err != nil {
		mLogger.ErrorContext(r.Context(), "Error logging out", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to log out")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusNoContent, nil)
}

// Me returns the active session's account, or 204 when logged out.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	profile := h.accounts.Current(r.Context())
	if profile == nil {
		web.RespondJSON(w, mLogger, http.StatusNoContent, nil)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, profile)
}

// validateDto runs struct validation and responds with field errors on
// failure. Reports whether the dto passed.
func (h *Handler) validateDto(w http.ResponseWriter, r *http.Request, dto any) bool {
	mLogger := h.loggerWithReqID(r)
	if err := h.validate.Struct(dto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
