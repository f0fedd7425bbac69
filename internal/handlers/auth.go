package handlers

import (
	"net/http"

	"github.com/probill/billing-api/internal/auth"
	"github.com/probill/billing-api/internal/httpx"
	"github.com/probill/billing-api/internal/validation"
)

// AuthHandler issues bearer credentials. There is no credential store:
// login is a structural placeholder that checks shape only (valid email,
// minimum password length) and signs a token for the given identity.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler { return &AuthHandler{} }

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeStrict(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var errs validation.Errors
	validation.Required(&errs, "email", req.Email, "Email is required")
	validation.Email(&errs, "email", req.Email, "Invalid email format")
	validation.Required(&errs, "password", req.Password, "Password is required")
	validation.MinLength(&errs, "password", req.Password, 6, "Password must be at least 6 characters long")
	if !errs.Empty() {
		httpx.ValidationError(w, errs)
		return
	}
	token, err := auth.IssueToken(req.Email)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Login Successful", "token": token})
}
