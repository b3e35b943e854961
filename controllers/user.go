package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pushkarbw/sample-e-com-sub003/errs"
	"github.com/pushkarbw/sample-e-com-sub003/middleware"
	"github.com/pushkarbw/sample-e-com-sub003/services"
	"github.com/pushkarbw/sample-e-com-sub003/utils"
)

// UserController handles auth-related requests.
type UserController struct {
	auth *services.AuthService
}

// NewUserController creates a new UserController.
func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

// Signup registers a new account and returns {token, user}.
func (uc *UserController) Signup(w http.ResponseWriter, r *http.Request) {
	var in services.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, errs.Validation("invalid request body"))
		return
	}

	result, err := uc.auth.Signup(r.Context(), in)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, result)
}

// Login authenticates an existing account and returns {token, user}.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds services.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.WriteError(w, errs.Validation("invalid request body"))
		return
	}

	result, err := uc.auth.Login(r.Context(), creds)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// GetProfile returns the authenticated user's account.
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.WriteError(w, errs.Unauthorized("unauthorized"))
		return
	}

	user, err := uc.auth.Profile(r.Context(), claims.UserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// Logout revokes the presented bearer token. It succeeds even without a
// token so client-side logout is never blocked.
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		uc.auth.Logout(parts[1])
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
