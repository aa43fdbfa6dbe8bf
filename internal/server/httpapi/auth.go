package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jobboardhq/backoffice/internal/client/models"
	"github.com/jobboardhq/backoffice/internal/server/auth"
	"github.com/jobboardhq/backoffice/internal/server/store"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse flattens the profile next to the token, matching the shape
// the console decodes.
type loginResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"`
	models.User
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Role, h.secret, h.tokenTTL)
	if err != nil {
		h.log.Error(r.Context(), "signing token", "error", err)
		writeError(w, http.StatusInternalServerError, "signing token failed")
		return
	}

	h.log.Info(r.Context(), "login", "email", user.Email, "role", user.Role)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Type: "Bearer", User: *user})
}

type registerRequest struct {
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	FullName    string      `json:"fullName"`
	Role        models.Role `json:"role"`
	PhoneNumber string      `json:"phoneNumber"`
	CompanyName string      `json:"companyName"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		writeError(w, http.StatusBadRequest, "email, password and fullName are required")
		return
	}
	if !req.Role.Valid() {
		writeError(w, http.StatusBadRequest, "unknown role")
		return
	}

	user, err := h.store.CreateUser(&models.User{
		Email:       req.Email,
		FullName:    req.FullName,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
		CompanyName: req.CompanyName,
	}, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		h.log.Error(r.Context(), "creating account", "error", err)
		writeError(w, http.StatusInternalServerError, "creating account failed")
		return
	}

	h.log.Info(r.Context(), "account registered", "email", user.Email, "role", user.Role)
	writeJSON(w, http.StatusCreated, user)
}

// logout is accepted from anyone. Tokens are stateless, so there is nothing
// to revoke; the endpoint exists so the console's sign-out notification has
// somewhere to land.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct{}{})
}
