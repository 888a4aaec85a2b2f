package handler

import (
	"net/http"
	"time"

	"github.com/sntxs/sge-api-main/internal/core/domain"
	"github.com/sntxs/sge-api-main/internal/core/service"
)

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	ID        string    `json:"id"`
}

func (h *HTTPHandler) login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	session, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		ID:        session.UserID,
	})
}

type createUpdateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Cpf         string `json:"cpf"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	IsAdmin     bool   `json:"is_admin"`
	SectorID    string `json:"sector_id"`
}

func (r createUpdateUserRequest) input() service.NewUserInput {
	return service.NewUserInput{
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Cpf:         r.Cpf,
		Username:    r.Username,
		Password:    r.Password,
		IsAdmin:     r.IsAdmin,
		SectorID:    r.SectorID,
	}
}

type userResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phone_number"`
	Cpf         string         `json:"cpf"`
	Username    string         `json:"username"`
	IsAdmin     bool           `json:"is_admin"`
	Sector      sectorResponse `json:"sector"`
}

func toUserResponse(d domain.UserDetail) userResponse {
	return userResponse{
		ID:          d.ID,
		Name:        d.Name,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Cpf:         d.Cpf,
		Username:    d.Username,
		IsAdmin:     d.IsAdmin,
		Sector: sectorResponse{
			ID:        d.Sector.ID,
			Name:      d.Sector.Name,
			CreatedAt: d.Sector.CreatedAt,
		},
	}
}

func (h *HTTPHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := h.users.Create(r.Context(), req.input())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID})
}

func (h *HTTPHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	items, err := h.users.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]userResponse, 0, len(items))
	for _, d := range items {
		resp = append(resp, toUserResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) getUser(w http.ResponseWriter, r *http.Request) {
	d, err := h.users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*d))
}

func (h *HTTPHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req createUpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.users.Update(r.Context(), r.PathValue("id"), req.input()); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
