package handler

import (
	"net/http"
	"time"

	"github.com/sntxs/sge-api-main/internal/core/domain"
)

type createRequestRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateRequestRequest struct {
	Quantity int `json:"quantity"`
}

type sectorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type requestResponse struct {
	ID           string         `json:"id"`
	UserName     string         `json:"user_name"`
	ProductName  string         `json:"product_name"`
	Quantity     int            `json:"quantity"`
	CreatedAt    time.Time      `json:"created_at"`
	CategoryID   string         `json:"category_id"`
	CategoryName string         `json:"category_name"`
	UserSector   sectorResponse `json:"user_sector"`
	Delivered    bool           `json:"delivered"`
	DeliveredAt  *time.Time     `json:"delivered_at,omitempty"`
}

func toRequestResponse(d domain.RequestDetail) requestResponse {
	resp := requestResponse{
		ID:           d.ID,
		UserName:     d.UserName,
		ProductName:  d.ProductName,
		Quantity:     d.Quantity,
		CreatedAt:    d.CreatedAt,
		CategoryID:   d.CategoryID,
		CategoryName: d.CategoryName,
		UserSector: sectorResponse{
			ID:        d.UserSector.ID,
			Name:      d.UserSector.Name,
			CreatedAt: d.UserSector.CreatedAt,
		},
		Delivered: d.Delivery.IsDelivered(),
	}
	if at, ok := d.Delivery.At(); ok {
		resp.DeliveredAt = &at
	}
	return resp
}

func (h *HTTPHandler) createRequest(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := h.requests.Create(r.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID})
}

func (h *HTTPHandler) listRequests(w http.ResponseWriter, r *http.Request) {
	items, err := h.requests.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]requestResponse, 0, len(items))
	for _, d := range items {
		resp = append(resp, toRequestResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) getRequest(w http.ResponseWriter, r *http.Request) {
	d, err := h.requests.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponse(*d))
}

func (h *HTTPHandler) updateRequest(w http.ResponseWriter, r *http.Request) {
	var req updateRequestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.requests.UpdateQuantity(r.Context(), r.PathValue("id"), req.Quantity); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) deleteRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.requests.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) markDelivered(w http.ResponseWriter, r *http.Request) {
	if err := h.requests.MarkDelivered(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) cancelDelivery(w http.ResponseWriter, r *http.Request) {
	if err := h.requests.CancelDelivery(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
