package handler

import (
	"net/http"
	"time"

	"github.com/sntxs/sge-api-main/internal/core/domain"
)

type createUpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
	UserID      string `json:"user_id"`
	Quantity    int    `json:"quantity"`
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  string    `json:"category_id"`
	Quantity    int       `json:"quantity"`
	UserName    string    `json:"user_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProductResponse(d domain.ProductDetail) productResponse {
	return productResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CategoryID:  d.CategoryID,
		Quantity:    d.Quantity,
		UserName:    d.UserName,
		CreatedAt:   d.CreatedAt,
	}
}

func (h *HTTPHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createUpdateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := h.products.Create(r.Context(), domain.Product{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		UserID:      req.UserID,
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID})
}

func (h *HTTPHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	items, err := h.products.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]productResponse, 0, len(items))
	for _, d := range items {
		resp = append(resp, toProductResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	d, err := h.products.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(*d))
}

func (h *HTTPHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req createUpdateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := h.products.Update(r.Context(), domain.Product{
		ID:          r.PathValue("id"),
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createUpdateNameRequest struct {
	Name string `json:"name"`
}

func (h *HTTPHandler) createSector(w http.ResponseWriter, r *http.Request) {
	var req createUpdateNameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := h.sectors.Create(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID})
}

func (h *HTTPHandler) listSectors(w http.ResponseWriter, r *http.Request) {
	items, err := h.sectors.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]sectorResponse, 0, len(items))
	for _, s := range items {
		resp = append(resp, sectorResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) getSector(w http.ResponseWriter, r *http.Request) {
	s, err := h.sectors.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sectorResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt})
}

func (h *HTTPHandler) updateSector(w http.ResponseWriter, r *http.Request) {
	var req createUpdateNameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.sectors.Update(r.Context(), r.PathValue("id"), req.Name); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) deleteSector(w http.ResponseWriter, r *http.Request) {
	if err := h.sectors.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req createUpdateNameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := h.categories.Create(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID})
}

func (h *HTTPHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]sectorResponse, 0, len(items))
	for _, c := range items {
		resp = append(resp, sectorResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.categories.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sectorResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
}

func (h *HTTPHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req createUpdateNameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.categories.Update(r.Context(), r.PathValue("id"), req.Name); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categories.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
