package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sntxs/sge-api-main/internal/core/domain"
	"github.com/sntxs/sge-api-main/internal/core/service"
)

type HTTPHandler struct {
	requests   *service.RequestService
	products   *service.ProductService
	users      *service.UserService
	sectors    *service.SectorService
	categories *service.CategoryService
	auth       *service.AuthService
	log        *zap.Logger
}

func NewHTTPHandler(
	requests *service.RequestService,
	products *service.ProductService,
	users *service.UserService,
	sectors *service.SectorService,
	categories *service.CategoryService,
	auth *service.AuthService,
	log *zap.Logger,
) *HTTPHandler {
	return &HTTPHandler{
		requests:   requests,
		products:   products,
		users:      users,
		sectors:    sectors,
		categories: categories,
		auth:       auth,
		log:        log,
	}
}

// Router wires every route. Everything except login and health sits behind
// the bearer-token middleware.
func (h *HTTPHandler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth", h.login)
	mux.HandleFunc("GET /health", h.healthCheck)

	api := http.NewServeMux()

	api.HandleFunc("POST /product-request", h.createRequest)
	api.HandleFunc("GET /product-request", h.listRequests)
	api.HandleFunc("GET /product-request/{id}", h.getRequest)
	api.HandleFunc("PUT /product-request/{id}", h.updateRequest)
	api.HandleFunc("DELETE /product-request/{id}", h.deleteRequest)
	api.HandleFunc("PUT /product-request/{id}/deliver", h.markDelivered)
	api.HandleFunc("PUT /product-request/{id}/cancel-delivery", h.cancelDelivery)

	api.HandleFunc("POST /product", h.createProduct)
	api.HandleFunc("GET /product", h.listProducts)
	api.HandleFunc("GET /product/{id}", h.getProduct)
	api.HandleFunc("PUT /product/{id}", h.updateProduct)
	api.HandleFunc("DELETE /product/{id}", h.deleteProduct)

	api.HandleFunc("POST /user", h.createUser)
	api.HandleFunc("GET /user", h.listUsers)
	api.HandleFunc("GET /user/{id}", h.getUser)
	api.HandleFunc("PUT /user/{id}", h.updateUser)
	api.HandleFunc("DELETE /user/{id}", h.deleteUser)

	api.HandleFunc("POST /sector", h.createSector)
	api.HandleFunc("GET /sector", h.listSectors)
	api.HandleFunc("GET /sector/{id}", h.getSector)
	api.HandleFunc("PUT /sector/{id}", h.updateSector)
	api.HandleFunc("DELETE /sector/{id}", h.deleteSector)

	api.HandleFunc("POST /category", h.createCategory)
	api.HandleFunc("GET /category", h.listCategories)
	api.HandleFunc("GET /category/{id}", h.getCategory)
	api.HandleFunc("PUT /category/{id}", h.updateCategory)
	api.HandleFunc("DELETE /category/{id}", h.deleteCategory)

	mux.Handle("/", h.requireAuth(api))
	return mux
}

func (h *HTTPHandler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps the domain taxonomy onto HTTP statuses. Unknown errors
// are logged and reported as opaque 500s.
func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSectorNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrAlreadyDelivered),
		errors.Is(err, domain.ErrNotDelivered),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrNameInUse),
		errors.Is(err, domain.ErrInUse):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBusy):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrNegativeQuantity),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrInvalidCpf),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrMissingField):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})

	default:
		h.log.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
