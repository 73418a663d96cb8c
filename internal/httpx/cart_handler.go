package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ariefcatur/go-warung-orders.git/internal/cart"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	Repo *cart.Repo
	Log  *zap.Logger
}

type createItemReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note"`
}

type updateItemReq struct {
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Get("/api/keranjangs", h.list)
	r.Post("/api/keranjangs", h.create)
	r.Put("/api/keranjangs/{id}", h.update)
	r.Delete("/api/keranjangs/{id}", h.delete)
}

func (h *CartHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	items, err := h.Repo.List(ctx)
	if err != nil {
		h.Log.Error("list keranjangs failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CartHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.Repo.Create(ctx, req.ProductID, req.Quantity, req.Note)
	if err != nil {
		h.Log.Error("create keranjang failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *CartHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.Repo.Update(ctx, chi.URLParam(r, "id"), req.Quantity, req.Note)
	if errors.Is(err, cart.ErrNotFound) {
		writeError(w, http.StatusNotFound, "cart item not found")
		return
	}
	if err != nil {
		h.Log.Error("update keranjang failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CartHandler) delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := h.Repo.Delete(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, cart.ErrNotFound) {
		writeError(w, http.StatusNotFound, "cart item not found")
		return
	}
	if err != nil {
		h.Log.Error("delete keranjang failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "item deleted successfully"})
}
