package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ariefcatur/go-warung-orders.git/internal/catalog"
	"github.com/ariefcatur/go-warung-orders.git/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	Repo  *catalog.Repo
	Redis *redis.Client
	Log   *zap.Logger
}

func (h *CatalogHandler) Register(r *chi.Mux) {
	r.Get("/api/categories", h.listCategories)
	r.Get("/api/products", h.listProducts)
	r.Get("/api/products/{id}", h.getProduct)
}

func productFilterFromQuery(q url.Values) (catalog.ProductFilter, error) {
	var f catalog.ProductFilter
	if v := q.Get("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, errors.New("categoryId must be numeric")
		}
		f.CategoryID = &id
	}
	// hanya string "true" yang menyalakan filter, sama seperti API lama
	f.ReadyOnly = q.Get("readyOnly") == "true"
	return f, nil
}

func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	cats, err := h.Repo.ListCategories(ctx)
	if err != nil {
		h.Log.Error("list categories failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	f, err := productFilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ps, err := h.Repo.List(ctx, f)
	if err != nil {
		h.Log.Error("list products failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	// cache dulu, DB tetap source of truth
	key := fmt.Sprintf(redisx.KeyProduct, id)
	if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
		writeJSON(w, http.StatusOK, json.RawMessage(s))
		return
	}

	p, err := h.Repo.Get(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		h.Log.Error("get product failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	if b, err := json.Marshal(p); err == nil {
		_ = h.Redis.Set(ctx, key, b, redisx.TTLProduct).Err()
	}
	writeJSON(w, http.StatusOK, p)
}
