package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	kafkax "github.com/ariefcatur/go-warung-orders.git/internal/kafka"
	"github.com/ariefcatur/go-warung-orders.git/internal/pesanan"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type OrdersHandler struct {
	Repo     *pesanan.Repo
	Producer *kafkax.Producer
	Service  string
	Log      *zap.Logger
}

type createOrderReq struct {
	TotalAmount int64               `json:"total_amount"`
	Menus       []pesanan.LineInput `json:"menus"`
}

type createOrderResp struct {
	ID          string `json:"id"`
	TotalAmount int64  `json:"total_amount"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Get("/api/pesanans", h.list)
	r.Post("/api/pesanans", h.create)
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	orders, err := h.Repo.List(ctx)
	if err != nil {
		h.Log.Error("list pesanans failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Menus) == 0 || req.TotalAmount <= 0 {
		writeError(w, http.StatusBadRequest, "menus and total_amount are required")
		return
	}
	for _, m := range req.Menus {
		if m.ProductID == "" {
			writeError(w, http.StatusBadRequest, "every menu needs a product_id")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orderID, err := h.Repo.Create(ctx, req.TotalAmount, req.Menus)
	if err != nil {
		h.Log.Error("create pesanan failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.publishCreated(orderID, req)

	writeJSON(w, http.StatusCreated, createOrderResp{ID: orderID, TotalAmount: req.TotalAmount})
}

// publishCreated is best-effort: order-nya sudah committed, event gagal tidak
// membatalkan apa pun.
func (h *OrdersHandler) publishCreated(orderID string, req createOrderReq) {
	lines := make([]pesanan.LineRef, 0, len(req.Menus))
	for _, m := range req.Menus {
		qty := m.Quantity
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, pesanan.LineRef{ProductID: m.ProductID, Quantity: qty})
	}

	ev := pesanan.Envelope{
		EventID:       uuid.NewString(),
		EventType:     pesanan.EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		CorrelationID: orderID,
		Payload: kafkax.MustMarshal(pesanan.OrderCreatedPayload{
			OrderID:     orderID,
			TotalAmount: req.TotalAmount,
			Lines:       lines,
		}),
	}
	h.Producer.Publish(pesanan.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(pesanan.EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
