package order

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"StoreAPI/internal/catalog"
	"StoreAPI/pkg/kit"
)

const basePath = "/api/orders"

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes(r chi.Router) {
	r.Get(basePath, s.list)
	r.Post(basePath, s.create)
	r.Get(basePath+"/"+catalog.IDPattern, kit.WithIntParam("id", s.get))
}

func Location(id int) string {
	return fmt.Sprintf("%s/%d", basePath, id)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	orders, err := s.Store.ListOrders(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err, Order{})
		return
	}
	kit.WriteJSON(w, http.StatusOK, orders)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request, id int) {
	o, err := s.Store.GetOrder(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, err, Order{ID: id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, o)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var in Order
	if err := kit.DecodeJSON(w, r, &in); err != nil {
		s.Log.Warn("create order: bad json", zap.Error(err))
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	o, err := s.Store.CreateOrder(r.Context(), in)
	if err != nil {
		s.writeStoreError(w, r, err, in)
		return
	}
	kit.WriteCreated(w, Location(o.ID), o)
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error, o Order) {
	switch {
	case errors.Is(err, ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": o.ID})
	case errors.Is(err, ErrProductMissing):
		s.Log.Info("order references missing product", zap.Int("id", o.ID), zap.Int("product_id", o.ProductID))
		kit.WriteError(w, r, http.StatusBadRequest, fmt.Sprintf("product %d does not exist", o.ProductID), nil)
	case errors.Is(err, ErrExists):
		s.Log.Info("order id conflict", zap.Int("id", o.ID))
		kit.WriteError(w, r, http.StatusConflict, fmt.Sprintf("order with id %d already exists", o.ID), nil)
	default:
		s.Log.Error("order store failed", zap.Error(err), zap.Int("id", o.ID))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
