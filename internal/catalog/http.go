package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"StoreAPI/pkg/kit"
)

const (
	basePath = "/api/products"

	// IDPattern makes non-integer ids a routing miss rather than a handler error.
	IDPattern = "{id:-?[0-9]+}"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes(r chi.Router) {
	item := basePath + "/" + IDPattern
	r.Get(basePath, s.list)
	r.Post(basePath, s.create)
	r.Get(item, kit.WithIntParam("id", s.get))
	r.Put(item, kit.WithIntParam("id", s.update))
	r.Delete(item, kit.WithIntParam("id", s.remove))
}

func Location(id int) string {
	return fmt.Sprintf("%s/%d", basePath, id)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.ListProducts(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err, 0)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request, id int) {
	p, err := s.Store.GetProduct(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, err, id)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var in Product
	if err := kit.DecodeJSON(w, r, &in); err != nil {
		s.Log.Warn("create product: bad json", zap.Error(err))
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	p, err := s.Store.CreateProduct(r.Context(), in)
	if err != nil {
		s.writeStoreError(w, r, err, in.ID)
		return
	}
	kit.WriteCreated(w, Location(p.ID), p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request, id int) {
	var in Product
	if err := kit.DecodeJSON(w, r, &in); err != nil {
		s.Log.Warn("update product: bad json", zap.Error(err), zap.Int("id", id))
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	p, err := s.Store.UpdateProduct(r.Context(), id, Update{Name: in.Name, Price: in.Price})
	if err != nil {
		s.writeStoreError(w, r, err, id)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request, id int) {
	if err := s.Store.DeleteProduct(r.Context(), id); err != nil {
		s.writeStoreError(w, r, err, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error, id int) {
	switch {
	case errors.Is(err, ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
	case errors.Is(err, ErrExists):
		s.Log.Info("product id conflict", zap.Int("id", id))
		kit.WriteError(w, r, http.StatusConflict, fmt.Sprintf("product with id %d already exists", id), nil)
	default:
		s.Log.Error("product store failed", zap.Error(err), zap.Int("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
