package inventory

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes inventory HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", h.listItems)
		r.Post("/", h.createItem)
		r.Get("/{id}", h.getItem)
		r.Put("/{id}", h.updateItem)
		r.Delete("/{id}", h.deleteItem)
	})
}

// itemRequest is the body of the write routes. Quantity and price are
// pointers so an absent field is distinguishable from an explicit zero;
// defaulting happens here, never in the store layer.
type itemRequest struct {
	Name     string   `json:"name"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
	Category string   `json:"category"`
	Supplier string   `json:"supplier"`
}

func (req *itemRequest) valid() bool {
	return req.Name != "" && req.Quantity != nil
}

func (req *itemRequest) toItem() *Item {
	it := &Item{
		Name:     req.Name,
		Quantity: *req.Quantity,
		Category: req.Category,
		Supplier: req.Supplier,
	}
	if req.Price != nil {
		it.Price = *req.Price
	}
	return it
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		storeError(w, err)
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
		return
	}
	item, err := h.service.GetItem(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		respond(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	respond(w, http.StatusOK, item)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.valid() {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Name and quantity are required"})
		return
	}
	if err := h.service.CreateItem(r.Context(), req.toItem()); err != nil {
		storeError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Item added"})
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.valid() {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Name and quantity are required"})
		return
	}
	err = h.service.UpdateItem(r.Context(), id, req.toItem())
	if errors.Is(err, ErrNotFound) {
		respond(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Item updated"})
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
		return
	}
	err = h.service.DeleteItem(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		respond(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

// parseID reads the {id} URL parameter. A non-numeric id cannot match any
// row, so callers treat a parse failure as not found.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// storeError hides database detail from the client; it is logged server-side only.
func storeError(w http.ResponseWriter, err error) {
	log.Printf("inventory: %v", err)
	respond(w, http.StatusInternalServerError, map[string]string{"error": "Database error"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
