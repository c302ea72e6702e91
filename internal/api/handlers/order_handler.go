package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/update_order_status"
)

// OrderHandler serves checkout and order history. Reads go straight to
// the read model; only checkout and the status transition carry logic.
type OrderHandler struct {
	readModel contracts.OrderReadModel
	place     *place_order.Interactor
	status    *update_order_status.Interactor
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(
	readModel contracts.OrderReadModel,
	place *place_order.Interactor,
	status *update_order_status.Interactor,
) *OrderHandler {
	return &OrderHandler{
		readModel: readModel,
		place:     place,
		status:    status,
	}
}

type orderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type orderCreateRequest struct {
	UserID        string               `json:"userId"`
	Items         []orderItemRequest   `json:"items"`
	AddressInfo   contracts.AddressDTO `json:"addressInfo"`
	PaymentMethod string               `json:"paymentMethod"`
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req orderCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	items := make([]place_order.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, place_order.ItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	orderID, err := h.place.Execute(r.Context(), &place_order.Request{
		UserID: req.UserID,
		Items:  items,
		Address: domain.AddressInfo{
			AddressID: req.AddressInfo.AddressID,
			Address:   req.AddressInfo.Address,
			City:      req.AddressInfo.City,
			Pincode:   req.AddressInfo.Pincode,
			Phone:     req.AddressInfo.Phone,
			Notes:     req.AddressInfo.Notes,
		},
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": orderID})
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.readModel.GetOrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// ListByUser handles GET /orders/user/{userId}.
func (h *OrderHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	orders, err := h.readModel.ListOrdersByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// List handles GET /orders (admin view).
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.readModel.ListOrders(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /orders/{id}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	err := h.status.Execute(r.Context(), &update_order_status.Request{
		OrderID: chi.URLParam(r, "id"),
		Status:  req.Status,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}
