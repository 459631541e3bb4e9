package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/inventoryhub/inventory-backend/api/responses"
	"github.com/inventoryhub/inventory-backend/api/validators"
	itemsvc "github.com/inventoryhub/inventory-backend/internal/items"
	"github.com/inventoryhub/inventory-backend/internal/patch"
	pkgerrors "github.com/inventoryhub/inventory-backend/pkg/errors"
	"github.com/inventoryhub/inventory-backend/pkg/logger"
)

// ViewItems returns all items, or a single item with its suppliers when
// the item_id query parameter is present.
func ViewItems(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		id, ok, err := validators.QueryUUID(r, "item_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if ok {
			detail, err := svc.Get(r.Context(), id)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, detail)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// AddItem creates an item together with its supplier associations.
func AddItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		var payload createItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// UpdateItem applies a partial update to an existing item.
func UpdateItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		id, err := validators.PathUUID(r, "item_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		data, err := validators.DecodeJSONMap(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), id, data)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// DeleteItem removes an item and its supplier associations.
func DeleteItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		id, err := validators.PathUUID(r, "item_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

type createItemRequest struct {
	Name        string   `json:"name" validate:"required,max=70"`
	Description string   `json:"description" validate:"required"`
	Price       any      `json:"price" validate:"required"`
	Suppliers   []string `json:"suppliers"`
}

func (r createItemRequest) toCreateInput() (itemsvc.CreateItemInput, error) {
	price, err := patch.DecimalValue("price", r.Price)
	if err != nil {
		return itemsvc.CreateItemInput{}, err
	}

	ids := make([]uuid.UUID, 0, len(r.Suppliers))
	for _, raw := range r.Suppliers {
		id, err := uuid.Parse(raw)
		if err != nil {
			return itemsvc.CreateItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid supplier id")
		}
		ids = append(ids, id)
	}

	return itemsvc.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		SupplierIDs: ids,
	}, nil
}
