package items

import (
	"github.com/inventoryhub/inventory-backend/pkg/db/models"
	"github.com/google/uuid"
)

// CreatedAtLayout is the wire format for item timestamps.
const CreatedAtLayout = "2006-01-02 15:04:05"

// ItemDTO is the serialized item representation.
type ItemDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	CreatedAt   string    `json:"created_at"`
}

// SupplierSummary is the shallow supplier representation nested under a
// single-item read.
type SupplierSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
}

// ItemDetail combines an item with its suppliers for single-item reads.
type ItemDetail struct {
	Item      ItemDTO           `json:"item"`
	Suppliers []SupplierSummary `json:"suppliers"`
}

// MutationResult reports the outcome of a create/update/delete call.
type MutationResult struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

func toItemDTO(item *models.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.StringFixed(2),
		CreatedAt:   item.CreatedAt.Format(CreatedAtLayout),
	}
}

func toItemDetail(item *models.Item) *ItemDetail {
	suppliers := make([]SupplierSummary, 0, len(item.Suppliers))
	for _, s := range item.Suppliers {
		suppliers = append(suppliers, SupplierSummary{
			ID:          s.ID,
			Name:        s.Name,
			PhoneNumber: s.PhoneNumber,
		})
	}
	return &ItemDetail{
		Item:      toItemDTO(item),
		Suppliers: suppliers,
	}
}
