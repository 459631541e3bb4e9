package suppliers

import (
	"github.com/inventoryhub/inventory-backend/pkg/db/models"
	"github.com/google/uuid"
)

const createdAtLayout = "2006-01-02 15:04:05"

// SupplierDTO is the shallow supplier representation used for listings.
type SupplierDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Email       *string   `json:"email"`
}

// ItemDTO is the full item representation nested under a single supplier.
type ItemDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	CreatedAt   string    `json:"created_at"`
}

// SupplierDetail is the full supplier representation including nested items.
type SupplierDetail struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Email       *string   `json:"email"`
	Items       []ItemDTO `json:"items"`
}

// MutationResult reports the outcome of a delete call.
type MutationResult struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

func toSupplierDTO(s *models.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:          s.ID,
		Name:        s.Name,
		PhoneNumber: s.PhoneNumber,
		Email:       s.Email,
	}
}

func toSupplierDetail(s *models.Supplier) *SupplierDetail {
	items := make([]ItemDTO, 0, len(s.Items))
	for i := range s.Items {
		item := &s.Items[i]
		items = append(items, ItemDTO{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.StringFixed(2),
			CreatedAt:   item.CreatedAt.Format(createdAtLayout),
		})
	}
	return &SupplierDetail{
		ID:          s.ID,
		Name:        s.Name,
		PhoneNumber: s.PhoneNumber,
		Email:       s.Email,
		Items:       items,
	}
}
