package suppliers

import (
	"context"

	"github.com/inventoryhub/inventory-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository provides supplier persistence over GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, supplier *models.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

// FindByID loads the supplier without associations.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// FindByIDWithItems loads the supplier with its items preloaded.
func (r *Repository) FindByIDWithItems(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).Preload("Items").First(&supplier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// List returns every supplier without related data.
func (r *Repository) List(ctx context.Context) ([]models.Supplier, error) {
	var records []models.Supplier
	if err := r.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save persists scalar field changes on an existing supplier.
func (r *Repository) Save(ctx context.Context, supplier *models.Supplier) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(supplier).Error
}

// Delete removes the supplier together with its join rows. Items themselves
// are left untouched.
func (r *Repository) Delete(ctx context.Context, supplier *models.Supplier) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(supplier).Error
}

// CountByIDs reports how many of the given supplier ids exist.
func (r *Repository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Supplier{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

// AppendItems attaches the given item ids to the supplier. Existing
// associations are kept.
func (r *Repository) AppendItems(ctx context.Context, supplier *models.Supplier, ids []uuid.UUID) error {
	refs := make([]models.Item, len(ids))
	for i, id := range ids {
		refs[i] = models.Item{ID: id}
	}
	return r.db.WithContext(ctx).Model(supplier).Association("Items").Append(&refs)
}
