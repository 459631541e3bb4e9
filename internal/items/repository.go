package items

import (
	"context"

	"github.com/inventoryhub/inventory-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository provides item persistence over GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the item; the id is assigned by the model hook.
func (r *Repository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID loads the item without associations.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDWithSuppliers loads the item with its suppliers preloaded.
func (r *Repository) FindByIDWithSuppliers(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).Preload("Suppliers").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns every item without related data.
func (r *Repository) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save persists scalar field changes on an existing item.
func (r *Repository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

// Delete removes the item together with its join rows. Suppliers themselves
// are left untouched.
func (r *Repository) Delete(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(item).Error
}

// CountByIDs reports how many of the given item ids exist. Callers compare the
// count against len(ids) for an exact-match existence check.
func (r *Repository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

// AppendSuppliers attaches the given supplier ids to the item. Existing
// associations are kept; duplicates are ignored by the join table key.
func (r *Repository) AppendSuppliers(ctx context.Context, item *models.Item, ids []uuid.UUID) error {
	refs := make([]models.Supplier, len(ids))
	for i, id := range ids {
		refs[i] = models.Supplier{ID: id}
	}
	return r.db.WithContext(ctx).Model(item).Association("Suppliers").Append(&refs)
}
