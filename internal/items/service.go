package items

import (
	"context"
	"fmt"

	"github.com/inventoryhub/inventory-backend/internal/patch"
	"github.com/inventoryhub/inventory-backend/pkg/db"
	"github.com/inventoryhub/inventory-backend/pkg/db/models"
	pkgerrors "github.com/inventoryhub/inventory-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service exposes item CRUD operations.
type Service interface {
	List(ctx context.Context) ([]ItemDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ItemDetail, error)
	Create(ctx context.Context, input CreateItemInput) (*MutationResult, error)
	Update(ctx context.Context, id uuid.UUID, data map[string]any) (*MutationResult, error)
	Delete(ctx context.Context, id uuid.UUID) (*MutationResult, error)
}

// CreateItemInput holds the validated payload to create an item.
type CreateItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	SupplierIDs []uuid.UUID
}

type itemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	FindByIDWithSuppliers(ctx context.Context, id uuid.UUID) (*models.Item, error)
	List(ctx context.Context) ([]models.Item, error)
	Save(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, item *models.Item) error
	AppendSuppliers(ctx context.Context, item *models.Item, ids []uuid.UUID) error
}

type supplierChecker interface {
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type service struct {
	repo      itemRepository
	suppliers supplierChecker
}

// NewService builds an item service with the provided collaborators.
func NewService(repo itemRepository, suppliers supplierChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("item repository required")
	}
	if suppliers == nil {
		return nil, fmt.Errorf("supplier checker required")
	}
	return &service{repo: repo, suppliers: suppliers}, nil
}

func (s *service) List(ctx context.Context) ([]ItemDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing items")
	}
	dtos := make([]ItemDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, toItemDTO(&records[i]))
	}
	return dtos, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ItemDetail, error) {
	item, err := s.repo.FindByIDWithSuppliers(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading item")
	}
	return toItemDetail(item), nil
}

func (s *service) Create(ctx context.Context, input CreateItemInput) (*MutationResult, error) {
	if len(input.SupplierIDs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "please add the supplier")
	}

	found, err := s.suppliers.CountByIDs(ctx, input.SupplierIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking supplier ids")
	}
	if found != int64(len(input.SupplierIDs)) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "some supplier ids do not exist")
	}

	item := &models.Item{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating item")
	}
	if err := s.repo.AppendSuppliers(ctx, item, input.SupplierIDs); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "attaching suppliers")
	}

	return &MutationResult{
		ID:      item.ID,
		Message: fmt.Sprintf("item_id: %s, %s", item.ID, item),
	}, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, data map[string]any) (*MutationResult, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading item")
	}

	rel := patch.Relation{
		Key:   "suppliers",
		Label: "supplier",
		Count: s.suppliers.CountByIDs,
		Attach: func(ctx context.Context, ids []uuid.UUID) error {
			return s.repo.AppendSuppliers(ctx, item, ids)
		},
	}
	if err := patch.Merge(ctx, data, &itemPatch{item: item}, rel); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving item")
	}

	return &MutationResult{
		ID:      item.ID,
		Message: fmt.Sprintf("item_id: %s, %s updated", item.ID, item),
	}, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (*MutationResult, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading item")
	}

	details := item.String()
	if err := s.repo.Delete(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting item")
	}

	return &MutationResult{
		ID:      id,
		Message: fmt.Sprintf("%s deleted", details),
	}, nil
}

// itemPatch adapts an item record to the merge target contract. The id and
// creation timestamp stay immutable; unknown fields are skipped.
type itemPatch struct {
	item *models.Item
}

func (p *itemPatch) Set(field string, value any) (bool, error) {
	switch field {
	case "name":
		s, err := patch.StringValue(field, value)
		if err != nil {
			return false, err
		}
		p.item.Name = s
	case "description":
		s, err := patch.StringValue(field, value)
		if err != nil {
			return false, err
		}
		p.item.Description = s
	case "price":
		d, err := patch.DecimalValue(field, value)
		if err != nil {
			return false, err
		}
		p.item.Price = d
	default:
		return false, nil
	}
	return true, nil
}
