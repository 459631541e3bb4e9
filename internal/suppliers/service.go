package suppliers

import (
	"context"
	"fmt"

	"github.com/inventoryhub/inventory-backend/internal/patch"
	"github.com/inventoryhub/inventory-backend/pkg/db"
	"github.com/inventoryhub/inventory-backend/pkg/db/models"
	pkgerrors "github.com/inventoryhub/inventory-backend/pkg/errors"
	"github.com/google/uuid"
)

// Service exposes supplier CRUD operations.
type Service interface {
	List(ctx context.Context) ([]SupplierDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*SupplierDetail, error)
	Create(ctx context.Context, input CreateSupplierInput) (*SupplierDetail, error)
	Update(ctx context.Context, id uuid.UUID, data map[string]any) (*SupplierDetail, error)
	Delete(ctx context.Context, id uuid.UUID) (*MutationResult, error)
}

// CreateSupplierInput holds the payload to create a supplier. Items carries
// the raw payload value: either a list of item ids or a single ", "-delimited
// string.
type CreateSupplierInput struct {
	Name        string
	PhoneNumber string
	Email       *string
	Items       any
}

type supplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	FindByIDWithItems(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
	Save(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, supplier *models.Supplier) error
	AppendItems(ctx context.Context, supplier *models.Supplier, ids []uuid.UUID) error
}

type itemChecker interface {
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type service struct {
	repo  supplierRepository
	items itemChecker
}

// NewService builds a supplier service with the provided collaborators.
func NewService(repo supplierRepository, items itemChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("supplier repository required")
	}
	if items == nil {
		return nil, fmt.Errorf("item checker required")
	}
	return &service{repo: repo, items: items}, nil
}

func (s *service) List(ctx context.Context) ([]SupplierDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing suppliers")
	}
	dtos := make([]SupplierDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, toSupplierDTO(&records[i]))
	}
	return dtos, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*SupplierDetail, error) {
	supplier, err := s.repo.FindByIDWithItems(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading supplier")
	}
	return toSupplierDetail(supplier), nil
}

// Create always persists the supplier first; an invalid item list fails the
// request afterwards but leaves the created supplier in place.
func (s *service) Create(ctx context.Context, input CreateSupplierInput) (*SupplierDetail, error) {
	supplier := &models.Supplier{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating supplier")
	}

	if input.Items != nil {
		ids, err := patch.ParseIDList(input.Items, "item")
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			found, err := s.items.CountByIDs(ctx, ids)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking item ids")
			}
			if found != int64(len(ids)) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "some item ids do not exist")
			}
			if err := s.repo.AppendItems(ctx, supplier, ids); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "attaching items")
			}
		}
	}

	return s.Get(ctx, supplier.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, data map[string]any) (*SupplierDetail, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading supplier")
	}

	rel := patch.Relation{
		Key:   "items",
		Label: "item",
		Count: s.items.CountByIDs,
		Attach: func(ctx context.Context, ids []uuid.UUID) error {
			return s.repo.AppendItems(ctx, supplier, ids)
		},
	}
	if err := patch.Merge(ctx, data, &supplierPatch{supplier: supplier}, rel); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving supplier")
	}

	return s.Get(ctx, supplier.ID)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (*MutationResult, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading supplier")
	}

	details := supplier.String()
	if err := s.repo.Delete(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting supplier")
	}

	return &MutationResult{
		ID:      id,
		Message: fmt.Sprintf("%s deleted", details),
	}, nil
}

// supplierPatch adapts a supplier record to the merge target contract.
type supplierPatch struct {
	supplier *models.Supplier
}

func (p *supplierPatch) Set(field string, value any) (bool, error) {
	switch field {
	case "name":
		s, err := patch.StringValue(field, value)
		if err != nil {
			return false, err
		}
		p.supplier.Name = s
	case "phone_number":
		s, err := patch.StringValue(field, value)
		if err != nil {
			return false, err
		}
		p.supplier.PhoneNumber = s
	case "email":
		s, err := patch.NullableStringValue(field, value)
		if err != nil {
			return false, err
		}
		p.supplier.Email = s
	default:
		return false, nil
	}
	return true, nil
}
