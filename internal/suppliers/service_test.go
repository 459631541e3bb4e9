package suppliers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/inventoryhub/inventory-backend/pkg/db/models"
	pkgerrors "github.com/inventoryhub/inventory-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubSupplierRepo struct {
	supplier *models.Supplier
	list     []models.Supplier
	findErr  error

	saved    bool
	deleted  bool
	appended []uuid.UUID
}

func (s *stubSupplierRepo) Create(_ context.Context, supplier *models.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	s.supplier = supplier
	return nil
}

func (s *stubSupplierRepo) FindByID(context.Context, uuid.UUID) (*models.Supplier, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.supplier, nil
}

func (s *stubSupplierRepo) FindByIDWithItems(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	return s.FindByID(ctx, id)
}

func (s *stubSupplierRepo) List(context.Context) ([]models.Supplier, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.list, nil
}

func (s *stubSupplierRepo) Save(context.Context, *models.Supplier) error {
	s.saved = true
	return nil
}

func (s *stubSupplierRepo) Delete(context.Context, *models.Supplier) error {
	s.deleted = true
	return nil
}

func (s *stubSupplierRepo) AppendItems(_ context.Context, _ *models.Supplier, ids []uuid.UUID) error {
	s.appended = append(s.appended, ids...)
	return nil
}

type stubItemChecker struct {
	found int64
	echo  bool
}

func (s stubItemChecker) CountByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	if s.echo {
		return int64(len(ids)), nil
	}
	return s.found, nil
}

func itemFixture(name string) *models.Item {
	return &models.Item{
		ID:          uuid.New(),
		Name:        name,
		Description: "test item",
		Price:       decimal.RequireFromString("9.99"),
		CreatedAt:   time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func baseSupplier() *models.Supplier {
	email := "sales@boltco.test"
	return &models.Supplier{
		ID:          uuid.New(),
		Name:        "BoltCo",
		PhoneNumber: "555-0101",
		Email:       &email,
	}
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestNewServiceRequiresCollaborators(t *testing.T) {
	if _, err := NewService(nil, stubItemChecker{}); err == nil {
		t.Fatal("expected error creating service without repo")
	}
	if _, err := NewService(&stubSupplierRepo{}, nil); err == nil {
		t.Fatal("expected error creating service without item checker")
	}
}

func TestServiceListIsShallow(t *testing.T) {
	supplier := baseSupplier()
	repo := &stubSupplierRepo{list: []models.Supplier{*supplier}}
	svc, _ := NewService(repo, stubItemChecker{echo: true})

	dtos, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list suppliers: %v", err)
	}
	if len(dtos) != 1 {
		t.Fatalf("expected 1 supplier, got %d", len(dtos))
	}
	if dtos[0].Email == nil || *dtos[0].Email != "sales@boltco.test" {
		t.Fatalf("unexpected email %v", dtos[0].Email)
	}
}

func TestServiceGetIncludesNestedItems(t *testing.T) {
	supplier := baseSupplier()
	supplier.Items = []models.Item{*itemFixture("hex bolts")}
	repo := &stubSupplierRepo{supplier: supplier}
	svc, _ := NewService(repo, stubItemChecker{echo: true})

	detail, err := svc.Get(context.Background(), supplier.ID)
	if err != nil {
		t.Fatalf("get supplier: %v", err)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("expected 1 nested item, got %d", len(detail.Items))
	}
	if detail.Items[0].Price != "9.99" {
		t.Fatalf("expected serialized price, got %q", detail.Items[0].Price)
	}
}

func TestServiceGetNotFound(t *testing.T) {
	repo := &stubSupplierRepo{findErr: gorm.ErrRecordNotFound}
	svc, _ := NewService(repo, stubItemChecker{echo: true})

	_, err := svc.Get(context.Background(), uuid.New())
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestServiceCreateWithoutItems(t *testing.T) {
	repo := &stubSupplierRepo{}
	svc, _ := NewService(repo, stubItemChecker{echo: true})

	detail, err := svc.Create(context.Background(), CreateSupplierInput{
		Name:        "NutWorks",
		PhoneNumber: "555-0102",
	})
	if err != nil {
		t.Fatalf("create supplier: %v", err)
	}
	if detail.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if len(repo.appended) != 0 {
		t.Fatal("no items should be attached")
	}
}

func TestServiceCreateSplitsDelimitedItemString(t *testing.T) {
	repo := &stubSupplierRepo{}
	svc, _ := NewService(repo, stubItemChecker{echo: true})

	a, b := uuid.New(), uuid.New()
	_, err := svc.Create(context.Background(), CreateSupplierInput{
		Name:        "NutWorks",
		PhoneNumber: "555-0102",
		Items:       a.String() + ", " + b.String(),
	})
	if err != nil {
		t.Fatalf("create supplier: %v", err)
	}
	if len(repo.appended) != 2 {
		t.Fatalf("expected both delimited ids attached, got %v", repo.appended)
	}
}

func TestServiceCreateStillCreatesOnInvalidItems(t *testing.T) {
	repo := &stubSupplierRepo{}
	svc, _ := NewService(repo, stubItemChecker{found: 0})

	_, err := svc.Create(context.Background(), CreateSupplierInput{
		Name:        "NutWorks",
		PhoneNumber: "555-0102",
		Items:       []any{uuid.NewString()},
	})
	assertCode(t, err, pkgerrors.CodeValidation)
	if repo.supplier == nil {
		t.Fatal("supplier must be created before item validation runs")
	}
	if len(repo.appended) != 0 {
		t.Fatal("invalid item ids must not be attached")
	}
}

func TestServiceUpdateMergesFieldsAndRelation(t *testing.T) {
	supplier := baseSupplier()
	repo := &stubSupplierRepo{supplier: supplier}
	svc, _ := NewService(repo, stubItemChecker{echo: true})

	itemID := uuid.New()
	_, err := svc.Update(context.Background(), supplier.ID, map[string]any{
		"phone_number": "555-0199",
		"items":        []any{itemID.String()},
	})
	if err != nil {
		t.Fatalf("update supplier: %v", err)
	}
	if supplier.PhoneNumber != "555-0199" {
		t.Fatalf("phone not merged: %q", supplier.PhoneNumber)
	}
	if supplier.Name != "BoltCo" {
		t.Fatalf("omitted field must keep prior value, got %q", supplier.Name)
	}
	if len(repo.appended) != 1 || repo.appended[0] != itemID {
		t.Fatalf("expected item attached, got %v", repo.appended)
	}
	if !repo.saved {
		t.Fatal("expected supplier to be saved")
	}
}

func TestServiceUpdateClearsEmailOnNull(t *testing.T) {
	supplier := baseSupplier()
	repo := &stubSupplierRepo{supplier: supplier}
	svc, _ := NewService(repo, stubItemChecker{echo: true})

	_, err := svc.Update(context.Background(), supplier.ID, map[string]any{"email": nil})
	if err != nil {
		t.Fatalf("update supplier: %v", err)
	}
	if supplier.Email != nil {
		t.Fatalf("expected email cleared, got %v", *supplier.Email)
	}
}

func TestServiceUpdateUnknownKeysOnly(t *testing.T) {
	supplier := baseSupplier()
	repo := &stubSupplierRepo{supplier: supplier}
	svc, _ := NewService(repo, stubItemChecker{echo: true})

	_, err := svc.Update(context.Background(), supplier.ID, map[string]any{"warehouse": "north"})
	assertCode(t, err, pkgerrors.CodeValidation)
	if !strings.Contains(err.Error(), "nothing to update") {
		t.Fatalf("unexpected message %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	supplier := baseSupplier()
	repo := &stubSupplierRepo{supplier: supplier}
	svc, _ := NewService(repo, stubItemChecker{echo: true})

	result, err := svc.Delete(context.Background(), supplier.ID)
	if err != nil {
		t.Fatalf("delete supplier: %v", err)
	}
	if !repo.deleted {
		t.Fatal("expected repo delete")
	}
	if !strings.Contains(result.Message, "BoltCo - 555-0101") {
		t.Fatalf("expected string form in message, got %q", result.Message)
	}
}

func TestServiceDeleteNotFound(t *testing.T) {
	repo := &stubSupplierRepo{findErr: gorm.ErrRecordNotFound}
	svc, _ := NewService(repo, stubItemChecker{echo: true})

	_, err := svc.Delete(context.Background(), uuid.New())
	assertCode(t, err, pkgerrors.CodeNotFound)
}
