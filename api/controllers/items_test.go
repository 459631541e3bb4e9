package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	itemsvc "github.com/inventoryhub/inventory-backend/internal/items"
	pkgerrors "github.com/inventoryhub/inventory-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type stubItemService struct {
	list   []itemsvc.ItemDTO
	detail *itemsvc.ItemDetail
	result *itemsvc.MutationResult
	err    error

	createInput *itemsvc.CreateItemInput
	updateData  map[string]any
	updateID    uuid.UUID
}

func (s *stubItemService) List(context.Context) ([]itemsvc.ItemDTO, error) {
	return s.list, s.err
}

func (s *stubItemService) Get(context.Context, uuid.UUID) (*itemsvc.ItemDetail, error) {
	return s.detail, s.err
}

func (s *stubItemService) Create(_ context.Context, input itemsvc.CreateItemInput) (*itemsvc.MutationResult, error) {
	s.createInput = &input
	return s.result, s.err
}

func (s *stubItemService) Update(_ context.Context, id uuid.UUID, data map[string]any) (*itemsvc.MutationResult, error) {
	s.updateID = id
	s.updateData = data
	return s.result, s.err
}

func (s *stubItemService) Delete(context.Context, uuid.UUID) (*itemsvc.MutationResult, error) {
	return s.result, s.err
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestViewItemsList(t *testing.T) {
	svc := &stubItemService{list: []itemsvc.ItemDTO{{ID: uuid.New(), Name: "bolts", Price: "1.50"}}}
	handler := ViewItems(svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view-items/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data []itemsvc.ItemDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Name != "bolts" {
		t.Fatalf("unexpected payload %v", envelope.Data)
	}
}

func TestViewItemsSingle(t *testing.T) {
	id := uuid.New()
	svc := &stubItemService{detail: &itemsvc.ItemDetail{
		Item:      itemsvc.ItemDTO{ID: id, Name: "bolts", Price: "1.50"},
		Suppliers: []itemsvc.SupplierSummary{{ID: uuid.New(), Name: "BoltCo"}},
	}}
	handler := ViewItems(svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view-items/?item_id="+id.String(), nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data itemsvc.ItemDetail `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Item.ID != id {
		t.Fatalf("expected id %s got %s", id, envelope.Data.Item.ID)
	}
	if len(envelope.Data.Suppliers) != 1 {
		t.Fatalf("expected nested suppliers, got %v", envelope.Data.Suppliers)
	}
}

func TestViewItemsBadQueryID(t *testing.T) {
	handler := ViewItems(&stubItemService{}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view-items/?item_id=not-a-uuid", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestViewItemsNotFound(t *testing.T) {
	svc := &stubItemService{err: pkgerrors.New(pkgerrors.CodeNotFound, "item not found")}
	handler := ViewItems(svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view-items/?item_id="+uuid.NewString(), nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestAddItemSuccess(t *testing.T) {
	id := uuid.New()
	supplierID := uuid.New()
	svc := &stubItemService{result: &itemsvc.MutationResult{ID: id, Message: "created"}}
	handler := AddItem(svc, nil)

	body := map[string]any{
		"name":        "bolts",
		"description": "m8 bolts",
		"price":       "1.50",
		"suppliers":   []string{supplierID.String()},
	}
	raw, _ := json.Marshal(body)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/add-item/", bytes.NewReader(raw)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if svc.createInput == nil {
		t.Fatal("expected service call")
	}
	if svc.createInput.Price.StringFixed(2) != "1.50" {
		t.Fatalf("unexpected price %s", svc.createInput.Price)
	}
	if len(svc.createInput.SupplierIDs) != 1 || svc.createInput.SupplierIDs[0] != supplierID {
		t.Fatalf("unexpected supplier ids %v", svc.createInput.SupplierIDs)
	}
}

func TestAddItemAcceptsNumericPrice(t *testing.T) {
	svc := &stubItemService{result: &itemsvc.MutationResult{ID: uuid.New()}}
	handler := AddItem(svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/add-item/",
		bytes.NewReader([]byte(`{"name":"bolts","description":"m8","price":12.5}`))))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.createInput.Price.StringFixed(2) != "12.50" {
		t.Fatalf("unexpected price %s", svc.createInput.Price)
	}
}

func TestAddItemMissingFields(t *testing.T) {
	handler := AddItem(&stubItemService{}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/add-item/",
		bytes.NewReader([]byte(`{"name":"bolts"}`))))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAddItemBadSupplierID(t *testing.T) {
	handler := AddItem(&stubItemService{}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/add-item/",
		bytes.NewReader([]byte(`{"name":"bolts","description":"m8","price":"1.50","suppliers":["nope"]}`))))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestUpdateItemPassesRawData(t *testing.T) {
	id := uuid.New()
	svc := &stubItemService{result: &itemsvc.MutationResult{ID: id, Message: "updated"}}
	handler := UpdateItem(svc, nil)

	req := httptest.NewRequest(http.MethodPut, "/update-item/"+id.String(),
		bytes.NewReader([]byte(`{"price":"2.00","suppliers":["`+uuid.NewString()+`"]}`)))
	req = withURLParam(req, "item_id", id.String())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.updateID != id {
		t.Fatalf("expected id %s got %s", id, svc.updateID)
	}
	if svc.updateData["price"] != "2.00" {
		t.Fatalf("unexpected data %v", svc.updateData)
	}
}

func TestUpdateItemBadPathID(t *testing.T) {
	handler := UpdateItem(&stubItemService{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/update-item/nope", bytes.NewReader([]byte(`{}`)))
	req = withURLParam(req, "item_id", "nope")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestDeleteItemSuccess(t *testing.T) {
	id := uuid.New()
	svc := &stubItemService{result: &itemsvc.MutationResult{ID: id, Message: "bolts at 1.50  deleted"}}
	handler := DeleteItem(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/delete-item/"+id.String(), nil)
	req = withURLParam(req, "item_id", id.String())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestDeleteItemNotFound(t *testing.T) {
	svc := &stubItemService{err: pkgerrors.New(pkgerrors.CodeNotFound, "item not found")}
	handler := DeleteItem(svc, nil)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodDelete, "/delete-item/"+id, nil)
	req = withURLParam(req, "item_id", id)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
