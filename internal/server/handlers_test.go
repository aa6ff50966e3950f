package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rogerio-castellano/inventory-console/internal/models"
	"github.com/rogerio-castellano/inventory-console/internal/repo"
)

var productRepository = repo.NewInMemoryProductRepository()

func init() {
	SetProductRepo(productRepository)
}

func createProduct(r http.Handler, payload ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(productRepository.Clear)
	r := NewRouter()

	w := createProduct(r, ProductRequest{Name: "Laptop", Price: 1500.0, Quantity: 1, Category: "Electronics"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp models.Product
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.ID == 0 {
		t.Error("expected a server-assigned id")
	}
	if resp.Name != "Laptop" {
		t.Errorf("expected name 'Laptop', got %v", resp.Name)
	}
	if resp.CreatedAt == "" {
		t.Error("expected a server-assigned created_at")
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(productRepository.Clear)
	r := NewRouter()

	tests := []struct {
		name           string
		payload        ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and negative price",
			payload:        ProductRequest{Name: "", Price: -1.0},
			expectedErrors: []string{"Name", "Price"},
		},
		{
			name:           "Empty name only",
			payload:        ProductRequest{Name: "", Price: 100.0},
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Negative quantity",
			payload:        ProductRequest{Name: "Keyboard", Price: 50.0, Quantity: -1},
			expectedErrors: []string{"Quantity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if len(resp) != len(tt.expectedErrors) {
				t.Errorf("expected %d errors, got %d", len(tt.expectedErrors), len(resp))
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_ZeroValues(t *testing.T) {
	t.Cleanup(productRepository.Clear)
	r := NewRouter()

	w := createProduct(r, ProductRequest{Name: "Sticker", Price: 0, Quantity: 0})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for zero price and quantity, got %d", w.Code)
	}
}

func TestGetProductsHandler(t *testing.T) {
	t.Cleanup(productRepository.Clear)
	r := NewRouter()

	createProduct(r, ProductRequest{Name: "Laptop", Price: 1500.0, Quantity: 1})
	createProduct(r, ProductRequest{Name: "Mouse", Price: 25.0, Quantity: 10})

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(productRepository.Clear)
	r := NewRouter()

	w := createProduct(r, ProductRequest{Name: "Desk", Price: 400.0, Quantity: 5})
	var created models.Product
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	payload := ProductRequest{Name: "Standing Desk", Price: 550.0, Quantity: 4, Category: "Furniture"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/products/%d", created.ID), bytes.NewReader(body))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var updated models.Product
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.Name != "Standing Desk" {
		t.Errorf("expected updated name, got %v", updated.Name)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Errorf("expected created_at to be preserved, got %v", updated.CreatedAt)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	t.Cleanup(productRepository.Clear)
	r := NewRouter()

	payload := ProductRequest{Name: "Ghost", Price: 1.0}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/products/999", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(productRepository.Clear)
	r := NewRouter()

	w := createProduct(r, ProductRequest{Name: "Mouse", Price: 25.0, Quantity: 10})
	var created models.Product
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}
