package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-console/internal/models"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) *HTTPRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPRepository(srv.URL, 5*time.Second)
}

func TestList(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/products" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Product{
			{ID: 1, Name: "Laptop", Price: 1500, Quantity: 3, Category: "Electronics"},
			{ID: 2, Name: "Desk", Price: 400, Quantity: 5},
		})
	})

	products, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Laptop" || products[1].ID != 2 {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestList_ServerError(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
	})

	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestCreate(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/products" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in models.ProductInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("error decoding request: %v", err)
		}
		if in.Name != "Mouse" || in.Price != 25 {
			t.Errorf("unexpected input: %+v", in)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Product{
			ID:        7,
			Name:      in.Name,
			Price:     in.Price,
			Quantity:  in.Quantity,
			CreatedAt: "2025-06-01T10:00:00Z",
		})
	})

	created, err := repo.Create(context.Background(), models.ProductInput{Name: "Mouse", Price: 25, Quantity: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected server-assigned id 7, got %d", created.ID)
	}
	if created.CreatedAt == "" {
		t.Error("expected server-assigned created_at")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "product not found", http.StatusNotFound)
	})

	_, err := repo.Update(context.Background(), 99, models.ProductInput{Name: "X", Price: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	var gotPath string
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "DELETE /products/3" {
		t.Errorf("unexpected request: %s", gotPath)
	}
}

func TestDelete_Failure(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "could not delete product", http.StatusInternalServerError)
	})

	if err := repo.Delete(context.Background(), 3); err == nil {
		t.Fatal("expected an error, got nil")
	}
}
