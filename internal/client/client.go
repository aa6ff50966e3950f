// Package client talks to the inventory CRUD API. The console never touches
// the network directly; it goes through the Repository interface so tests can
// substitute a scripted implementation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// ErrNotFound is returned when the server reports that a product does not exist.
var ErrNotFound = errors.New("product not found")

// Repository defines the remote product operations the console depends on.
type Repository interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, in models.ProductInput) (models.Product, error)
	Update(ctx context.Context, id int, in models.ProductInput) (models.Product, error)
	Delete(ctx context.Context, id int) error
}

// HTTPRepository implements Repository over the JSON REST API.
type HTTPRepository struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRepository creates a repository client for the API at baseURL.
func NewHTTPRepository(baseURL string, timeout time.Duration) *HTTPRepository {
	return &HTTPRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// List retrieves all products.
func (r *HTTPRepository) List(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/products", nil)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := r.do(req, http.StatusOK, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Create adds a new product and returns it with the server-assigned id
// and created_at.
func (r *HTTPRepository) Create(ctx context.Context, in models.ProductInput) (models.Product, error) {
	req, err := r.jsonRequest(ctx, http.MethodPost, r.baseURL+"/products", in)
	if err != nil {
		return models.Product{}, err
	}

	var created models.Product
	if err := r.do(req, http.StatusCreated, &created); err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

// Update replaces the editable fields of the product with the given id.
func (r *HTTPRepository) Update(ctx context.Context, id int, in models.ProductInput) (models.Product, error) {
	req, err := r.jsonRequest(ctx, http.MethodPut, fmt.Sprintf("%s/products/%d", r.baseURL, id), in)
	if err != nil {
		return models.Product{}, err
	}

	var updated models.Product
	if err := r.do(req, http.StatusOK, &updated); err != nil {
		return models.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes the product with the given id.
func (r *HTTPRepository) Delete(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/products/%d", r.baseURL, id), nil)
	if err != nil {
		return err
	}

	if err := r.do(req, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func (r *HTTPRepository) jsonRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (r *HTTPRepository) do(req *http.Request, wantStatus int, out any) error {
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return r.asError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (r *HTTPRepository) asError(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return fmt.Errorf("unexpected status %s: %s", resp.Status, msg)
}
