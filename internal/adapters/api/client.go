package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/harnstore/harn-cli/internal/domain"
	"github.com/harnstore/harn-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client fetches the product and account collections from the harn backend.
// The API shape is a fixed external contract: GET /products and
// GET /accounts/week, each returning {"data": [...]}.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.CatalogSource = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var envelope struct {
		Data []productDTO `json:"data"`
	}
	if err := c.getJSON(ctx, "/products", &envelope); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(envelope.Data))
	for _, dto := range envelope.Data {
		products = append(products, dto.toDomain())
	}

	return products, nil
}

func (c *Client) FetchWeeklyAccounts(ctx context.Context) ([]domain.Account, error) {
	var envelope struct {
		Data []accountDTO `json:"data"`
	}
	if err := c.getJSON(ctx, "/accounts/week", &envelope); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(envelope.Data))
	for _, dto := range envelope.Data {
		accounts = append(accounts, dto.toDomain())
	}

	return accounts, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "harn/catalog")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("GET %s: status %d: %s", path, response.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	return nil
}
