package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"restaurant/internal/domain/model"
)

var errUnexpectedStatus = errors.New("unexpected status")

type mealView struct {
	ID          model.MealID `json:"id"`
	Name        string       `json:"name"`
	CookingTime int64        `json:"cooking_time"`
}

// orderClient talks to the order service REST API.
type orderClient struct {
	baseURL string
	http    *http.Client
}

func newOrderClient(baseURL string, timeout time.Duration) *orderClient {
	return &orderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *orderClient) Meals(ctx context.Context) ([]mealView, error) {
	var body struct {
		Meals []mealView `json:"meals"`
	}
	if err := c.do(ctx, http.MethodGet, "/meals", http.StatusOK, &body); err != nil {
		return nil, err
	}
	return body.Meals, nil
}

func (c *orderClient) PlaceOrder(ctx context.Context, tableID model.TableID, mealID model.MealID) (*model.Order, error) {
	var body struct {
		Order model.Order `json:"order"`
	}
	path := fmt.Sprintf("/table/%d/meal/%d", tableID, mealID)
	if err := c.do(ctx, http.MethodPut, path, http.StatusOK, &body); err != nil {
		return nil, err
	}
	return &body.Order, nil
}

func (c *orderClient) TableOrders(ctx context.Context, tableID model.TableID) ([]model.Order, error) {
	var body struct {
		Orders []model.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/table/%d/orders", tableID), http.StatusOK, &body); err != nil {
		return nil, err
	}
	return body.Orders, nil
}

func (c *orderClient) DeleteOrder(ctx context.Context, id model.OrderID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/order/%d", id), http.StatusNoContent, nil)
}

func (c *orderClient) do(ctx context.Context, method, path string, wantStatus int, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s returned %d: %s", errUnexpectedStatus, method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
