package handlers_test

import (
	"net/http"
	"testing"

	"github.com/bglit/lunch-backend/internal/dto"
)

func floatPtr(f float64) *float64 { return &f }

func TestCreateOrderEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "alice")
	doubles := createRestaurant(t, env, token, "Doubles King")

	tests := []struct {
		name       string
		body       dto.CreateOrderRequest
		wantStatus int
	}{
		{
			name:       "valid order",
			body:       dto.CreateOrderRequest{RestaurantID: doubles.ID.String(), Item: "Doubles", Cost: floatPtr(10)},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "zero cost is allowed",
			body:       dto.CreateOrderRequest{RestaurantID: doubles.ID.String(), Item: "Sample", Cost: floatPtr(0)},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "negative cost",
			body:       dto.CreateOrderRequest{RestaurantID: doubles.ID.String(), Item: "Doubles", Cost: floatPtr(-1)},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing item",
			body:       dto.CreateOrderRequest{RestaurantID: doubles.ID.String(), Cost: floatPtr(10)},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown restaurant",
			body:       dto.CreateOrderRequest{RestaurantID: "00000000-0000-0000-0000-000000000001", Item: "Doubles", Cost: floatPtr(10)},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.request(t, http.MethodPost, "/api/orders", token, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			resp.Body.Close()
		})
	}
}

func TestListOrdersEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "alice")
	doubles := createRestaurant(t, env, token, "Doubles King")
	roti := createRestaurant(t, env, token, "Roti Shop")

	for _, id := range []string{doubles.ID.String(), roti.ID.String()} {
		resp := env.request(t, http.MethodPost, "/api/orders", token, dto.CreateOrderRequest{
			RestaurantID: id, Item: "Lunch", Cost: floatPtr(20),
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create order status = %d", resp.StatusCode)
		}
		resp.Body.Close()
	}

	// The board is public.
	resp := env.request(t, http.MethodGet, "/api/orders", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.StatusCode)
	}
	var all []dto.OrderResponse
	decodeData(t, decodeEnvelope(t, resp), &all)
	if len(all) != 2 {
		t.Errorf("orders = %d, want 2", len(all))
	}

	resp = env.request(t, http.MethodGet, "/api/orders?restaurantId="+roti.ID.String(), "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("filtered list status = %d, want 200", resp.StatusCode)
	}
	var filtered []dto.OrderResponse
	decodeData(t, decodeEnvelope(t, resp), &filtered)
	if len(filtered) != 1 || filtered[0].Restaurant.ID != roti.ID {
		t.Errorf("filtered = %+v, want only the roti order", filtered)
	}

	resp = env.request(t, http.MethodGet, "/api/orders?restaurantId=not-a-uuid", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad filter status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestOrderOwnershipEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	_, aliceToken := env.createUser(t, "alice")
	_, bobToken := env.createUser(t, "bob")
	doubles := createRestaurant(t, env, aliceToken, "Doubles King")

	resp := env.request(t, http.MethodPost, "/api/orders", aliceToken, dto.CreateOrderRequest{
		RestaurantID: doubles.ID.String(), Item: "Doubles", Cost: floatPtr(10),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create order status = %d", resp.StatusCode)
	}
	var order dto.OrderResponse
	decodeData(t, decodeEnvelope(t, resp), &order)

	path := "/api/orders/" + order.ID.String()

	resp = env.request(t, http.MethodPut, path, bobToken, dto.UpdateOrderRequest{Item: "Stolen"})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("update by non-owner status = %d, want 403", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.request(t, http.MethodDelete, path, bobToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("delete by non-owner status = %d, want 403", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.request(t, http.MethodPut, path, aliceToken, dto.UpdateOrderRequest{MoneyPaid: floatPtr(10)})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update by owner status = %d, want 200", resp.StatusCode)
	}
	var updated dto.OrderResponse
	decodeData(t, decodeEnvelope(t, resp), &updated)
	if updated.MoneyPaid == nil || *updated.MoneyPaid != 10 {
		t.Errorf("moneyPaid = %v, want 10", updated.MoneyPaid)
	}

	resp = env.request(t, http.MethodDelete, path, aliceToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("delete by owner status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, path, "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}
