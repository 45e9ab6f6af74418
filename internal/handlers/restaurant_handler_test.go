package handlers_test

import (
	"net/http"
	"testing"

	"github.com/bglit/lunch-backend/internal/dto"
)

func createRestaurant(t *testing.T, env *testEnv, token, name string) dto.RestaurantResponse {
	t.Helper()

	resp := env.request(t, http.MethodPost, "/api/restaurants", token, dto.CreateRestaurantRequest{Name: name})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create restaurant status = %d, want 201", resp.StatusCode)
	}

	var data dto.RestaurantResponse
	decodeData(t, decodeEnvelope(t, resp), &data)
	return data
}

func TestCreateRestaurantEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "alice")

	data := createRestaurant(t, env, token, "Doubles King")
	if data.Name != "Doubles King" {
		t.Errorf("name = %q", data.Name)
	}
	if data.Emoji == "" {
		t.Error("default emoji missing")
	}
	if data.Votes != 0 {
		t.Errorf("new restaurant votes = %d, want 0", data.Votes)
	}

	resp := env.request(t, http.MethodPost, "/api/restaurants", token, dto.CreateRestaurantRequest{Name: "   "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank name status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestListRestaurantsIsPublic(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "alice")
	createRestaurant(t, env, token, "Doubles King")

	resp := env.request(t, http.MethodGet, "/api/restaurants", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.StatusCode)
	}

	var list []dto.RestaurantResponse
	decodeData(t, decodeEnvelope(t, resp), &list)
	if len(list) != 1 {
		t.Errorf("list length = %d, want 1", len(list))
	}
}

func TestVoteEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "alice")
	doubles := createRestaurant(t, env, token, "Doubles King")
	roti := createRestaurant(t, env, token, "Roti Shop")

	votePath := "/api/restaurants/" + doubles.ID.String() + "/vote"

	resp := env.request(t, http.MethodPost, votePath, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("vote status = %d, want 200", resp.StatusCode)
	}
	body := decodeEnvelope(t, resp)
	if body.Message != "Vote added" {
		t.Errorf("message = %q, want Vote added", body.Message)
	}
	var data dto.RestaurantResponse
	decodeData(t, body, &data)
	if data.Votes != 1 {
		t.Errorf("votes = %d, want 1", data.Votes)
	}

	// Voting elsewhere on the same day is rejected.
	resp = env.request(t, http.MethodPost, "/api/restaurants/"+roti.ID.String()+"/vote", token, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("second vote status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	// Voting again toggles the vote off.
	resp = env.request(t, http.MethodPost, votePath, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unvote status = %d, want 200", resp.StatusCode)
	}
	body = decodeEnvelope(t, resp)
	if body.Message != "Vote removed" {
		t.Errorf("message = %q, want Vote removed", body.Message)
	}
	decodeData(t, body, &data)
	if data.Votes != 0 {
		t.Errorf("votes after unvote = %d, want 0", data.Votes)
	}
}

func TestVoteUnknownRestaurantEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "alice")

	resp := env.request(t, http.MethodPost, "/api/restaurants/00000000-0000-0000-0000-000000000001/vote", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRestaurantOwnershipEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	_, aliceToken := env.createUser(t, "alice")
	_, bobToken := env.createUser(t, "bob")
	doubles := createRestaurant(t, env, aliceToken, "Doubles King")

	path := "/api/restaurants/" + doubles.ID.String()

	resp := env.request(t, http.MethodPut, path, bobToken, dto.UpdateRestaurantRequest{Name: "Hijacked"})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("update by non-owner status = %d, want 403", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.request(t, http.MethodDelete, path, bobToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("delete by non-owner status = %d, want 403", resp.StatusCode)
	}
	resp.Body.Close()

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
