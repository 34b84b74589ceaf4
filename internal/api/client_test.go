package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriskampolis/tably/app/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

// fakeBackend builds a chi-routed stand-in for the restaurant backend.
func fakeBackend(t *testing.T) (*httptest.Server, *chi.Mux) {
	t.Helper()
	r := chi.NewRouter()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestRequestsCarryBearerToken(t *testing.T) {
	srv, r := fakeBackend(t)

	var gotAuth string
	r.Get("/api/menu-items/", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, []models.MenuItem{})
	})

	client := New(srv.URL, staticToken("tok-123"))
	_, err := client.ListMenuItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoBearerHeaderWhenLoggedOut(t *testing.T) {
	srv, r := fakeBackend(t)

	var gotAuth string
	r.Get("/api/menu-items/", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, []models.MenuItem{})
	})

	client := New(srv.URL, staticToken(""))
	_, err := client.ListMenuItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestLogin(t *testing.T) {
	srv, r := fakeBackend(t)

	r.Post("/api/token/", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		if body["username"] == "maria" && body["password"] == "secret" {
			writeJSON(w, http.StatusOK, TokenPair{Access: "a", Refresh: "r"})
			return
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "invalid credentials"})
	})

	client := New(srv.URL, nil)

	pair, err := client.Login(context.Background(), "maria", "secret")
	require.NoError(t, err)
	assert.Equal(t, TokenPair{Access: "a", Refresh: "r"}, pair)

	_, err = client.Login(context.Background(), "maria", "wrong")
	assert.True(t, IsUnauthorized(err))
}

func TestRefreshToken(t *testing.T) {
	srv, r := fakeBackend(t)

	r.Post("/api/token/refresh/", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "old-refresh", body["refresh"])
		writeJSON(w, http.StatusOK, map[string]string{"access": "new-access"})
	})

	client := New(srv.URL, nil)
	access, err := client.RefreshToken(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", access)
}

func TestOrdersForTableSendsQuery(t *testing.T) {
	srv, r := fakeBackend(t)

	r.Get("/api/orders/", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "3", req.URL.Query().Get("table"))
		writeJSON(w, http.StatusOK, []models.Order{
			{ID: 42, TableNumber: 3, Status: models.OrderInProgress},
		})
	})

	client := New(srv.URL, staticToken("tok"))
	orders, err := client.OrdersForTable(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 42, orders[0].ID)
}

func TestSubmitOrderPayload(t *testing.T) {
	srv, r := fakeBackend(t)

	r.Post("/api/orders/submit/", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			TableNumber int          `json:"table_number"`
			Items       []OrderEntry `json:"items"`
		}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, 3, body.TableNumber)
		assert.Equal(t, []OrderEntry{{MenuItem: 7, Quantity: 2}}, body.Items)
		writeJSON(w, http.StatusCreated, models.Order{ID: 77, TableNumber: 3, Status: models.OrderInProgress})
	})

	client := New(srv.URL, staticToken("tok"))
	order, err := client.SubmitOrder(context.Background(), 3, []OrderEntry{{MenuItem: 7, Quantity: 2}})
	require.NoError(t, err)
	assert.Equal(t, 77, order.ID)
	assert.Equal(t, models.OrderInProgress, order.Status)
}

func TestCompleteOrderHitsPath(t *testing.T) {
	srv, r := fakeBackend(t)

	var hit bool
	r.Patch("/api/orders/{id}/complete/", func(w http.ResponseWriter, req *http.Request) {
		hit = true
		assert.Equal(t, "42", chi.URLParam(req, "id"))
		writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
	})

	client := New(srv.URL, staticToken("tok"))
	require.NoError(t, client.CompleteOrder(context.Background(), 42))
	assert.True(t, hit)
}

func TestUpdateMenuItemOmitsUnsetFields(t *testing.T) {
	srv, r := fakeBackend(t)

	r.Patch("/api/menu-items/{id}/", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, map[string]any{"price": "10.00"}, body)
		writeJSON(w, http.StatusOK, models.MenuItem{ID: 7, Name: "Moussaka", Price: "10.00"})
	})

	client := New(srv.URL, staticToken("tok"))
	price := "10.00"
	item, err := client.UpdateMenuItem(context.Background(), 7, MenuItemPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "10.00", item.Price)
}

func TestReplaceMenuItemSendsFullResource(t *testing.T) {
	srv, r := fakeBackend(t)

	r.Put("/api/menu-items/{id}/", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "Moussaka", body["name"])
		assert.Equal(t, "MAIN", body["category"])
		writeJSON(w, http.StatusOK, models.MenuItem{ID: 7, Name: "Moussaka", Price: "9.50", Category: models.CategoryMain})
	})

	client := New(srv.URL, staticToken("tok"))
	item, err := client.ReplaceMenuItem(context.Background(), 7, MenuItemInput{
		Name: "Moussaka", Price: "9.50", Availability: 5, Category: models.CategoryMain,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, item.ID)
}

func TestReplaceUserSendsFullResource(t *testing.T) {
	srv, r := fakeBackend(t)

	r.Put("/api/users/{id}/", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "maria", body["username"])
		writeJSON(w, http.StatusOK, models.User{ID: 5, Username: "maria", Role: models.RoleEmployee})
	})

	client := New(srv.URL, staticToken("tok"))
	user, err := client.ReplaceUser(context.Background(), 5, UserInput{
		Username: "maria", Email: "maria@example.com", Role: models.RoleEmployee, Password: "pw123456",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)
}

func TestBackendErrorsSurfaceStatusAndBody(t *testing.T) {
	srv, r := fakeBackend(t)

	r.Delete("/api/users/{id}/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"detail": "managers only"})
	})

	client := New(srv.URL, staticToken("tok"))
	err := client.DeleteUser(context.Background(), 5)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Contains(t, apiErr.Body, "managers only")
	assert.False(t, IsUnauthorized(err))
}

func TestMe(t *testing.T) {
	srv, r := fakeBackend(t)

	r.Get("/api/users/me/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, models.Profile{Username: "maria", Role: models.RoleManager})
	})

	client := New(srv.URL, staticToken("tok"))
	profile, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Profile{Username: "maria", Role: models.RoleManager}, profile)
}
