package data

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzanaeem10/auto-suite-space/internal/backend"
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
)

func newBackendClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := backend.NewClient(backend.Config{BaseURL: srv.URL, APIKey: "anon"})
	require.NoError(t, err)
	return c
}

func TestCarRepo_List_SortOrders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sort      model.CarSort
		wantOrder string
	}{
		{model.CarSortNewest, "year.desc"},
		{model.CarSortPriceLow, "price.asc"},
		{model.CarSortPriceHigh, "price.desc"},
	}

	for _, tc := range tests {
		var gotOrder string
		repo := NewCarRepo(newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotOrder = r.URL.Query().Get("order")
			_, _ = w.Write([]byte(`[{"id":"1","title":"Model 3","brand":"Tesla","model":"3","price":42000,"year":2023,"mileage":1200,"fuel_type":"electric","transmission":"automatic"}]`))
		}))

		cars, err := repo.List(context.Background(), tc.sort)
		require.NoError(t, err)
		require.Len(t, cars, 1)
		assert.Equal(t, tc.wantOrder, gotOrder, "sort %q", tc.sort)
	}
}

func TestCarRepo_GetByID(t *testing.T) {
	t.Parallel()

	repo := NewCarRepo(newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cars", r.URL.Path)
		assert.Equal(t, "eq.abc", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`{"id":"abc","title":"Civic Type R","brand":"Honda","model":"Civic","price":38000,"year":2022,"mileage":15000,"fuel_type":"petrol","transmission":"manual"}`))
	}))

	car, err := repo.GetByID(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "Civic Type R", car.Title)
	assert.Equal(t, int64(38000), car.Price)
}

func TestCarRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewCarRepo(newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte(`{"code":"PGRST116","message":"no rows"}`))
	}))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestProfileRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewProfileRepo(newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotAcceptable)
	}))

	_, err := repo.GetByID(context.Background(), "u-missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileRepo_UpdateName_TrimsAndPatches(t *testing.T) {
	t.Parallel()

	repo := NewProfileRepo(newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/profiles", r.URL.Path)
		assert.Equal(t, "eq.u1", r.URL.Query().Get("id"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Ada Lovelace"}`, string(body))
		w.WriteHeader(http.StatusNoContent)
	}))

	err := repo.UpdateName(context.Background(), "u1", "  Ada Lovelace  ")
	require.NoError(t, err)
}

func TestFavoriteRepo_Exists(t *testing.T) {
	t.Parallel()

	repo := NewFavoriteRepo(newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Equal(t, "eq.u1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "eq.c1", r.URL.Query().Get("car_id"))
		w.Header().Set("Content-Range", "0-0/1")
	}))

	got, err := repo.Exists(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestFavoriteRepo_InsertAndDelete(t *testing.T) {
	t.Parallel()

	var methods []string
	repo := NewFavoriteRepo(newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		if r.Method == http.MethodPost {
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"user_id":"u1","car_id":"c1"}`, string(body))
			w.WriteHeader(http.StatusCreated)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, repo.Insert(context.Background(), "u1", "c1"))
	require.NoError(t, repo.Delete(context.Background(), "u1", "c1"))
	assert.Equal(t, []string{http.MethodPost, http.MethodDelete}, methods)
}

func TestTestDriveRepo_CountPending(t *testing.T) {
	t.Parallel()

	repo := NewTestDriveRepo(newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test_drive_requests", r.URL.Path)
		assert.Equal(t, "eq.pending", r.URL.Query().Get("status"))
		w.Header().Set("Content-Range", "0-6/7")
	}))

	n, err := repo.CountPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}
