package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DamirBesirovic/tradeflow/internal/gateway"
	"github.com/DamirBesirovic/tradeflow/internal/model"
	"github.com/DamirBesirovic/tradeflow/internal/testutil"
)

func newTestOglasi(t *testing.T, handler http.Handler) *Oglasi {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gw := gateway.New(srv.URL, 5*time.Second, &testutil.MemCredentials{}, silentNotifier{}, testutil.MakeNoopLogger())
	return NewOglasi(gw, testutil.MakeNoopLogger())
}

func TestOglasi_List_DefaultsAndFilters(t *testing.T) {
	var gotQuery url.Values
	o := newTestOglasi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Oglasi", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(model.OglasPage{Items: []model.Oglas{{ID: "o1"}}, TotalCount: 1})
	}))

	page, err := o.List(context.Background(), model.OglasFilter{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "1", gotQuery.Get("page"))
	assert.Equal(t, "20", gotQuery.Get("pageSize"))
	assert.False(t, gotQuery.Has("search"))
	assert.False(t, gotQuery.Has("minPrice"))

	minPrice := 100.5
	_, err = o.List(context.Background(), model.OglasFilter{
		Page:       3,
		PageSize:   10,
		Search:     "cigla",
		Kategorija: "opeka",
		Grad:       "Novi Sad",
		MinPrice:   &minPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "3", gotQuery.Get("page"))
	assert.Equal(t, "10", gotQuery.Get("pageSize"))
	assert.Equal(t, "cigla", gotQuery.Get("search"))
	assert.Equal(t, "opeka", gotQuery.Get("kategorija"))
	assert.Equal(t, "Novi Sad", gotQuery.Get("grad"))
	assert.Equal(t, "100.5", gotQuery.Get("minPrice"))
	assert.False(t, gotQuery.Has("maxPrice"))
}

func TestOglasi_Create_SendsBackendCasing(t *testing.T) {
	var gotBody map[string]any
	o := newTestOglasi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))

	err := o.Create(context.Background(), model.CreateOglas{
		Naslov:       "Cigla blok",
		Cena:         25,
		ImageURLs:    []string{"https://i.ibb.co/x.png"},
		KategorijaID: "k1",
		GradID:       "g1",
	})
	require.NoError(t, err)

	// The backend DTO casing is load-bearing.
	assert.Contains(t, gotBody, "ImageUrls")
	assert.Contains(t, gotBody, "kategorija_Id")
	assert.Contains(t, gotBody, "grad_Id")
}

func TestOglasi_MyAds(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	o := newTestOglasi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(model.OglasPage{})
	}))

	_, err := o.MyAds(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "/api/Oglasi/my-ads", gotPath)
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "5", gotQuery.Get("pageSize"))
}

func TestOglasi_Get_Delete(t *testing.T) {
	var gotMethod, gotPath string
	o := newTestOglasi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(model.Oglas{ID: "o1"})
	}))

	oglas, err := o.Get(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", oglas.ID)
	assert.Equal(t, "/api/Oglasi/o1", gotPath)

	require.NoError(t, o.Delete(context.Background(), "o1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}
