package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/goldworks/terminal/internal/application/catalog"
)

func TestListMaterials(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/catalog/materials", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var materials []catalogapp.MaterialResponse
	decodeData(t, w, &materials)
	require.Len(t, materials, 2)
	assert.Equal(t, "Gold 18K", materials[0].Name)
}

func TestListProductsSellableFilter(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/catalog/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var all []catalogapp.ProductResponse
	decodeData(t, w, &all)
	assert.Len(t, all, 2)

	w = f.do(t, http.MethodGet, "/api/v1/catalog/products?sellable=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sellable []catalogapp.ProductResponse
	decodeData(t, w, &sellable)
	require.Len(t, sellable, 1)
	assert.Equal(t, "Wedding Band", sellable[0].Name)
}

func TestListComponentsInvalidID(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/catalog/products/abc/components", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSystemInfo(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/system/info", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var info SystemInfoResponse
	decodeData(t, w, &info)
	assert.Equal(t, "Gold Terminal API", info.Name)
	assert.NotEmpty(t, info.GoVersion)
}
