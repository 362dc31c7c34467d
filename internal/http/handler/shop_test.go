package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-service/internal/domain/shop"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopCreate_GrantsStartingQuota(t *testing.T) {
	e := echo.New()
	repo := &fakeShopRepo{}
	h := NewShopHandler(repo)

	c, rec := jsonContext(e, http.MethodPost, "/shops", `{"email":"owner@example.com","shopName":"Corner Store"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["insertedId"])
	assert.Equal(t, shop.StartingProductLimit, repo.shops["owner@example.com"].Limit)
}

func TestShopCreate_DuplicateSoftFails(t *testing.T) {
	e := echo.New()
	repo := &fakeShopRepo{shops: map[string]*shop.Shop{
		"owner@example.com": {Email: "owner@example.com", Limit: 2},
	}}
	h := NewShopHandler(repo)

	c, rec := jsonContext(e, http.MethodPost, "/shops", `{"email":"owner@example.com","shopName":"Second Store"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "You Can Create Only One Shop", body["message"])

	// The existing shop must be untouched, quota included.
	assert.Len(t, repo.shops, 1)
	assert.Equal(t, 2, repo.shops["owner@example.com"].Limit)
}

func TestShopGet_AbsentIsNull(t *testing.T) {
	e := echo.New()
	h := NewShopHandler(&fakeShopRepo{})

	req := httptest.NewRequest(http.MethodGet, "/shops/ghost@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("ghost@example.com")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}

func decrementContext(e *echo.Echo, email string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPatch, "/updateLimit/"+email, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues(email)
	return c, rec
}

func TestShopDecrementLimit(t *testing.T) {
	e := echo.New()
	repo := &fakeShopRepo{shops: map[string]*shop.Shop{
		"owner@example.com": {Email: "owner@example.com", Limit: 3},
	}}
	h := NewShopHandler(repo)

	c, rec := decrementContext(e, "owner@example.com")

	require.NoError(t, h.DecrementLimit(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body shop.Shop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Limit)
	assert.Equal(t, 2, repo.shops["owner@example.com"].Limit)
}

func TestShopDecrementLimit_Exhausted(t *testing.T) {
	e := echo.New()
	repo := &fakeShopRepo{shops: map[string]*shop.Shop{
		"owner@example.com": {Email: "owner@example.com", Limit: 0},
	}}
	h := NewShopHandler(repo)

	c, rec := decrementContext(e, "owner@example.com")

	require.NoError(t, h.DecrementLimit(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 0, repo.shops["owner@example.com"].Limit)
}

func TestShopDecrementLimit_AbsentIsNull(t *testing.T) {
	e := echo.New()
	h := NewShopHandler(&fakeShopRepo{})

	c, rec := decrementContext(e, "ghost@example.com")

	require.NoError(t, h.DecrementLimit(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}

func TestShopOverwriteLimit(t *testing.T) {
	e := echo.New()
	repo := &fakeShopRepo{shops: map[string]*shop.Shop{
		"owner@example.com": {Email: "owner@example.com", Limit: 0},
	}}
	h := NewShopHandler(repo)

	c, rec := jsonContext(e, http.MethodPatch, "/users/shop/owner@example.com", `{"newProductLimit":10}`)
	c.SetParamNames("email")
	c.SetParamValues("owner@example.com")

	require.NoError(t, h.OverwriteLimit(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["modifiedCount"])
	assert.Equal(t, 10, repo.shops["owner@example.com"].Limit)
}

func TestShopSetLimitByID(t *testing.T) {
	e := echo.New()
	existing := &shop.Shop{Email: "owner@example.com", Limit: 1}
	repo := &fakeShopRepo{shops: map[string]*shop.Shop{"owner@example.com": existing}}
	h := NewShopHandler(repo)

	c, rec := jsonContext(e, http.MethodPatch, "/shop-update-quantity/"+existing.ID.Hex(), `{"limit":7}`)
	c.SetParamNames("id")
	c.SetParamValues(existing.ID.Hex())

	require.NoError(t, h.SetLimitByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, existing.Limit)
}
