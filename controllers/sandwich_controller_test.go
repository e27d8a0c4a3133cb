package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSandwichesEmptyArray(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/sandwiches", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateSandwichReturnsComposedView(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sandwiches", map[string]any{
		"name":        "Club",
		"description": "triple decker",
		"price":       8.5,
		"ingredients": []string{"Ham", "Cheese"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		ID          uint     `json:"id"`
		Name        string   `json:"name"`
		Price       float64  `json:"price"`
		Rating      float64  `json:"rating"`
		Ingredients []string `json:"ingredients"`
	}
	decode(t, w, &body)
	assert.NotZero(t, body.ID)
	assert.Equal(t, "Club", body.Name)
	assert.Equal(t, 8.5, body.Price)
	assert.Zero(t, body.Rating)
	assert.ElementsMatch(t, []string{"Ham", "Cheese"}, body.Ingredients)
}

func TestCreateSandwichValidation(t *testing.T) {
	r, _ := setupRouter(t)

	// missing name
	w := doJSON(t, r, http.MethodPost, "/api/sandwiches", map[string]any{"price": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing price
	w = doJSON(t, r, http.MethodPost, "/api/sandwiches", map[string]any{"name": "Club"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// price not numeric
	w = doRaw(t, r, http.MethodPost, "/api/sandwiches", `{"name":"Club","price":"cheap"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// ingredients not an array
	w = doRaw(t, r, http.MethodPost, "/api/sandwiches", `{"name":"Club","price":5,"ingredients":"Ham"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPutSandwichReplacesIngredients(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sandwiches", map[string]any{
		"name":        "BLT",
		"price":       6,
		"ingredients": []string{"Bacon", "Lettuce"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID uint `json:"id"`
	}
	decode(t, w, &created)

	w = doJSON(t, r, http.MethodPut, "/api/sandwiches/1", map[string]any{
		"name":        "BLT",
		"price":       6,
		"ingredients": []string{},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Ingredients []string `json:"ingredients"`
	}
	decode(t, w, &updated)
	require.NotNil(t, updated.Ingredients)
	assert.Empty(t, updated.Ingredients)
}

func TestGetSandwichNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/sandwiches/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSandwich(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sandwiches", map[string]any{"name": "Plain", "price": 3})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/sandwiches/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, "/api/sandwiches/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSandwichInOrderConflicts(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sandwiches", map[string]any{"name": "Cuban", "price": 8})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/customers", map[string]any{"name": "dana"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/orders", map[string]any{
		"customerId":  1,
		"items":       []map[string]any{{"sandwichId": 1, "quantity": 1, "price": 8.0}},
		"totalAmount": 8.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/sandwiches/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}
