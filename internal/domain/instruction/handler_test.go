package instruction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	api := r.Group("/api/v1")
	RegisterPublicRoutes(api, h)
	RegisterProtectedRoutes(api, h)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateGetDelete(t *testing.T) {
	svc, _, dessertID, ingredientID := setup(t)
	r := newRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/v1/instructions", InstructionDTO{
		DessertID: dessertID, IngredientID: ingredientID, QtyOfIngredient: "100 ml",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			CreatedID int64 `json:"created_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/v1/instructions/%d", created.Data.CreatedID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dessert_name":"Tiramisu"`)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/v1/instructions/%d", created.Data.CreatedID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/v1/instructions/%d", created.Data.CreatedID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateMissingIngredient(t *testing.T) {
	svc, _, dessertID, _ := setup(t)
	r := newRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/v1/instructions", InstructionDTO{DessertID: dessertID, IngredientID: 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Ingredient was not found.")
}

func TestHandler_ValidationAndBadInput(t *testing.T) {
	svc, _, _, _ := setup(t)
	r := newRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/v1/instructions", InstructionDTO{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/instructions/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateIDMismatch(t *testing.T) {
	svc, _, dessertID, ingredientID := setup(t)
	r := newRouter(svc)

	created, err := svc.Add(context.Background(), InstructionDTO{DessertID: dessertID, IngredientID: ingredientID})
	require.NoError(t, err)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/v1/instructions/%d", created.CreatedID), InstructionDTO{
		ID: created.CreatedID + 1, DessertID: dessertID, IngredientID: ingredientID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/v1/instructions/%d", created.CreatedID), InstructionDTO{
		ID: created.CreatedID, DessertID: dessertID, IngredientID: ingredientID, QtyOfIngredient: "a pinch",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
