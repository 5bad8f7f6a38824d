package dessert

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

func TestHandler_CRUD(t *testing.T) {
	svc, _ := newService(t, nil)
	r := newRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/v1/desserts", DessertDTO{Name: "Tiramisu", Description: "Coffee-flavored", SpecificTag: "Italian"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Success bool `json:"success"`
		Data    struct {
			Status    string `json:"status"`
			CreatedID int64  `json:"created_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "Created", created.Data.Status)
	id := created.Data.CreatedID

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/v1/desserts/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Tiramisu"`)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/v1/desserts/%d", id), DessertDTO{ID: id, Name: "Tiramisu", Description: "Layered"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/desserts", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"description":"Layered"`)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/v1/desserts/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/v1/desserts/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Validation(t *testing.T) {
	svc, _ := newService(t, nil)
	r := newRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/v1/desserts", DessertDTO{Description: "No name"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/desserts", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UpdateRejectsMismatchedID(t *testing.T) {
	svc, _ := newService(t, nil)
	r := newRouter(svc)

	created, err := svc.Add(context.Background(), DessertDTO{Name: "Flan", Description: "Custard"})
	require.NoError(t, err)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/v1/desserts/%d", created.CreatedID), DessertDTO{ID: created.CreatedID + 1, Name: "Flan", Description: "Custard"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ID_MISMATCH")
}

func TestHandler_LinkUnlink(t *testing.T) {
	svc, db := newService(t, nil)
	r := newRouter(svc)

	created, err := svc.Add(context.Background(), DessertDTO{Name: "Tiramisu", Description: "Coffee"})
	require.NoError(t, err)
	ingredientID := addIngredient(t, db, "Ladyfingers")

	path := fmt.Sprintf("/api/v1/desserts/%d/ingredients/%d", created.CreatedID, ingredientID)
	w := doJSON(r, http.MethodPost, path, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/v1/ingredients/%d/desserts", ingredientID), nil)
	assert.Contains(t, w.Body.String(), `"name":"Tiramisu"`)

	w = doJSON(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/v1/desserts/%d/ingredients/999", created.CreatedID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Ingredient was not found.")
}
