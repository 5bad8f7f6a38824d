package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dessertbook/internal/domain"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestFromService_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		res  domain.ServiceResponse
		want int
	}{
		{"created", domain.Created(7), http.StatusCreated},
		{"updated", domain.NewResponse(domain.StatusUpdated), http.StatusOK},
		{"deleted", domain.NewResponse(domain.StatusDeleted), http.StatusNoContent},
		{"not found", domain.NewResponse(domain.StatusNotFound, "Dessert was not found."), http.StatusNotFound},
		{"error", domain.NewResponse(domain.StatusError, "boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()
			FromService(c, tt.res, nil)
			c.Writer.WriteHeaderNow()
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestFromService_NotFoundCarriesMessages(t *testing.T) {
	c, w := newContext()
	FromService(c, domain.NewResponse(domain.StatusNotFound, "Dessert was not found.", "Ingredient was not found."), nil)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Dessert was not found. Ingredient was not found.", body.Error.Message)
}

func TestCustomError_AcceptsErrorsAndDetails(t *testing.T) {
	c, w := newContext()
	CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", errors.New("db down"))
	assert.Contains(t, w.Body.String(), `"message":"db down"`)

	c, w = newContext()
	CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", map[string]string{"Name": "required"})
	assert.Contains(t, w.Body.String(), `"details":{"Name":"required"}`)
}

func TestFromService_ConflictIs409(t *testing.T) {
	c, w := newContext()
	FromService(c, domain.ServiceResponse{}, domain.ErrConcurrencyConflict)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONCURRENCY_CONFLICT")
	assert.Len(t, c.Errors, 1)
}
