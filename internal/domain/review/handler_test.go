package review

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
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

func doUpload(r http.Handler, path, filename string, data []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", filename)
	_, _ = part.Write(data)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPut, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateAndListForDessert(t *testing.T) {
	f := setup(t)
	r := newRouter(f.svc)

	w := doJSON(r, http.MethodPost, "/api/v1/reviews", ReviewDTO{Number: "5", Content: "Rich", User: "bob", DessertID: f.dessertID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/v1/desserts/%d/reviews", f.dessertID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"review_content":"Rich"`)
	assert.Contains(t, w.Body.String(), `"dessert_name":"Cheesecake"`)
}

func TestHandler_UploadImage(t *testing.T) {
	f := setup(t)
	r := newRouter(f.svc)
	id := f.addReview(t)
	path := fmt.Sprintf("/api/v1/reviews/%d/image", id)

	w := doUpload(r, path, "cake.png", []byte("png-bytes"))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err := f.svc.Find(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("/images/reviews/%d.png", id), got.ImagePath)

	w = doUpload(r, path, "cake.bmp", []byte("bmp"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), ".bmp is not a valid file extension")

	w = doUpload(r, path, "empty.png", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "No File Content")

	w = doUpload(r, "/api/v1/reviews/999/image", "cake.png", []byte("png"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UploadWithoutFile(t *testing.T) {
	f := setup(t)
	r := newRouter(f.svc)
	id := f.addReview(t)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/v1/reviews/%d/image", id), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
