package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/moviecatalog/internal/genre/domain"
	"github.com/allisson/moviecatalog/internal/genre/http/dto"
	"github.com/allisson/moviecatalog/internal/genre/usecase"
	"github.com/allisson/moviecatalog/internal/genre/usecase/mocks"
)

func setupTestHandler(t *testing.T) (*GenreHandler, *mocks.MockUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := mocks.NewMockUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewGenreHandler(mockUseCase, logger), mockUseCase
}

func createTestContext(method, path, body string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != "" {
		bodyReader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = params

	return c, w
}

func idParam(id string) gin.Params {
	return gin.Params{{Key: "id", Value: id}}
}

func TestGenreHandler_ListHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, uc := setupTestHandler(t)
		uc.On("List", mock.Anything).Return([]*domain.Genre{{ID: 1, Name: "Horror"}}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/genres", "", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Horror"}]`, w.Body.String())
	})

	t.Run("Error_Empty_404", func(t *testing.T) {
		handler, uc := setupTestHandler(t)
		uc.On("List", mock.Anything).Return(nil, domain.ErrNoGenres).Once()

		c, w := createTestContext(http.MethodGet, "/genres", "", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGenreHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, uc := setupTestHandler(t)
		uc.On("Get", mock.Anything, int64(2)).Return(&domain.Genre{ID: 2, Name: "Thriller"}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/genres/2", "", idParam("2"))
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.GenreResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Thriller", resp.Name)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, uc := setupTestHandler(t)
		uc.On("Get", mock.Anything, int64(3)).Return(nil, domain.ErrGenreNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/genres/3", "", idParam("3"))
		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_NonIntegerID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/genres/x", "", idParam("x"))
		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGenreHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, uc := setupTestHandler(t)
		uc.On("Create", mock.Anything, usecase.GenreInput{Name: "Musical"}).
			Return(&domain.Genre{ID: 5, Name: "Musical"}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/genres", `{"name":"Musical"}`, nil)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/genres/5", w.Header().Get("Location"))
		assert.JSONEq(t, `{"id":5,"name":"Musical"}`, w.Body.String())
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/genres", `{}`, nil)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/genres", `{"name":`, nil)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenreHandler_UpdateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, uc := setupTestHandler(t)
		uc.On("Update", mock.Anything, int64(5), usecase.GenreInput{Name: "Animated Musical"}).Return(nil).Once()

		c, w := createTestContext(http.MethodPut, "/genres/5", `{"name":"Animated Musical"}`, idParam("5"))
		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, uc := setupTestHandler(t)
		uc.On("Update", mock.Anything, int64(6), mock.Anything).Return(domain.ErrGenreNotFound).Once()

		c, w := createTestContext(http.MethodPut, "/genres/6", `{"name":"x"}`, idParam("6"))
		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPut, "/genres/6", `{"name":""}`, idParam("6"))
		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenreHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, uc := setupTestHandler(t)
		uc.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/genres/5", "", idParam("5"))
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, uc := setupTestHandler(t)
		uc.On("Delete", mock.Anything, int64(5)).Return(domain.ErrGenreNotFound).Once()

		c, w := createTestContext(http.MethodDelete, "/genres/5", "", idParam("5"))
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
