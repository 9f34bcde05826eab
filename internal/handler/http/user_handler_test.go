package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/ireporter/api/internal/handler/http"
	mocks "github.com/ireporter/api/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func setupUserRouter(h *handler.UserHandler) *gin.Engine {
	r := gin.New()
	// Stand-in for the auth middleware.
	r.Use(func(c *gin.Context) {
		c.Set("userID", "mock-user-id")
	})
	r.GET("/me", h.GetMe)
	r.PATCH("/updateme", h.UpdateMe)
	r.DELETE("/deleteme", h.DeleteMe)
	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.PATCH("/users/:id/promote", h.PromoteUser)
	r.PATCH("/users/:id/demote", h.DemoteUser)
	r.DELETE("/users/:id", h.DeleteUser)
	return r
}

func TestGetMe(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"test@example.com"`)
	// Credential fields must not leak.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUpdateMe(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "PATCH", "/updateme", map[string]interface{}{"firstname": "Ada"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ada", mockUsecase.LastUpdates["firstname"])
}

func TestUpdateMe_RejectsPasswordField(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailUpdate = true
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "PATCH", "/updateme", map[string]interface{}{"password": "sneaky"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "/updatepassword")
}

func TestDeleteMe(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/deleteme", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListUsers(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users?page=1&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"results":1`)
}

func TestPromoteUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/users/mock-user-id/promote", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
	assert.Contains(t, w.Body.String(), `"isAdmin":true`)
}

func TestDemoteUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/users/mock-user-id/demote", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestDeleteUser_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailDelete = true
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/users/ghost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"fail"`)
}
