package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ireporter/api/internal/handler/http/dto"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
)

type UserHandler struct {
	UserUseCase usecasecontract.IUserUseCase
}

func NewUserHandler(uc usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{UserUseCase: uc}
}

// GetMe returns the authenticated user's own profile.
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.UserUseCase.GetUserByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(user)})
}

// UpdateMe applies a partial profile update. Password fields are rejected
// with a pointer to the dedicated route.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateMeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.UserUseCase.UpdateProfile(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(user)})
}

// DeleteMe soft-deletes the caller's account.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.UserUseCase.DeactivateUser(c.Request.Context(), c.GetString("userID")); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ListUsers is the administrative user listing.
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, err := h.UserUseCase.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		RespondError(c, err)
		return
	}
	ListHandler(c, http.StatusOK, len(users), gin.H{"users": dto.ToUserResponses(users)})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.UserUseCase.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(user)})
}

func (h *UserHandler) PromoteUser(c *gin.Context) {
	user, err := h.UserUseCase.PromoteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(user)})
}

func (h *UserHandler) DemoteUser(c *gin.Context) {
	user, err := h.UserUseCase.DemoteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(user)})
}

// DeleteUser permanently removes an account. Administrative only.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.UserUseCase.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
