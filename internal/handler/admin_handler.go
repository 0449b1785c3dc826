package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Priya1724/RealEstateFinal/internal/apperr"
	"github.com/Priya1724/RealEstateFinal/internal/model"
	"github.com/Priya1724/RealEstateFinal/internal/service"
)

const defaultUserPageSize = 20

// AdminHandler exposes the moderation queue and user administration. The
// whole group sits behind JWTAuth plus RequireAdmin.
type AdminHandler struct {
	Admin *service.AdminService
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties/pending", h.GetPending)
	rg.POST("/properties/:id/approve", h.Approve)
	rg.POST("/properties/:id/reject", h.Reject)
	rg.GET("/users", h.GetUsers)
	rg.PUT("/users/:id/role", h.UpdateUserRole)
	rg.DELETE("/users/:id", h.DeleteUser)
}

// GET /api/admin/properties/pending
func (h *AdminHandler) GetPending(c *gin.Context) {
	page, size := pageParams(c, defaultPropertyPageSize)
	result, err := h.Admin.GetPendingProperties(c.Request.Context(), page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/admin/properties/:id/approve
func (h *AdminHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperr.BadRequest("invalid property id"))
		return
	}

	property, err := h.Admin.ApproveProperty(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// POST /api/admin/properties/:id/reject
func (h *AdminHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperr.BadRequest("invalid property id"))
		return
	}

	property, err := h.Admin.RejectProperty(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// GET /api/admin/users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	page, size := pageParams(c, defaultUserPageSize)
	result, err := h.Admin.GetUsers(c.Request.Context(), page, size)
	if err != nil {
		writeError(c, err)
		return
	}

	profiles := make([]userProfileDTO, 0, len(result.Items))
	for i := range result.Items {
		profiles = append(profiles, toUserProfile(&result.Items[i]))
	}
	c.JSON(http.StatusOK, model.Page[userProfileDTO]{
		Items:      profiles,
		PageNumber: result.PageNumber,
		PageSize:   result.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
		IsLast:     result.IsLast,
	})
}

type updateRoleRequestDTO struct {
	Role model.Role `json:"role" binding:"required,oneof=CUSTOMER ADMIN"`
}

// PUT /api/admin/users/:id/role
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperr.BadRequest("invalid user id"))
		return
	}

	var req updateRoleRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindingError(err))
		return
	}

	user, err := h.Admin.UpdateUserRole(c.Request.Context(), id, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserProfile(user))
}

// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperr.BadRequest("invalid user id"))
		return
	}

	if err := h.Admin.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
