package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Priya1724/RealEstateFinal/internal/apperr"
	"github.com/Priya1724/RealEstateFinal/internal/model"
	"github.com/Priya1724/RealEstateFinal/internal/repository"
	"github.com/Priya1724/RealEstateFinal/internal/service"
)

const defaultPropertyPageSize = 12

// PropertyHandler exposes the public listing surface and the owner-scoped
// CRUD operations.
type PropertyHandler struct {
	Properties *service.PropertyService
}

// RegisterPublicRoutes registers the routes that need no token.
func (h *PropertyHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties", h.GetApproved)
	rg.GET("/properties/search", h.Search)
	rg.GET("/properties/:id", h.GetByID)
}

// RegisterProtectedRoutes registers the routes behind the JWT middleware.
func (h *PropertyHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties/me", h.GetMine)
	rg.POST("/properties", h.Create)
	rg.PUT("/properties/:id", h.Update)
	rg.DELETE("/properties/:id", h.Delete)
}

// propertyRequestDTO is the "property" JSON part of the multipart payload.
type propertyRequestDTO struct {
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description" binding:"required"`
	Price        float64            `json:"price" binding:"required,gt=0"`
	Type         model.PropertyType `json:"type" binding:"required,oneof=SALE RENT"`
	Location     string             `json:"location" binding:"required"`
	ContactEmail string             `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string             `json:"contactPhone"`
}

func (r propertyRequestDTO) toInput() service.PropertyInput {
	return service.PropertyInput{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Type:         r.Type,
		Location:     r.Location,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
	}
}

// GET /api/properties?page=0&size=12
func (h *PropertyHandler) GetApproved(c *gin.Context) {
	page, size := pageParams(c, defaultPropertyPageSize)
	result, err := h.Properties.GetApproved(c.Request.Context(), page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/properties/search?location=&type=&minPrice=&maxPrice=&keywords=
func (h *PropertyHandler) Search(c *gin.Context) {
	criteria := repository.SearchCriteria{
		Location: c.Query("location"),
		Keywords: c.Query("keywords"),
	}

	if v := c.Query("type"); v != "" {
		t := model.PropertyType(v)
		if !model.ValidPropertyType(t) {
			writeError(c, apperr.BadRequest("invalid property type"))
			return
		}
		criteria.Type = t
	}
	if v := c.Query("minPrice"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(c, apperr.BadRequest("invalid minPrice"))
			return
		}
		criteria.MinPrice = &min
	}
	if v := c.Query("maxPrice"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(c, apperr.BadRequest("invalid maxPrice"))
			return
		}
		criteria.MaxPrice = &max
	}

	page, size := pageParams(c, defaultPropertyPageSize)
	result, err := h.Properties.Search(c.Request.Context(), criteria, page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/properties/:id
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperr.BadRequest("invalid property id"))
		return
	}

	property, err := h.Properties.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// GET /api/properties/me
func (h *PropertyHandler) GetMine(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		writeError(c, apperr.Unauthorized("missing caller identity"))
		return
	}

	page, size := pageParams(c, defaultPropertyPageSize)
	result, err := h.Properties.GetUserProperties(c.Request.Context(), callerID, page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/properties (multipart: "property" JSON part + optional "image")
func (h *PropertyHandler) Create(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		writeError(c, apperr.Unauthorized("missing caller identity"))
		return
	}

	req, image, imageName, err := bindPropertyForm(c)
	if err != nil {
		writeError(c, err)
		return
	}

	property, err := h.Properties.Create(c.Request.Context(), callerID, req.toInput(), image, imageName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// PUT /api/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		writeError(c, apperr.Unauthorized("missing caller identity"))
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperr.BadRequest("invalid property id"))
		return
	}

	req, image, imageName, err := bindPropertyForm(c)
	if err != nil {
		writeError(c, err)
		return
	}

	property, err := h.Properties.Update(c.Request.Context(), id, callerID, req.toInput(), image, imageName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		writeError(c, apperr.Unauthorized("missing caller identity"))
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperr.BadRequest("invalid property id"))
		return
	}

	if err := h.Properties.Delete(c.Request.Context(), id, callerID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindPropertyForm reads the multipart payload: the mandatory "property" JSON
// part and the optional "image" file part.
func bindPropertyForm(c *gin.Context) (propertyRequestDTO, []byte, string, error) {
	var req propertyRequestDTO

	raw := c.PostForm("property")
	if raw == "" {
		return req, nil, "", apperr.BadRequest("property payload is required")
	}
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return req, nil, "", apperr.BadRequest("invalid payload")
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.Struct(req); err != nil {
			return req, nil, "", bindingError(err)
		}
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image part; the stored reference stays as-is.
		return req, nil, "", nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return req, nil, "", apperr.BadRequest("cannot open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return req, nil, "", apperr.BadRequest("cannot read uploaded file")
	}
	return req, data, fileHeader.Filename, nil
}
