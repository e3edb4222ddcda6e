package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// CatalogHandler serves categories, menu items and tables.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Categories handles GET /api/menu-categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	channel, err := model.ParseOptionalChannel(c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	categories, err := h.facade.Categories(c.Request.Context(), channel)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		response = append(response, dto.NewCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, response)
}

func bindCategory(c *gin.Context) (model.Category, bool) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return model.Category{}, false
	}
	channel, err := model.ParseChannel(req.ServiceType)
	if err != nil {
		respondError(c, err)
		return model.Category{}, false
	}
	return model.Category{Name: req.Name, Channel: channel}, true
}

// CreateCategory handles POST /api/menu-categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	category, ok := bindCategory(c)
	if !ok {
		return
	}
	created, err := h.facade.CreateCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryResponse(*created))
}

// UpdateCategory handles PUT /api/menu-categories/:id.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	category, ok := bindCategory(c)
	if !ok {
		return
	}
	category.ID = id
	updated, err := h.facade.UpdateCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponse(*updated))
}

// DeleteCategory handles DELETE /api/menu-categories/:id.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ErrorResponse{Message: "Category deleted successfully"})
}

// MenuItems handles GET /api/menu-items.
func (h *CatalogHandler) MenuItems(c *gin.Context) {
	channel, err := model.ParseOptionalChannel(c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	filter := model.MenuItemFilter{Channel: channel}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequest(c, "invalid categoryId")
			return
		}
		filter.CategoryID = id
	}

	items, err := h.facade.MenuItems(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, it := range items {
		response = append(response, dto.NewMenuItemResponse(it))
	}
	c.JSON(http.StatusOK, response)
}

func bindMenuItem(c *gin.Context) (model.MenuItem, bool) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return model.MenuItem{}, false
	}
	channel, err := model.ParseChannel(req.ServiceType)
	if err != nil {
		respondError(c, err)
		return model.MenuItem{}, false
	}
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	return model.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Channel:     channel,
		Available:   available,
	}, true
}

// CreateMenuItem handles POST /api/menu-items.
func (h *CatalogHandler) CreateMenuItem(c *gin.Context) {
	item, ok := bindMenuItem(c)
	if !ok {
		return
	}
	created, err := h.facade.CreateMenuItem(c.Request.Context(), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewMenuItemResponse(*created))
}

// UpdateMenuItem handles PUT /api/menu-items/:id.
func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, ok := bindMenuItem(c)
	if !ok {
		return
	}
	item.ID = id
	updated, err := h.facade.UpdateMenuItem(c.Request.Context(), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMenuItemResponse(*updated))
}

// DeleteMenuItem handles DELETE /api/menu-items/:id.
func (h *CatalogHandler) DeleteMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteMenuItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ErrorResponse{Message: "Menu item deleted successfully"})
}

// Tables handles GET /api/tables.
func (h *CatalogHandler) Tables(c *gin.Context) {
	kind, err := model.ParseTableType(c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	tables, err := h.facade.Tables(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		response = append(response, dto.NewTableResponse(t))
	}
	c.JSON(http.StatusOK, response)
}

// TableByNumber handles GET /api/tables/:number.
func (h *CatalogHandler) TableByNumber(c *gin.Context) {
	table, err := h.facade.TableByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTableResponse(*table))
}

func bindTable(c *gin.Context) (model.Table, bool) {
	var req dto.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return model.Table{}, false
	}
	kind, err := model.ParseTableType(req.Type)
	if err != nil {
		respondError(c, err)
		return model.Table{}, false
	}
	status, err := model.ParseTableStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return model.Table{}, false
	}
	return model.Table{Number: req.Number, Name: req.Name, Type: kind, Status: status}, true
}

// CreateTable handles POST /api/tables.
func (h *CatalogHandler) CreateTable(c *gin.Context) {
	table, ok := bindTable(c)
	if !ok {
		return
	}
	created, err := h.facade.CreateTable(c.Request.Context(), table)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTableResponse(*created))
}

// UpdateTable handles PUT /api/tables/:id.
func (h *CatalogHandler) UpdateTable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	table, ok := bindTable(c)
	if !ok {
		return
	}
	table.ID = id
	updated, err := h.facade.UpdateTable(c.Request.Context(), table)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTableResponse(*updated))
}

// DeleteTable handles DELETE /api/tables/:id.
func (h *CatalogHandler) DeleteTable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteTable(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ErrorResponse{Message: "Table deleted successfully"})
}
