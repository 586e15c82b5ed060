package handlers

import (
	"net/http"
	"strconv"

	"resto-pos-api/config"
	"resto-pos-api/models"

	"github.com/gin-gonic/gin"
)

// ListMenus returns active menu items with search/category/stock filters and
// page/size pagination (the customer-facing catalog)
func ListMenus(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if size <= 0 {
		size = 10
	}

	query := config.DB.Where("is_active = ?", true)

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if stockMin := c.Query("stock_min"); stockMin != "" {
		query = query.Where("stock >= ?", stockMin)
	}
	if stockMax := c.Query("stock_max"); stockMax != "" {
		query = query.Where("stock <= ?", stockMax)
	}

	var items []models.MenuItem
	if err := query.Order("created_at desc").
		Offset(page * size).
		Limit(size).
		Find(&items).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch menus")
		return
	}

	respondSuccess(c, http.StatusOK, "success get all data menu", gin.H{
		"menus": items,
		"metadata": gin.H{
			"page":  page,
			"size":  size,
			"total": len(items),
		},
	})
}

// GetMenu returns a single menu item
func GetMenu(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Menu item not found")
		return
	}
	respondSuccess(c, http.StatusOK, "success get data by id", item)
}

type MenuRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
	Price       int    `json:"price" binding:"min=0"`
	Stock       int    `json:"stock" binding:"min=0"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"is_active" binding:"required"`
}

// CreateMenu adds a catalog item (admin only)
func CreateMenu(c *gin.Context) {
	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		IsActive:    *req.IsActive,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create menu")
		return
	}

	respondSuccess(c, http.StatusCreated, "success create menu", item)
}

type MenuUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Price       *int    `json:"price" binding:"omitempty,min=0"`
	Stock       *int    `json:"stock" binding:"omitempty,min=0"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateMenu edits a catalog item, including stock replenishment (admin
// only). Live price edits never touch historical transaction lines, which
// carry their own snapshot.
func UpdateMenu(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Menu item not found")
		return
	}

	var req MenuUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update menu")
			return
		}
	}

	respondSuccess(c, http.StatusOK, "success update menu", item)
}
