package handlers

import (
	"net/http"

	"resto-pos-api/config"
	"resto-pos-api/models"

	"github.com/gin-gonic/gin"
)

// ListTables returns the table registry (the ordering UI's table map)
func ListTables(c *gin.Context) {
	var tables []models.Table
	query := config.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if room := c.Query("room"); room != "" {
		query = query.Where("room = ?", room)
	}
	if err := query.Order("number").Find(&tables).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch tables")
		return
	}

	respondSuccess(c, http.StatusOK, "success get all tables", gin.H{
		"count":  len(tables),
		"tables": tables,
	})
}

// GetTable returns a single table
func GetTable(c *gin.Context) {
	var table models.Table
	if err := config.DB.First(&table, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Table not found")
		return
	}
	respondSuccess(c, http.StatusOK, "success get table", table)
}

type TableRequest struct {
	Number int    `json:"number" binding:"required,min=1"`
	Room   string `json:"room"`
}

// CreateTable registers a table (admin only)
func CreateTable(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	table := models.Table{
		Number: req.Number,
		Room:   req.Room,
		Status: models.TableAvailable,
	}
	if err := config.DB.Create(&table).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create table")
		return
	}

	respondSuccess(c, http.StatusCreated, "success create table", table)
}

type TableUpdateRequest struct {
	Number *int                `json:"number" binding:"omitempty,min=1"`
	Room   *string             `json:"room"`
	Status *models.TableStatus `json:"status" binding:"omitempty,oneof=available occupied"`
}

// UpdateTable edits a table's number, room or occupancy (admin only)
func UpdateTable(c *gin.Context) {
	var table models.Table
	if err := config.DB.First(&table, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Table not found")
		return
	}

	var req TableUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Number != nil {
		updates["number"] = *req.Number
	}
	if req.Room != nil {
		updates["room"] = *req.Room
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&table).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update table")
			return
		}
	}

	respondSuccess(c, http.StatusOK, "success update table", table)
}
