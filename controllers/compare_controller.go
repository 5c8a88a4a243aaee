package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sahibus/models"
	"sahibus/services"
	"sahibus/utils"
)

type CompareController struct {
	search  *services.SearchService
	compare *services.CompareService
}

func NewCompareController(search *services.SearchService, compare *services.CompareService) *CompareController {
	return &CompareController{search: search, compare: compare}
}

// POST /bus/compare/toggle
func (cc *CompareController) Toggle(c *gin.Context) {
	device := deviceID(c)
	if device == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Устройство не определено"})
		return
	}

	var req struct {
		SearchID string `json:"search_id" binding:"required"`
		TripID   string `json:"trip_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	session, err := cc.search.GetSession(c.Request.Context(), req.SearchID)
	if err != nil {
		utils.LogError(err, "compare toggle session")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения поиска"})
		return
	}
	if session == nil || session.Status != models.SearchStatusReady {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Поиск не найден или еще не завершен"})
		return
	}
	if !tripInSession(session, req.TripID) {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Рейс не найден в результатах поиска"})
		return
	}

	ids, changed, err := cc.compare.Toggle(c.Request.Context(), device, req.TripID)
	if err != nil {
		utils.LogError(err, "compare toggle")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка изменения сравнения"})
		return
	}

	// Лимит достигнут - не ошибка, фронт показывает подсказку
	c.JSON(http.StatusOK, gin.H{
		"result":  gin.H{"selected": ids, "limit_reached": !changed},
		"success": true,
	})
}

// DELETE /bus/compare
func (cc *CompareController) Clear(c *gin.Context) {
	device := deviceID(c)
	if device == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Устройство не определено"})
		return
	}

	if err := cc.compare.Clear(c.Request.Context(), device); err != nil {
		utils.LogError(err, "compare clear")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка очистки сравнения"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"selected": []string{}}, "success": true})
}

// GET /bus/compare?search_id=...&sort=price
// Отдает выбранные рейсы бок о бок. Порядок повторяет порядок рейсов в
// текущей выдаче: по умолчанию сохраненный (по отправлению), при
// переданном sort - соответствующий.
func (cc *CompareController) Show(c *gin.Context) {
	device := deviceID(c)
	if device == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Устройство не определено"})
		return
	}

	searchID := c.Query("search_id")
	if searchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "search_id обязателен"})
		return
	}

	session, err := cc.search.GetSession(c.Request.Context(), searchID)
	if err != nil {
		utils.LogError(err, "compare show session")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения поиска"})
		return
	}
	if session == nil || session.Status != models.SearchStatusReady {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Поиск не найден или еще не завершен"})
		return
	}

	ids, err := cc.compare.List(c.Request.Context(), device)
	if err != nil {
		utils.LogError(err, "compare list")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения сравнения"})
		return
	}

	ordered := session.Trips
	if sortKey := c.Query("sort"); sortKey != "" {
		ordered, err = services.SortTrips(session.Trips, sortKey)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Неверный ключ сортировки"})
			return
		}
	}

	selected := services.MaterializeComparison(ordered, ids)
	content := make([]tripView, 0, len(selected))
	for _, t := range selected {
		minPrice, priceErr := services.MinPrice(t)
		if priceErr != nil {
			utils.LogError(priceErr, "compare view")
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Поврежденные данные рейса"})
			return
		}
		content = append(content, newTripView(t, minPrice))
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"trips":        content,
			"all_features": models.AllFeatures,
		},
		"success": true,
	})
}

func tripInSession(session *models.SearchSession, tripID string) bool {
	for _, t := range session.Trips {
		if t.ID == tripID {
			return true
		}
	}
	return false
}
