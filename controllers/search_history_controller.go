package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sahibus/services"
	"sahibus/utils"
)

type SearchHistoryController struct {
	history *services.HistoryService
}

func NewSearchHistoryController(history *services.HistoryService) *SearchHistoryController {
	return &SearchHistoryController{history: history}
}

// GET /bus/recent-searches
// Журнал последних поисков устройства, от свежего к старому, не больше пяти
func (shc *SearchHistoryController) List(c *gin.Context) {
	device := deviceID(c)
	if device == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Устройство не определено"})
		return
	}

	log, err := shc.history.List(c.Request.Context(), device)
	if err != nil {
		utils.LogError(err, "recent searches list")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения истории поиска"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"content": log}, "success": true})
}

// DELETE /bus/recent-searches
func (shc *SearchHistoryController) Clear(c *gin.Context) {
	device := deviceID(c)
	if device == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Устройство не определено"})
		return
	}

	if err := shc.history.Clear(c.Request.Context(), device); err != nil {
		utils.LogError(err, "recent searches clear")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка очистки истории поиска"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"content": []string{}}, "success": true, "message": "История очищена"})
}
