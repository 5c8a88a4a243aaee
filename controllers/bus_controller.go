package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"sahibus/models"
	"sahibus/services"
	"sahibus/utils"
)

type BusController struct {
	rdb     *redis.Client
	search  *services.SearchService
	compare *services.CompareService
}

func NewBusController(rdb *redis.Client, search *services.SearchService, compare *services.CompareService) *BusController {
	return &BusController{rdb: rdb, search: search, compare: compare}
}

const tripsPerPage = 5

func deviceID(c *gin.Context) string {
	return c.GetString("device_id")
}

// GET /bus/countries
func (bc *BusController) Countries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": models.Countries, "success": true})
}

// GET /bus/popular-routes
func (bc *BusController) PopularRoutes(c *gin.Context) {
	routes := services.PopularRoutes(c.Request.Context(), bc.rdb)
	c.JSON(http.StatusOK, gin.H{"result": routes, "success": true})
}

// POST /bus/search
func (bc *BusController) Search(c *gin.Context) {
	device := deviceID(c)
	if device == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Устройство не определено"})
		return
	}

	var query models.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request: " + err.Error()})
		return
	}

	query.Source = strings.TrimSpace(query.Source)
	query.Destination = strings.TrimSpace(query.Destination)

	// Валидация формы: ошибки возвращаются пользователю, в конвейер
	// поиска некорректный запрос не попадает
	country := models.FindCountry(query.Country)
	if country == nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Неизвестная страна"})
		return
	}
	if !country.HasCity(query.Source) || !country.HasCity(query.Destination) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Город не входит в справочник выбранной страны"})
		return
	}
	if query.Source == query.Destination {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Пункты отправления и назначения не могут совпадать"})
		return
	}
	date, err := utils.ParseTravelDate(query.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Неверный формат даты, ожидается YYYY-MM-DD"})
		return
	}
	if utils.IsBeforeYesterday(date, time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Дата поездки не может быть в прошлом"})
		return
	}

	searchID, err := bc.search.Submit(c.Request.Context(), device, query)
	if err != nil {
		utils.LogError(err, "search submit")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка создания поиска"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": gin.H{"search_id": searchID}, "success": true})
}

// GET /bus/search/:search_id/results?sort=price&max_price=800&seat_type=sleeper&operators=a,b&time_slots=6-12&page=1
func (bc *BusController) Results(c *gin.Context) {
	session, ok := bc.loadSession(c)
	if !ok {
		return
	}
	if session.Status == models.SearchStatusPending {
		c.JSON(http.StatusOK, gin.H{"result": gin.H{"status": models.SearchStatusPending}, "success": true})
		return
	}

	criteria := parseCriteria(c)
	filtered, err := services.FilterTrips(session.Trips, criteria)
	if err != nil {
		utils.LogError(err, "results filter")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Поврежденные данные поиска"})
		return
	}

	sortKey := c.DefaultQuery("sort", models.SortByPrice)
	sorted, err := services.SortTrips(filtered, sortKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Неверный ключ сортировки"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	total := len(sorted)
	totalPages := (total + tripsPerPage - 1) / tripsPerPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}
	start := (page - 1) * tripsPerPage
	end := start + tripsPerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	content := make([]tripView, 0, end-start)
	for _, t := range sorted[start:end] {
		minPrice, priceErr := services.MinPrice(t)
		if priceErr != nil {
			utils.LogError(priceErr, "results view")
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Поврежденные данные поиска"})
			return
		}
		content = append(content, newTripView(t, minPrice))
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"status":        models.SearchStatusReady,
			"content":       content,
			"totalPages":    totalPages,
			"totalElements": total,
			"size":          tripsPerPage,
			"number":        page - 1,
			"first":         page == 1,
			"last":          page >= totalPages,
			"facets":        buildFacets(session.Trips),
		},
		"success": true,
	})
}

// GET /bus/search/:search_id/trips/:trip_id
func (bc *BusController) GetTrip(c *gin.Context) {
	session, ok := bc.loadSession(c)
	if !ok {
		return
	}
	if session.Status == models.SearchStatusPending {
		c.JSON(http.StatusOK, gin.H{"result": gin.H{"status": models.SearchStatusPending}, "success": true})
		return
	}

	tripID := c.Param("trip_id")
	for _, t := range session.Trips {
		if t.ID != tripID {
			continue
		}
		cheapest, err := services.CheapestOffer(t)
		if err != nil {
			utils.LogError(err, "trip view")
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Поврежденные данные рейса"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": newTripView(t, cheapest.Price), "success": true})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Рейс не найден"})
}

// loadSession достает сессию по :search_id; неизвестный id отвечает 404
// (этим "поиск не запускался" отличается от pending и пустого результата)
func (bc *BusController) loadSession(c *gin.Context) (*models.SearchSession, bool) {
	searchID := c.Param("search_id")
	session, err := bc.search.GetSession(c.Request.Context(), searchID)
	if err != nil {
		utils.LogError(err, "session lookup")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения поиска"})
		return nil, false
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Поиск не найден"})
		return nil, false
	}
	return session, true
}

// parseCriteria читает критерии фильтра из query string. Цена приходит в
// целых единицах валюты и переводится в минорные.
func parseCriteria(c *gin.Context) models.FilterCriteria {
	criteria := models.FilterCriteria{SeatType: models.SeatTypeAny}

	if v := c.Query("max_price"); v != "" {
		if units, err := strconv.ParseFloat(v, 64); err == nil && units > 0 {
			criteria.MaxPrice = int64(units * 100)
		}
	}
	if v := c.Query("seat_type"); v == models.SeatTypeSeater || v == models.SeatTypeSleeper {
		criteria.SeatType = v
	}
	if v := c.Query("operators"); v != "" {
		criteria.Operators = splitNonEmpty(v)
	}
	if v := c.Query("time_slots"); v != "" {
		criteria.TimeSlots = splitNonEmpty(v)
	}
	return criteria
}

func splitNonEmpty(v string) []string {
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// buildFacets отдает данные для панели фильтров: список перевозчиков в
// выдаче и потолок цены, посчитанные по полному набору рейсов
func buildFacets(trips []models.Trip) gin.H {
	seen := make(map[string]bool)
	operators := make([]string, 0)
	var maxPrice int64
	for _, t := range trips {
		if !seen[t.Operator.Name] {
			seen[t.Operator.Name] = true
			operators = append(operators, t.Operator.Name)
		}
		for _, o := range t.AllOffers() {
			if o.Price > maxPrice {
				maxPrice = o.Price
			}
		}
	}
	return gin.H{
		"operators": operators,
		"max_price": maxPrice / 100,
	}
}
