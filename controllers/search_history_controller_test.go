package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitRoute(t *testing.T, r http.Handler, source, destination string) {
	t.Helper()
	w, _ := doRequest(t, r, http.MethodPost, "/bus/search", gin.H{
		"source":      source,
		"destination": destination,
		"country":     "IN",
		"date":        "2030-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func recentSearches(t *testing.T, r http.Handler) []interface{} {
	t.Helper()
	w, resp := doRequest(t, r, http.MethodGet, "/bus/recent-searches", nil)
	require.Equal(t, http.StatusOK, w.Code)
	return resp["result"].(map[string]interface{})["content"].([]interface{})
}

func TestRecentSearchesList(t *testing.T) {
	r := newTestRouter(t)

	assert.Empty(t, recentSearches(t, r))

	submitRoute(t, r, "Delhi", "Mumbai")
	submitRoute(t, r, "Pune", "Jaipur")
	submitRoute(t, r, "Delhi", "Mumbai") // дубль маршрута

	log := recentSearches(t, r)
	require.Len(t, log, 2)
	// Свежий запрос первым
	assert.Equal(t, "Pune", log[0].(map[string]interface{})["source"])
	assert.Equal(t, "Delhi", log[1].(map[string]interface{})["source"])
}

// Журнал не растет за пятерку, старое вытесняется
func TestRecentSearchesLimit(t *testing.T) {
	r := newTestRouter(t)

	routes := [][2]string{
		{"Delhi", "Mumbai"},
		{"Mumbai", "Pune"},
		{"Pune", "Jaipur"},
		{"Jaipur", "Bangalore"},
		{"Bangalore", "Chennai"},
		{"Chennai", "Hyderabad"},
	}
	for _, route := range routes {
		submitRoute(t, r, route[0], route[1])
	}

	log := recentSearches(t, r)
	require.Len(t, log, 5)
	assert.Equal(t, "Chennai", log[0].(map[string]interface{})["source"])
	// Самый старый маршрут вытеснен
	for _, entry := range log {
		assert.NotEqual(t, "Delhi", entry.(map[string]interface{})["source"])
	}
}

func TestRecentSearchesClear(t *testing.T) {
	r := newTestRouter(t)

	submitRoute(t, r, "Delhi", "Mumbai")
	require.Len(t, recentSearches(t, r), 1)

	w, resp := doRequest(t, r, http.MethodDelete, "/bus/recent-searches", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "История очищена", resp["message"])

	assert.Empty(t, recentSearches(t, r))
}
