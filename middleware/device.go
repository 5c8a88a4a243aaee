package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeviceMiddleware кладет идентификатор устройства в контекст запроса.
// Фронт хранит его локально и передает в X-Device-ID; если заголовка нет,
// сервер выдает новый uuid и возвращает его в ответе, чтобы клиент
// запомнил. Вся per-device память (история, сравнение, текущий поиск)
// ключуется этим id.
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-Device-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("device_id", id)
		c.Header("X-Device-ID", id)
		c.Next()
	}
}
