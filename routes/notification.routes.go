package routes

import (
	"net/http"

	"booking-intake-service/domain"
	"booking-intake-service/handlers"

	"github.com/gin-gonic/gin"
)

type NotificationRouteHandler struct {
	notificationHandler handlers.NotificationHandler
}

func NewNotificationRouteHandler(notificationHandler handlers.NotificationHandler) NotificationRouteHandler {
	return NotificationRouteHandler{notificationHandler}
}

func (nr *NotificationRouteHandler) NotificationRoute(rg *gin.RouterGroup) {
	router := rg.Group("")
	router.Use(MiddlewareContentTypeSet)
	router.POST("/send-booking", MiddlewareBookingDeserialization, nr.notificationHandler.SendBooking)
}

func MiddlewareContentTypeSet(c *gin.Context) {
	c.Header("Content-Type", "application/json")
	c.Next()
}

func MiddlewareBookingDeserialization(c *gin.Context) {
	var booking domain.BookingNotification

	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to decode JSON"})
		c.Abort()
		return
	}

	c.Set("booking", booking)
	c.Next()
}
