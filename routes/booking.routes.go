package routes

import (
	"booking-intake-service/handlers"

	"github.com/gin-gonic/gin"
)

type BookingRouteHandler struct {
	bookingHandler handlers.BookingHandler
}

func NewBookingRouteHandler(bookingHandler handlers.BookingHandler) BookingRouteHandler {
	return BookingRouteHandler{bookingHandler}
}

func (br *BookingRouteHandler) BookingRoute(rg *gin.RouterGroup) {
	rg.POST("/book-flight", br.bookingHandler.BookFlight)
}
