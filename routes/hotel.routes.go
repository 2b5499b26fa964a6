package routes

import (
	"booking-intake-service/handlers"

	"github.com/gin-gonic/gin"
)

type HotelRouteHandler struct {
	hotelHandler handlers.HotelHandler
}

func NewHotelRouteHandler(hotelHandler handlers.HotelHandler) HotelRouteHandler {
	return HotelRouteHandler{hotelHandler}
}

// HotelRoute registers both transports for the hotel search: query
// string over GET and JSON body over POST.
func (hr *HotelRouteHandler) HotelRoute(rg *gin.RouterGroup) {
	rg.GET("/hotels", hr.hotelHandler.SearchHotels)
	rg.POST("/hotels", hr.hotelHandler.SearchHotels)
}
