package routes

import (
	"booking-intake-service/handlers"

	"github.com/gin-gonic/gin"
)

type SearchRouteHandler struct {
	searchHandler handlers.SearchHandler
}

func NewSearchRouteHandler(searchHandler handlers.SearchHandler) SearchRouteHandler {
	return SearchRouteHandler{searchHandler}
}

func (sr *SearchRouteHandler) SearchRoute(rg *gin.RouterGroup) {
	rg.GET("/search", sr.searchHandler.SearchLocations)
	rg.GET("/flight-offers", sr.searchHandler.SearchFlightOffers)
}
