package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolfm/internal/app/models/dto"
	"github.com/yigit/schoolfm/internal/app/services"
	"github.com/yigit/schoolfm/internal/middleware"
)

// TransportController handles bus route and bus stop endpoints
type TransportController struct {
	routeService services.BusRouteService
	stopService  services.BusStopService
}

// NewTransportController creates a new TransportController
func NewTransportController(routeService services.BusRouteService, stopService services.BusStopService) *TransportController {
	return &TransportController{
		routeService: routeService,
		stopService:  stopService,
	}
}

// GetAllBusRoutes lists routes with their driver names
// @Summary List bus routes
// @Tags bus-routes
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.BusRoute}
// @Failure 500 {object} dto.ErrorResponse
// @Router /bus-routes [get]
func (c *TransportController) GetAllBusRoutes(ctx *gin.Context) {
	routes, err := c.routeService.GetAllBusRoutes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, routes)
}

// CreateBusRoute adds a route
// @Summary Create a bus route
// @Tags bus-routes
// @Accept json
// @Produce json
// @Param request body dto.CreateBusRouteRequest true "Route"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown driver"
// @Failure 500 {object} dto.ErrorResponse
// @Router /bus-routes [post]
func (c *TransportController) CreateBusRoute(ctx *gin.Context) {
	var req dto.CreateBusRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.routeService.CreateBusRoute(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, id)
}

// DeleteBusRoute removes a route and its stops
// @Summary Delete a bus route
// @Description Stops of the route are deleted; their students keep no stop.
// @Tags bus-routes
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid route ID"
// @Failure 500 {object} dto.ErrorResponse
// @Router /bus-routes/{id} [delete]
func (c *TransportController) DeleteBusRoute(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "bus route")
	if !ok {
		return
	}

	changes, err := c.routeService.DeleteBusRoute(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}

// GetBusStops lists stops with their route names
// @Summary List bus stops
// @Tags bus-stops
// @Produce json
// @Param bus_route_id query int false "Only stops of this route"
// @Success 200 {object} dto.ListResponse{data=[]models.BusStop}
// @Failure 400 {object} dto.ErrorResponse "Invalid bus_route_id"
// @Failure 500 {object} dto.ErrorResponse
// @Router /bus-stops [get]
func (c *TransportController) GetBusStops(ctx *gin.Context) {
	routeID, ok := parseOptionalIDQuery(ctx, "bus_route_id")
	if !ok {
		return
	}

	stops, err := c.stopService.GetBusStops(ctx, routeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, stops)
}

// CreateBusStop adds a stop to a route
// @Summary Create a bus stop
// @Tags bus-stops
// @Accept json
// @Produce json
// @Param request body dto.CreateBusStopRequest true "Stop"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown route"
// @Failure 500 {object} dto.ErrorResponse
// @Router /bus-stops [post]
func (c *TransportController) CreateBusStop(ctx *gin.Context) {
	var req dto.CreateBusStopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.stopService.CreateBusStop(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, id)
}

// DeleteBusStop removes a stop
// @Summary Delete a bus stop
// @Tags bus-stops
// @Produce json
// @Param id path int true "Stop ID"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid stop ID"
// @Failure 500 {object} dto.ErrorResponse
// @Router /bus-stops/{id} [delete]
func (c *TransportController) DeleteBusStop(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "bus stop")
	if !ok {
		return
	}

	changes, err := c.stopService.DeleteBusStop(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}
