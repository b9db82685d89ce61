package dto

import (
	"strings"

	"github.com/yigit/schoolfm/internal/app/models"
)

// CreateBusRouteRequest represents bus route creation data
type CreateBusRouteRequest struct {
	RouteName string `json:"route_name" binding:"required,notblank" example:"North Loop"`
	DriverID  *int64 `json:"driver_id" binding:"omitempty,gt=0"`
}

// ToModel converts the request into a BusRoute.
func (r CreateBusRouteRequest) ToModel() *models.BusRoute {
	return &models.BusRoute{
		RouteName: strings.TrimSpace(r.RouteName),
		DriverID:  r.DriverID,
	}
}

// CreateBusStopRequest represents bus stop creation data. FeeAmount defaults to 0.
type CreateBusStopRequest struct {
	BusRouteID int64    `json:"bus_route_id" binding:"required,gt=0" example:"1"`
	StopName   string   `json:"stop_name" binding:"required,notblank" example:"Market Square"`
	FeeAmount  *float64 `json:"fee_amount" binding:"omitempty,gte=0,lt=10000000000" example:"450"`
}

// ToModel converts the request into a BusStop.
func (r CreateBusStopRequest) ToModel() *models.BusStop {
	stop := &models.BusStop{
		BusRouteID: r.BusRouteID,
		StopName:   strings.TrimSpace(r.StopName),
	}
	if r.FeeAmount != nil {
		stop.FeeAmount = *r.FeeAmount
	}
	return stop
}
