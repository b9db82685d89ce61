package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/schoolfm/internal/app/models"
)

// BusRouteStore is the persistence the bus route service needs.
type BusRouteStore interface {
	GetAll(ctx context.Context) ([]*models.BusRoute, error)
	Create(ctx context.Context, route *models.BusRoute) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// BusRouteService defines the interface for bus route operations
type BusRouteService interface {
	GetAllBusRoutes(ctx context.Context) ([]*models.BusRoute, error)
	CreateBusRoute(ctx context.Context, route *models.BusRoute) (int64, error)
	DeleteBusRoute(ctx context.Context, id int64) (int64, error)
}

type busRouteServiceImpl struct {
	routeRepo BusRouteStore
}

// NewBusRouteService creates a new bus route service instance
func NewBusRouteService(routeRepo BusRouteStore) BusRouteService {
	return &busRouteServiceImpl{routeRepo: routeRepo}
}

func (s *busRouteServiceImpl) GetAllBusRoutes(ctx context.Context) ([]*models.BusRoute, error) {
	routes, err := s.routeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving bus routes: %w", err)
	}
	return routes, nil
}

func (s *busRouteServiceImpl) CreateBusRoute(ctx context.Context, route *models.BusRoute) (int64, error) {
	route.RouteName = strings.TrimSpace(route.RouteName)
	if err := requireText("route_name", route.RouteName); err != nil {
		return 0, err
	}
	if err := optionalPositive("driver_id", route.DriverID); err != nil {
		return 0, err
	}

	id, err := s.routeRepo.Create(ctx, route)
	if err != nil {
		return 0, fmt.Errorf("error creating bus route: %w", err)
	}
	return id, nil
}

// DeleteBusRoute removes a route together with its stops.
func (s *busRouteServiceImpl) DeleteBusRoute(ctx context.Context, id int64) (int64, error) {
	if err := validateID(id, "bus route"); err != nil {
		return 0, err
	}

	changes, err := s.routeRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting bus route: %w", err)
	}
	return changes, nil
}

// BusStopStore is the persistence the bus stop service needs.
type BusStopStore interface {
	GetAll(ctx context.Context, routeID *int64) ([]*models.BusStop, error)
	Create(ctx context.Context, stop *models.BusStop) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// BusStopService defines the interface for bus stop operations
type BusStopService interface {
	GetBusStops(ctx context.Context, routeID *int64) ([]*models.BusStop, error)
	CreateBusStop(ctx context.Context, stop *models.BusStop) (int64, error)
	DeleteBusStop(ctx context.Context, id int64) (int64, error)
}

type busStopServiceImpl struct {
	stopRepo BusStopStore
}

// NewBusStopService creates a new bus stop service instance
func NewBusStopService(stopRepo BusStopStore) BusStopService {
	return &busStopServiceImpl{stopRepo: stopRepo}
}

func (s *busStopServiceImpl) GetBusStops(ctx context.Context, routeID *int64) ([]*models.BusStop, error) {
	if err := optionalPositive("bus_route_id", routeID); err != nil {
		return nil, err
	}

	stops, err := s.stopRepo.GetAll(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving bus stops: %w", err)
	}
	return stops, nil
}

func (s *busStopServiceImpl) CreateBusStop(ctx context.Context, stop *models.BusStop) (int64, error) {
	stop.StopName = strings.TrimSpace(stop.StopName)
	if err := requirePositive("bus_route_id", stop.BusRouteID); err != nil {
		return 0, err
	}
	if err := requireText("stop_name", stop.StopName); err != nil {
		return 0, err
	}
	if err := requireNonNegative("fee_amount", stop.FeeAmount); err != nil {
		return 0, err
	}

	id, err := s.stopRepo.Create(ctx, stop)
	if err != nil {
		return 0, fmt.Errorf("error creating bus stop: %w", err)
	}
	return id, nil
}

func (s *busStopServiceImpl) DeleteBusStop(ctx context.Context, id int64) (int64, error) {
	if err := validateID(id, "bus stop"); err != nil {
		return 0, err
	}

	changes, err := s.stopRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting bus stop: %w", err)
	}
	return changes, nil
}
