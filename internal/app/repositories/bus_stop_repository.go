package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolfm/internal/app/models"
)

// BusStopRepository handles bus stop database operations
type BusStopRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewBusStopRepository creates a new BusStopRepository
func NewBusStopRepository(db DBTX) *BusStopRepository {
	return &BusStopRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func busStopListQuery(sb squirrel.StatementBuilderType, routeID *int64) squirrel.SelectBuilder {
	q := sb.Select("bs.id", "bs.bus_route_id", "bs.stop_name", "bs.fee_amount", "b.route_name").
		From("bus_stops bs").
		Join("bus_routes b ON b.id = bs.bus_route_id").
		OrderBy("bs.id")

	if routeID != nil {
		q = q.Where(squirrel.Eq{"bs.bus_route_id": *routeID})
	}
	return q
}

// GetAll retrieves stops, optionally only those of one route
func (r *BusStopRepository) GetAll(ctx context.Context, routeID *int64) ([]*models.BusStop, error) {
	stops, err := queryAll(ctx, r.db, busStopListQuery(r.sb, routeID), func(row pgx.Row) (*models.BusStop, error) {
		s := &models.BusStop{}
		return s, row.Scan(&s.ID, &s.BusRouteID, &s.StopName, &s.FeeAmount, &s.RouteName)
	})
	if err != nil {
		return nil, fmt.Errorf("error querying bus stops: %w", err)
	}
	return stops, nil
}

// Create inserts a stop
func (r *BusStopRepository) Create(ctx context.Context, stop *models.BusStop) (int64, error) {
	return insertReturningID(ctx, r.db, r.sb.Insert("bus_stops").
		Columns("bus_route_id", "stop_name", "fee_amount").
		Values(stop.BusRouteID, stop.StopName, stop.FeeAmount))
}

// Delete removes a stop
func (r *BusStopRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, r.sb, "bus_stops", id)
}
