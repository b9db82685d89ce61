package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolfm/internal/app/models"
)

// BusRouteRepository handles bus route database operations
type BusRouteRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewBusRouteRepository creates a new BusRouteRepository
func NewBusRouteRepository(db DBTX) *BusRouteRepository {
	return &BusRouteRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func busRouteListQuery(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select("b.id", "b.route_name", "b.driver_id", "d.name AS driver_name").
		From("bus_routes b").
		LeftJoin("staff d ON d.id = b.driver_id").
		OrderBy("b.id")
}

// GetAll retrieves every route with its driver's name
func (r *BusRouteRepository) GetAll(ctx context.Context) ([]*models.BusRoute, error) {
	routes, err := queryAll(ctx, r.db, busRouteListQuery(r.sb), func(row pgx.Row) (*models.BusRoute, error) {
		b := &models.BusRoute{}
		return b, row.Scan(&b.ID, &b.RouteName, &b.DriverID, &b.DriverName)
	})
	if err != nil {
		return nil, fmt.Errorf("error querying bus routes: %w", err)
	}
	return routes, nil
}

// Create inserts a route
func (r *BusRouteRepository) Create(ctx context.Context, route *models.BusRoute) (int64, error) {
	return insertReturningID(ctx, r.db, r.sb.Insert("bus_routes").
		Columns("route_name", "driver_id").
		Values(route.RouteName, route.DriverID))
}

// Delete removes a route and its stops. Students on those stops lose their stop.
func (r *BusRouteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, r.sb, "bus_routes", id)
}
