package models

// BusRoute is a school bus route with an optional driver.
type BusRoute struct {
	ID        int64  `json:"id"`
	RouteName string `json:"route_name"`
	DriverID  *int64 `json:"driver_id"`

	DriverName *string `json:"driver_name"`
}

// BusStop is a stop on a route. FeeAmount is the transport fee for students
// boarding there.
type BusStop struct {
	ID         int64   `json:"id"`
	BusRouteID int64   `json:"bus_route_id"`
	StopName   string  `json:"stop_name"`
	FeeAmount  float64 `json:"fee_amount"`

	RouteName *string `json:"route_name"`
}
