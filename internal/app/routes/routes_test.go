package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/schoolfm/internal/app/controllers"
)

func TestSetupRouterRegistersEveryEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupRouter(router,
		controllers.NewStaffRoleController(nil),
		controllers.NewClassController(nil, nil),
		controllers.NewStaffController(nil),
		controllers.NewStudentController(nil),
		controllers.NewTransportController(nil, nil),
		controllers.NewBillingController(nil, nil),
		controllers.NewSettingsController(nil),
		controllers.NewHealthController(nil),
	)
	SetupSwagger(router)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /api/health",
		"GET /api/settings",
		"PUT /api/settings",
		"GET /api/staff-roles",
		"POST /api/staff-roles",
		"DELETE /api/staff-roles/:id",
		"GET /api/classes",
		"POST /api/classes",
		"DELETE /api/classes/:id",
		"GET /api/sections",
		"POST /api/sections",
		"DELETE /api/sections/:id",
		"GET /api/fee-structures",
		"POST /api/fee-structures",
		"DELETE /api/fee-structures/:id",
		"GET /api/students",
		"GET /api/students/archived",
		"POST /api/students",
		"PUT /api/students/:id",
		"PUT /api/students/:id/archive",
		"GET /api/students/:id/fees",
		"GET /api/staff",
		"GET /api/staff/archived",
		"POST /api/staff",
		"PUT /api/staff/:id",
		"PUT /api/staff/:id/archive",
		"GET /api/bus-routes",
		"POST /api/bus-routes",
		"DELETE /api/bus-routes/:id",
		"GET /api/bus-stops",
		"POST /api/bus-stops",
		"DELETE /api/bus-stops/:id",
		"POST /api/fees",
		"PUT /api/fees/:id",
		"DELETE /api/fees/:id",
		"GET /swagger/*any",
	} {
		assert.True(t, registered[want], want)
	}
}
