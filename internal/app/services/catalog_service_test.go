package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolfm/internal/app/models"
	"github.com/yigit/schoolfm/internal/pkg/apperrors"
)

func TestClassService(t *testing.T) {
	ctx := context.Background()
	store := &recorder[models.Class]{id: 5, changes: 1}
	svc := NewClassService(store)

	id, err := svc.CreateClass(ctx, &models.Class{Name: "  Grade 5 "})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, "Grade 5", store.lastArg.Name)

	_, err = svc.CreateClass(ctx, &models.Class{Name: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, 1, store.calls)

	store.err = apperrors.ErrClassHasSections
	_, err = svc.DeleteClass(ctx, 5)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestSectionService(t *testing.T) {
	ctx := context.Background()
	store := filtered[models.Section]{&recorder[models.Section]{id: 3}}
	svc := NewSectionService(store)

	classID := int64(2)
	_, err := svc.GetSections(ctx, &classID)
	require.NoError(t, err)
	require.NotNil(t, store.filter)
	assert.Equal(t, int64(2), *store.filter)

	_, err = svc.GetSections(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, store.filter)

	id, err := svc.CreateSection(ctx, &models.Section{ClassID: 2, SectionName: "A"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	for name, section := range map[string]*models.Section{
		"no class":     {SectionName: "A"},
		"blank name":   {ClassID: 2, SectionName: " "},
		"zero teacher": {ClassID: 2, SectionName: "B", TeacherID: int64Ptr(0)},
	} {
		_, err := svc.CreateSection(ctx, section)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, name)
	}
}

func TestBusServices(t *testing.T) {
	ctx := context.Background()

	routes := &recorder[models.BusRoute]{id: 1}
	routeSvc := NewBusRouteService(routes)
	_, err := routeSvc.CreateBusRoute(ctx, &models.BusRoute{RouteName: "North Loop", DriverID: int64Ptr(4)})
	require.NoError(t, err)
	_, err = routeSvc.CreateBusRoute(ctx, &models.BusRoute{RouteName: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	stops := filtered[models.BusStop]{&recorder[models.BusStop]{id: 7}}
	stopSvc := NewBusStopService(stops)
	id, err := stopSvc.CreateBusStop(ctx, &models.BusStop{BusRouteID: 1, StopName: "Market Square"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Zero(t, stops.lastArg.FeeAmount)

	_, err = stopSvc.CreateBusStop(ctx, &models.BusStop{BusRouteID: 1, StopName: "Depot", FeeAmount: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = stopSvc.GetBusStops(ctx, int64Ptr(-1))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestFeeStructureService(t *testing.T) {
	ctx := context.Background()
	structures := &recorder[models.FeeStructure]{id: 1, changes: 1}
	svc := NewFeeStructureService(structures)

	_, err := svc.CreateFeeStructure(ctx, &models.FeeStructure{FeeType: "Tuition", Amount: 1200})
	require.NoError(t, err)
	_, err = svc.DeleteFeeStructure(ctx, 1)
	require.NoError(t, err)

	assert.Nil(t, structures.lastArg.ClassID)
	assert.Equal(t, 2, structures.calls)

	_, err = svc.CreateFeeStructure(ctx, &models.FeeStructure{FeeType: "Tuition", Amount: -5})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestFeeService(t *testing.T) {
	ctx := context.Background()
	store := &recorder[models.Fee]{id: 9, changes: 1}
	svc := NewFeeService(store)

	id, err := svc.CreateFee(ctx, &models.Fee{StudentID: 1, Amount: 1200, Status: " Due "})
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, "Due", store.lastArg.Status)

	changes, err := svc.UpdateFee(ctx, 9, &models.Fee{StudentID: 1, Amount: 1200, Status: "Paid"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	_, err = svc.CreateFee(ctx, &models.Fee{StudentID: 1, Amount: 10})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateFee(ctx, &models.Fee{Amount: 10, Status: "Due"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	store.err = errors.New("connection reset")
	_, err = svc.DeleteFee(ctx, 9)
	assert.ErrorContains(t, err, "error deleting fee: connection reset")
}
