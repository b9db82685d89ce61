package repositories_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schoolfm/internal/app/migrations"
	"github.com/yigit/schoolfm/internal/app/models"
	"github.com/yigit/schoolfm/internal/app/repositories"
	"github.com/yigit/schoolfm/internal/pkg/apperrors"
	"github.com/yigit/schoolfm/internal/seed"
)

// openTestDatabase resets the database named by SCHOOLFM_TEST_DATABASE_URL.
// Every table is dropped, so never point it at real data.
func openTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("SCHOOLFM_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("SCHOOLFM_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool, zerolog.Nop()).Reset(ctx))
	return pool
}

func ptr[T any](v T) *T { return &v }

func TestPostgresLifecycle(t *testing.T) {
	pool := openTestDatabase(t)
	ctx := context.Background()
	repos := repositories.NewRepositories(pool)

	added, err := seed.EnsureStaffRoles(ctx, pool, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, int64(len(models.DefaultStaffRoles)), added)

	added, err = seed.EnsureStaffRoles(ctx, pool, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, added)

	roles, err := repos.StaffRoleRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 4)

	_, err = repos.StaffRoleRepository.Create(ctx, &models.StaffRole{RoleName: "Teacher"})
	assert.ErrorIs(t, err, apperrors.ErrStaffRoleAlreadyExists)

	teacherRole, err := repos.StaffRoleRepository.GetByName(ctx, "Teacher")
	require.NoError(t, err)
	require.NotNil(t, teacherRole)

	classID, err := repos.ClassRepository.Create(ctx, &models.Class{Name: "Grade 5"})
	require.NoError(t, err)
	teacherID, err := repos.StaffRepository.Create(ctx, &models.Staff{Name: "Mr. Rao", RoleID: teacherRole.ID})
	require.NoError(t, err)
	sectionID, err := repos.SectionRepository.Create(ctx, &models.Section{ClassID: classID, SectionName: "A", TeacherID: &teacherID})
	require.NoError(t, err)

	_, err = repos.SectionRepository.Create(ctx, &models.Section{ClassID: classID, SectionName: "A"})
	assert.ErrorIs(t, err, apperrors.ErrSectionAlreadyExists)

	studentID, err := repos.StudentRepository.Create(ctx, &models.Student{Name: "Jane", SectionID: &sectionID})
	require.NoError(t, err)

	active, err := repos.StudentRepository.GetByStatus(ctx, models.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, models.StatusActive, active[0].Status)
	require.NotNil(t, active[0].ClassName)
	assert.Equal(t, "Grade 5 A", *active[0].ClassName)

	t.Run("fees ordered by due date with undated last", func(t *testing.T) {
		for _, due := range []*string{nil, ptr("2026-03-01"), ptr("2026-01-15")} {
			_, err := repos.FeeRepository.Create(ctx, &models.Fee{StudentID: studentID, Amount: 100, Status: "Pending", DueDate: due})
			require.NoError(t, err)
		}

		fees, err := repos.FeeRepository.GetByStudent(ctx, studentID)
		require.NoError(t, err)
		require.Len(t, fees, 3)
		assert.Equal(t, "2026-01-15", *fees[0].DueDate)
		assert.Equal(t, "2026-03-01", *fees[1].DueDate)
		assert.Nil(t, fees[2].DueDate)
	})

	t.Run("archive moves the student to the left list", func(t *testing.T) {
		changes, err := repos.StudentRepository.Archive(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), changes)

		changes, err = repos.StudentRepository.Archive(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), changes)

		active, err := repos.StudentRepository.GetByStatus(ctx, models.StatusActive)
		require.NoError(t, err)
		assert.Empty(t, active)

		left, err := repos.StudentRepository.GetByStatus(ctx, models.StatusLeft)
		require.NoError(t, err)
		require.Len(t, left, 1)
		assert.Equal(t, studentID, left[0].ID)
	})

	t.Run("delete restrictions", func(t *testing.T) {
		_, err := repos.ClassRepository.Delete(ctx, classID)
		assert.ErrorIs(t, err, apperrors.ErrClassHasSections)

		_, err = repos.StaffRoleRepository.Delete(ctx, teacherRole.ID)
		assert.ErrorIs(t, err, apperrors.ErrStaffRoleInUse)

		changes, err := repos.ClassRepository.Delete(ctx, 999999)
		require.NoError(t, err)
		assert.Zero(t, changes)
	})

	t.Run("removing a teacher clears the section", func(t *testing.T) {
		_, err := pool.Exec(ctx, "DELETE FROM staff WHERE id = $1", teacherID)
		require.NoError(t, err)

		sections, err := repos.SectionRepository.GetAll(ctx, &classID)
		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Nil(t, sections[0].TeacherID)
		assert.Nil(t, sections[0].TeacherName)
	})
}

func TestPostgresPersonRoundTrip(t *testing.T) {
	pool := openTestDatabase(t)
	ctx := context.Background()
	repos := repositories.NewRepositories(pool)

	_, err := seed.EnsureStaffRoles(ctx, pool, zerolog.Nop())
	require.NoError(t, err)
	driverRole, err := repos.StaffRoleRepository.GetByName(ctx, "Driver")
	require.NoError(t, err)
	require.NotNil(t, driverRole)

	staffIn := &models.Staff{
		Name:           "Ravi Kumar",
		RoleID:         driverRole.ID,
		Phone:          ptr("555-0101"),
		DOB:            ptr("1984-02-29"),
		Gender:         ptr("Male"),
		Address:        ptr("12 Hill Road"),
		HireDate:       ptr("2020-06-01"),
		Qualifications: ptr("Heavy vehicle licence"),
	}
	driverID, err := repos.StaffRepository.Create(ctx, staffIn)
	require.NoError(t, err)
	otherID, err := repos.StaffRepository.Create(ctx, &models.Staff{Name: "Asha", RoleID: driverRole.ID})
	require.NoError(t, err)

	routeID, err := repos.BusRouteRepository.Create(ctx, &models.BusRoute{RouteName: "North", DriverID: &driverID})
	require.NoError(t, err)
	stopID, err := repos.BusStopRepository.Create(ctx, &models.BusStop{BusRouteID: routeID, StopName: "Market Square", FeeAmount: 450.5})
	require.NoError(t, err)
	classID, err := repos.ClassRepository.Create(ctx, &models.Class{Name: "Grade 2"})
	require.NoError(t, err)
	sectionID, err := repos.SectionRepository.Create(ctx, &models.Section{ClassID: classID, SectionName: "B"})
	require.NoError(t, err)

	t.Run("student keeps every submitted field", func(t *testing.T) {
		in := &models.Student{
			Name:        " Jane ",
			SectionID:   &sectionID,
			DOB:         ptr("2015-04-12"),
			Gender:      ptr("Female"),
			Phone:       ptr("555-0199"),
			ParentName:  ptr("Mary"),
			ParentPhone: ptr("555-0198"),
			Address:     ptr("4 Lake View"),
			BusStopID:   &stopID,
		}
		id, err := repos.StudentRepository.Create(ctx, in)
		require.NoError(t, err)

		active, err := repos.StudentRepository.GetByStatus(ctx, models.StatusActive)
		require.NoError(t, err)
		require.Len(t, active, 1)

		want := *in
		want.ID = id
		want.Status = models.StatusActive
		want.ClassName = ptr("Grade 2 B")
		assert.Equal(t, &want, active[0])
	})

	t.Run("staff keeps every submitted field", func(t *testing.T) {
		active, err := repos.StaffRepository.GetByStatus(ctx, models.StatusActive)
		require.NoError(t, err)
		require.Len(t, active, 2)

		want := *staffIn
		want.ID = driverID
		want.Status = models.StatusActive
		want.RoleName = ptr("Driver")
		assert.Equal(t, &want, active[0])

		stops, err := repos.BusStopRepository.GetAll(ctx, &routeID)
		require.NoError(t, err)
		require.Len(t, stops, 1)
		assert.Equal(t, 450.5, stops[0].FeeAmount)

		routes, err := repos.BusRouteRepository.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, routes, 1)
		assert.Equal(t, "Ravi Kumar", *routes[0].DriverName)
	})

	t.Run("staff archive splits the table into disjoint lists", func(t *testing.T) {
		changes, err := repos.StaffRepository.Archive(ctx, otherID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), changes)

		active, err := repos.StaffRepository.GetByStatus(ctx, models.StatusActive)
		require.NoError(t, err)
		left, err := repos.StaffRepository.GetByStatus(ctx, models.StatusLeft)
		require.NoError(t, err)

		seen := map[int64]models.Status{}
		for _, s := range append(active, left...) {
			_, dup := seen[s.ID]
			assert.False(t, dup, "staff %d listed twice", s.ID)
			seen[s.ID] = s.Status
		}

		var total int
		require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM staff").Scan(&total))
		assert.Len(t, seen, total)
		assert.Equal(t, models.StatusLeft, seen[otherID])
		assert.Equal(t, models.StatusActive, seen[driverID])
	})
}
