package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolfm/internal/app/models"
)

func TestSectionListQuery(t *testing.T) {
	sb := statementBuilder()

	t.Run("all sections", func(t *testing.T) {
		sql, args, err := sectionListQuery(sb, nil).ToSql()
		require.NoError(t, err)

		assert.Equal(t, "SELECT s.id, s.class_id, s.section_name, s.teacher_id, c.name AS class_name, t.name AS teacher_name "+
			"FROM sections s JOIN classes c ON c.id = s.class_id LEFT JOIN staff t ON t.id = s.teacher_id ORDER BY s.id", sql)
		assert.Empty(t, args)
	})

	t.Run("filtered by class", func(t *testing.T) {
		classID := int64(7)
		sql, args, err := sectionListQuery(sb, &classID).ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "WHERE s.class_id = $1 ORDER BY s.id")
		assert.Equal(t, []interface{}{int64(7)}, args)
	})
}

func TestStudentListQueryBuildsClassLabel(t *testing.T) {
	sql, args, err := studentListQuery(statementBuilder(), models.StatusActive).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "c.name || ' ' || sec.section_name AS class_name")
	assert.Contains(t, sql, "LEFT JOIN sections sec ON sec.id = st.section_id")
	assert.Contains(t, sql, "LEFT JOIN classes c ON c.id = sec.class_id")
	assert.Contains(t, sql, "WHERE st.status = $1")
	assert.Equal(t, []interface{}{"Active"}, args)
}

func TestStaffListQueryJoinsRole(t *testing.T) {
	sql, args, err := staffListQuery(statementBuilder(), models.StatusLeft).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "r.role_name FROM staff s LEFT JOIN staff_roles r ON r.id = s.role_id")
	assert.Contains(t, sql, "WHERE s.status = $1 ORDER BY s.id")
	assert.Equal(t, []interface{}{"Left"}, args)
}

func TestTransportListQueries(t *testing.T) {
	sb := statementBuilder()

	sql, _, err := busRouteListQuery(sb).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "d.name AS driver_name FROM bus_routes b LEFT JOIN staff d ON d.id = b.driver_id")

	routeID := int64(3)
	sql, args, err := busStopListQuery(sb, &routeID).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "JOIN bus_routes b ON b.id = bs.bus_route_id WHERE bs.bus_route_id = $1")
	assert.Equal(t, []interface{}{int64(3)}, args)

	sql, args, err = busStopListQuery(sb, nil).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestFeeStructureListQueryKeepsGeneralStructures(t *testing.T) {
	sql, _, err := feeStructureListQuery(statementBuilder()).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM fee_structures fs LEFT JOIN classes c ON c.id = fs.class_id")
}

func TestStudentFeesQueryOrdersByDueDate(t *testing.T) {
	sql, args, err := studentFeesQuery(statementBuilder(), 12).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, student_id, amount, status, due_date, fee_type FROM fees "+
		"WHERE student_id = $1 ORDER BY due_date NULLS LAST, id", sql)
	assert.Equal(t, []interface{}{int64(12)}, args)
}

func TestEnsureRolesQueryIgnoresExistingNames(t *testing.T) {
	sql, args, err := ensureRolesQuery(statementBuilder(), models.DefaultStaffRoles).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO staff_roles (role_name) VALUES ($1),($2),($3),($4)")
	assert.Contains(t, sql, "ON CONFLICT (role_name) DO NOTHING")
	assert.Equal(t, []interface{}{"Teacher", "Admin", "Principal", "Driver"}, args)
}

func TestArchiveQuerySetsLeft(t *testing.T) {
	sql, args, err := archiveQuery(statementBuilder(), "students", 4).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE students SET status = $1 WHERE id = $2", sql)
	assert.Equal(t, []interface{}{"Left", int64(4)}, args)
}
