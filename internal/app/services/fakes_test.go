package services

import (
	"context"
	"sort"

	"github.com/yigit/schoolfm/internal/app/models"
	"github.com/yigit/schoolfm/internal/pkg/apperrors"
)

// memoryStudents mimics the students table, including the affected-row
// semantics of UPDATE.
type memoryStudents struct {
	rows   map[int64]*models.Student
	nextID int64
}

func newMemoryStudents() *memoryStudents {
	return &memoryStudents{rows: map[int64]*models.Student{}}
}

func (m *memoryStudents) GetByStatus(_ context.Context, status models.Status) ([]*models.Student, error) {
	out := []*models.Student{}
	for _, s := range m.rows {
		if s.Status == status {
			copied := *s
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStudents) Create(_ context.Context, s *models.Student) (int64, error) {
	m.nextID++
	row := *s
	row.ID = m.nextID
	row.Status = models.StatusActive
	m.rows[row.ID] = &row
	return row.ID, nil
}

func (m *memoryStudents) Update(_ context.Context, id int64, s *models.Student) (int64, error) {
	existing, ok := m.rows[id]
	if !ok {
		return 0, nil
	}
	row := *s
	row.ID = id
	row.Status = existing.Status
	m.rows[id] = &row
	return 1, nil
}

func (m *memoryStudents) Archive(_ context.Context, id int64) (int64, error) {
	existing, ok := m.rows[id]
	if !ok {
		return 0, nil
	}
	existing.Status = models.StatusLeft
	return 1, nil
}

type memoryStaff struct {
	rows   map[int64]*models.Staff
	nextID int64
}

func newMemoryStaff() *memoryStaff {
	return &memoryStaff{rows: map[int64]*models.Staff{}}
}

func (m *memoryStaff) GetByStatus(_ context.Context, status models.Status) ([]*models.Staff, error) {
	out := []*models.Staff{}
	for _, s := range m.rows {
		if s.Status == status {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStaff) Create(_ context.Context, s *models.Staff) (int64, error) {
	m.nextID++
	row := *s
	row.ID = m.nextID
	row.Status = models.StatusActive
	m.rows[row.ID] = &row
	return row.ID, nil
}

func (m *memoryStaff) Update(_ context.Context, id int64, s *models.Staff) (int64, error) {
	existing, ok := m.rows[id]
	if !ok {
		return 0, nil
	}
	row := *s
	row.ID = id
	row.Status = existing.Status
	m.rows[id] = &row
	return 1, nil
}

func (m *memoryStaff) Archive(_ context.Context, id int64) (int64, error) {
	existing, ok := m.rows[id]
	if !ok {
		return 0, nil
	}
	existing.Status = models.StatusLeft
	return 1, nil
}

// memoryRoles enforces the unique role name the way the store does.
type memoryRoles struct {
	roles []*models.StaffRole
}

func (m *memoryRoles) GetAll(_ context.Context) ([]*models.StaffRole, error) {
	return append([]*models.StaffRole{}, m.roles...), nil
}

func (m *memoryRoles) has(name string) bool {
	for _, r := range m.roles {
		if r.RoleName == name {
			return true
		}
	}
	return false
}

func (m *memoryRoles) Create(_ context.Context, role *models.StaffRole) (int64, error) {
	if m.has(role.RoleName) {
		return 0, apperrors.ErrStaffRoleAlreadyExists
	}
	id := int64(len(m.roles) + 1)
	m.roles = append(m.roles, &models.StaffRole{ID: id, RoleName: role.RoleName})
	return id, nil
}

func (m *memoryRoles) EnsureRoles(ctx context.Context, names []string) (int64, error) {
	var added int64
	for _, name := range names {
		if m.has(name) {
			continue
		}
		if _, err := m.Create(ctx, &models.StaffRole{RoleName: name}); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

func (m *memoryRoles) Delete(_ context.Context, id int64) (int64, error) {
	for i, r := range m.roles {
		if r.ID == id {
			m.roles = append(m.roles[:i], m.roles[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// recorder is a store stub for the simple CRUD services: it counts calls and
// replays a canned result.
type recorder[T any] struct {
	calls   int
	lastArg *T
	filter  *int64
	id      int64
	changes int64
	err     error
}

func (r *recorder[T]) GetAll(_ context.Context) ([]*T, error) {
	r.calls++
	return []*T{}, r.err
}

func (r *recorder[T]) Create(_ context.Context, item *T) (int64, error) {
	r.calls++
	r.lastArg = item
	return r.id, r.err
}

func (r *recorder[T]) Update(_ context.Context, _ int64, item *T) (int64, error) {
	r.calls++
	r.lastArg = item
	return r.changes, r.err
}

func (r *recorder[T]) Delete(_ context.Context, _ int64) (int64, error) {
	r.calls++
	return r.changes, r.err
}

// filtered adapts a recorder to stores whose listing takes an optional parent id.
type filtered[T any] struct {
	*recorder[T]
}

func (f filtered[T]) GetAll(_ context.Context, parentID *int64) ([]*T, error) {
	f.calls++
	f.filter = parentID
	return []*T{}, f.err
}

type feesByStudent struct {
	fees      []*models.Fee
	studentID int64
}

func (f *feesByStudent) GetByStudent(_ context.Context, studentID int64) ([]*models.Fee, error) {
	f.studentID = studentID
	return f.fees, nil
}
