package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = fmt.Sprintf("emp-%d", f.nextID)
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			found := emp
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		if filter.Role != nil && string(emp.Role) != *filter.Role {
			continue
		}
		result = append(result, emp)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:            "Sato Yuki",
		Email:           "sato@example.com",
		Role:            "employee",
		EmploymentType:  "part_time",
		Skills:          map[string]string{"kitchen": "B"},
		DesiredWorkDays: 4,
	}
}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	resp, err := svc.CreateEmployee(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Sato Yuki", resp.Name)
	assert.Equal(t, "B", resp.Skills["kitchen"])
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Name = "Someone Else"
	_, err = svc.CreateEmployee(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreateEmployee_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*employee.CreateEmployeeRequest)
	}{
		{"empty name", func(r *employee.CreateEmployeeRequest) { r.Name = "  " }},
		{"bad role", func(r *employee.CreateEmployeeRequest) { r.Role = "owner" }},
		{"bad skill level", func(r *employee.CreateEmployeeRequest) { r.Skills = map[string]string{"kitchen": "S"} }},
		{"work days out of range", func(r *employee.CreateEmployeeRequest) { r.DesiredWorkDays = 8 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := NewEmployeeService(newFakeEmployeeRepo())

			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.CreateEmployee(ctx, req)
			assert.Error(t, err)
		})
	}
}

func TestUpdateEmployee_EmailConflict(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	first, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	other := validCreateRequest()
	other.Email = "tanaka@example.com"
	second, err := svc.CreateEmployee(ctx, other)
	require.NoError(t, err)

	taken := first.Email
	_, err = svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: second.ID, Email: &taken})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	// Resubmitting the employee's own email is not a conflict.
	own := second.Email
	_, err = svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: second.ID, Email: &own})
	assert.NoError(t, err)
}

func TestUpdateEmployee_PartialFields(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	created, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	days := 2
	updated, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, DesiredWorkDays: &days})

	require.NoError(t, err)
	assert.Equal(t, 2, updated.DesiredWorkDays)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
}

func TestGetEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.GetEmployee(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployees_RoleFilter(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	adminReq := validCreateRequest()
	adminReq.Email = "admin@example.com"
	adminReq.Role = "admin"
	_, err = svc.CreateEmployee(ctx, adminReq)
	require.NoError(t, err)

	role := "admin"
	admins, err := svc.ListEmployees(ctx, employee.EmployeeFilter{Role: &role})
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}
