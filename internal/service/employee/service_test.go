package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/albaworks/timeclock-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	order     []string
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.nextID++
	newEmployee.ID = fmt.Sprintf("emp-%d", f.nextID)
	newEmployee.CreatedAt = time.Now()
	f.employees[newEmployee.ID] = newEmployee
	f.order = append([]string{newEmployee.ID}, f.order...)
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByName(ctx context.Context, name string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Name == name {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	result := make([]employee.Employee, 0, len(f.order))
	for _, id := range f.order {
		result = append(result, f.employees[id])
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
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeEmployeeRepo) AddHoursWorked(ctx context.Context, id string, hours float64) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.HoursWorked += hours
	f.employees[id] = emp
	return nil
}

func TestCreateEmployee(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	created, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name:         "김철수",
		Wage:         "10030",
		PlannedHours: "40",
	})
	require.NoError(t, err)

	assert.Equal(t, "김철수", created.Name)
	assert.Equal(t, "10030", created.Wage)
	assert.Equal(t, "10,030원", created.WageFormatted)
	assert.Equal(t, 40.0, created.PlannedHours)
	assert.Zero(t, created.HoursWorked)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	cases := []employee.CreateEmployeeRequest{
		{Name: "", Wage: "10000"},
		{Name: "김철수", Wage: ""},
		{Name: "김철수", Wage: "0"},
		{Name: "김철수", Wage: "-100"},
		{Name: "김철수", Wage: "abc"},
		{Name: "김철수", Wage: "10000", PlannedHours: "-1"},
	}
	for _, req := range cases {
		if _, err := svc.CreateEmployee(context.Background(), req); err == nil {
			t.Errorf("request %+v accepted, want validation error", req)
		}
	}
}

func TestCreateEmployeeDuplicateName(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name: "김철수",
		Wage: "10000",
	})
	require.NoError(t, err)

	_, err = svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name: "김철수",
		Wage: "12000",
	})
	assert.ErrorIs(t, err, employee.ErrNameExists)
}

func TestUpdateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	created, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name: "김철수",
		Wage: "10000",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:           created.ID,
		Name:         "김영수",
		Wage:         "11000",
		PlannedHours: "20",
	})
	require.NoError(t, err)

	assert.Equal(t, "김영수", updated.Name)
	assert.Equal(t, "11000", updated.Wage)
	assert.Equal(t, 20.0, updated.PlannedHours)
}

func TestUpdateEmployeeRenameCollision(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name: "김철수",
		Wage: "10000",
	})
	require.NoError(t, err)

	second, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name: "이영희",
		Wage: "10000",
	})
	require.NoError(t, err)

	_, err = svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:   second.ID,
		Name: "김철수",
		Wage: "10000",
	})
	assert.ErrorIs(t, err, employee.ErrNameExists)

	// keeping the same name is not a collision
	updated, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:   second.ID,
		Name: "이영희",
		Wage: "12000",
	})
	require.NoError(t, err)
	assert.Equal(t, "12000", updated.Wage)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:   "missing",
		Name: "김철수",
		Wage: "10000",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	created, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name: "김철수",
		Wage: "10000",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), created.ID), employee.ErrEmployeeNotFound)
}

func TestListEmployeesNewestFirst(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	for _, name := range []string{"첫번째", "두번째", "세번째"} {
		_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
			Name: name,
			Wage: "10000",
		})
		require.NoError(t, err)
	}

	list, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)

	require.Len(t, list.Data, 3)
	assert.Equal(t, int64(3), list.TotalCount)
	assert.Equal(t, "세번째", list.Data[0].Name)
	assert.Equal(t, "첫번째", list.Data[2].Name)
}
