package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail returns nil without error when no employee has that email.
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
}
