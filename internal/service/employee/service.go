package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: repo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != "" {
		existing, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name:            req.Name,
		Email:           req.Email,
		Role:            employee.Role(req.Role),
		EmploymentType:  req.EmploymentType,
		Skills:          mapSkillsToEntity(req.Skills),
		DesiredWorkDays: req.DesiredWorkDays,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Email != nil && *req.Email != "" && *req.Email != emp.Email {
		existing, err := s.EmployeeRepository.GetByEmail(ctx, *req.Email)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		emp.Email = *req.Email
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.EmploymentType != nil {
		emp.EmploymentType = *req.EmploymentType
	}
	if req.Skills != nil {
		emp.Skills = mapSkillsToEntity(*req.Skills)
	}
	if req.DesiredWorkDays != nil {
		emp.DesiredWorkDays = *req.DesiredWorkDays
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func mapSkillsToEntity(skills map[string]string) map[employee.SkillType]employee.SkillLevel {
	result := make(map[employee.SkillType]employee.SkillLevel, len(skills))
	for skillType, level := range skills {
		result[employee.SkillType(skillType)] = employee.SkillLevel(level)
	}
	return result
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	skills := make(map[string]string, len(emp.Skills))
	for skillType, level := range emp.Skills {
		skills[string(skillType)] = string(level)
	}

	return employee.EmployeeResponse{
		ID:              emp.ID,
		Name:            emp.Name,
		Email:           emp.Email,
		Role:            string(emp.Role),
		EmploymentType:  emp.EmploymentType,
		Skills:          skills,
		DesiredWorkDays: emp.DesiredWorkDays,
		CreatedAt:       emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
