package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// EmployeeUseCase CRUD de empleados acotado por propietario.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// List devuelve los empleados del propietario, más recientes primero.
func (uc *EmployeeUseCase) List(ownerID string) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Create inserta un empleado. Name y Email son obligatorios; Status y Role
// quedan sin asignar salvo que se envíen.
func (uc *EmployeeUseCase) Create(ownerID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != nil && !validRecordStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != nil && !validEmployeeRole(*in.Role) {
		return nil, domain.ErrInvalidInput
	}
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Position:  in.Position,
		Status:    in.Status,
		Role:      in.Role,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(employee)
	return &resp, nil
}

// Update aplica un parche parcial sobre el empleado id+owner.
func (uc *EmployeeUseCase) Update(ownerID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil && !validRecordStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != nil && !validEmployeeRole(*in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		employee.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		employee.Email = *in.Email
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Position != nil {
		employee.Position = *in.Position
	}
	if in.Status != nil {
		employee.Status = in.Status
	}
	if in.Role != nil {
		employee.Role = in.Role
	}
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(employee)
	return &resp, nil
}

// Delete elimina el empleado id+owner.
func (uc *EmployeeUseCase) Delete(ownerID, id string) error {
	deleted, err := uc.repo.DeleteByIDAndOwner(id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Position:  e.Position,
		Status:    e.Status,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
	}
}

func validEmployeeRole(s string) bool {
	return s == entity.EmployeeRoleManager || s == entity.EmployeeRoleAdmin
}
