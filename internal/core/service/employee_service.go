package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/repository"
)

// ErrInvalidCredentials is returned on login when the employee does not
// exist or the password does not match. The two cases are not
// distinguished to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

type EmployeeService struct {
	repo repository.EmployeeRepository
	log  *zap.Logger
}

func NewEmployeeService(repo repository.EmployeeRepository, log *zap.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, log: log}
}

// Register creates an employee with a bcrypt hash of the supplied password.
func (s *EmployeeService) Register(ctx context.Context, req entity.RegisterEmployeeRequest) (entity.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.Employee{}, err
	}

	employee := entity.Employee{
		Name:         req.Name,
		Surname:      req.Surname,
		JobPosition:  req.JobPosition,
		PasswordHash: string(hash),
	}
	return s.repo.Create(ctx, employee)
}

// Login verifies the name/surname/password triple and returns the employee.
func (s *EmployeeService) Login(ctx context.Context, req entity.LoginEmployeeRequest) (entity.Employee, error) {
	employee, err := s.repo.GetByName(ctx, req.Name, req.Surname)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Info("login failed: unknown employee",
				zap.String("name", req.Name), zap.String("surname", req.Surname))
			return entity.Employee{}, ErrInvalidCredentials
		}
		return entity.Employee{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Info("login failed: wrong password",
			zap.String("name", req.Name), zap.String("surname", req.Surname))
		return entity.Employee{}, ErrInvalidCredentials
	}
	return employee, nil
}

func (s *EmployeeService) Get(ctx context.Context, id uuid.UUID) (entity.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces the employee's profile fields. The stored credential hash
// is kept as-is unless a new password is supplied.
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req entity.RegisterEmployeeRequest) (entity.Employee, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Employee{}, err
	}

	current.Name = req.Name
	current.Surname = req.Surname
	current.JobPosition = req.JobPosition
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return entity.Employee{}, err
		}
		current.PasswordHash = string(hash)
	}
	return s.repo.Update(ctx, current)
}

func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, params query.Params) (query.Page[entity.Employee], error) {
	spec, err := query.Build(params, query.EmployeeFields, query.EmployeeDefaultSort)
	if err != nil {
		return query.Page[entity.Employee]{}, err
	}
	return s.repo.List(ctx, spec)
}
