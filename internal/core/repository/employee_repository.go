package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee entity.Employee) (entity.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.Employee, error)
	GetByName(ctx context.Context, name, surname string) (entity.Employee, error)
	Update(ctx context.Context, employee entity.Employee) (entity.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, spec query.Spec) (query.Page[entity.Employee], error)
}

type employeeRepository struct {
	db *sqlx.DB
}

func NewEmployeeRepository(db *sqlx.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

var employeeColumns = []string{"id", "name", "surname", "job_position", "password_hash"}

func (r *employeeRepository) Create(ctx context.Context, employee entity.Employee) (entity.Employee, error) {
	employee.ID = uuid.New()

	sqlStr, args, err := psql.Insert("employees").
		Columns(employeeColumns...).
		Values(employee.ID, employee.Name, employee.Surname, employee.JobPosition, employee.PasswordHash).
		ToSql()
	if err != nil {
		return entity.Employee{}, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return entity.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return employee, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Employee, error) {
	sqlStr, args, err := psql.Select(employeeColumns...).
		From("employees").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return entity.Employee{}, fmt.Errorf("build select query: %w", err)
	}

	var employee entity.Employee
	if err := r.db.GetContext(ctx, &employee, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Employee{}, NotFoundError{Kind: "Employee", ID: id}
		}
		return entity.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return employee, nil
}

// GetByName looks an employee up by the name/surname pair used as the login
// identity.
func (r *employeeRepository) GetByName(ctx context.Context, name, surname string) (entity.Employee, error) {
	sqlStr, args, err := psql.Select(employeeColumns...).
		From("employees").
		Where(sq.Eq{"name": name, "surname": surname}).
		ToSql()
	if err != nil {
		return entity.Employee{}, fmt.Errorf("build select query: %w", err)
	}

	var employee entity.Employee
	if err := r.db.GetContext(ctx, &employee, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Employee{}, NotFoundError{Kind: "Employee"}
		}
		return entity.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return employee, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee entity.Employee) (entity.Employee, error) {
	sqlStr, args, err := psql.Update("employees").
		Set("name", employee.Name).
		Set("surname", employee.Surname).
		Set("job_position", employee.JobPosition).
		Set("password_hash", employee.PasswordHash).
		Where(sq.Eq{"id": employee.ID}).
		ToSql()
	if err != nil {
		return entity.Employee{}, fmt.Errorf("build update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return entity.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.Employee{}, NotFoundError{Kind: "Employee", ID: employee.ID}
	}
	return employee, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := psql.Delete("employees").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		// rents.employee_id is ON DELETE RESTRICT.
		if isForeignKeyViolation(err) {
			return fmt.Errorf("employee %s: %w", id, ErrDeleteRestricted)
		}
		return fmt.Errorf("delete employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return NotFoundError{Kind: "Employee", ID: id}
	}
	return nil
}

func (r *employeeRepository) List(ctx context.Context, spec query.Spec) (query.Page[entity.Employee], error) {
	defer observeDB("employees.List", time.Now())

	countSQL, countArgs, err := spec.Filter(psql.Select("COUNT(*)").From("employees")).ToSql()
	if err != nil {
		return query.Page[entity.Employee]{}, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return query.Page[entity.Employee]{}, fmt.Errorf("count employees: %w", err)
	}

	listSQL, listArgs, err := spec.Apply(psql.Select(employeeColumns...).From("employees")).ToSql()
	if err != nil {
		return query.Page[entity.Employee]{}, fmt.Errorf("build list query: %w", err)
	}

	var employees []entity.Employee
	if err := r.db.SelectContext(ctx, &employees, listSQL, listArgs...); err != nil {
		return query.Page[entity.Employee]{}, fmt.Errorf("list employees: %w", err)
	}
	return query.NewPage(employees, total, spec.Page(), spec.PageSize()), nil
}
