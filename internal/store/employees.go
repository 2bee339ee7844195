package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/founddesk/founddesk/internal/model"
)

// CreateEmployee creates a new staff member.
func CreateEmployee(ctx context.Context, db *sql.DB, firstName, lastName, position string) (*model.Employee, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, fmt.Errorf("%w: employee name required", model.ErrValidation)
	}
	if strings.TrimSpace(position) == "" {
		return nil, fmt.Errorf("%w: position required", model.ErrValidation)
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO employees (first_name, last_name, position) VALUES (?, ?, ?)`,
		firstName, lastName, position,
	)
	if err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting employee id: %w", err)
	}

	return GetEmployee(ctx, db, id)
}

// GetEmployee returns an employee by ID, or nil if it does not exist.
func GetEmployee(ctx context.Context, db *sql.DB, id int64) (*model.Employee, error) {
	e := &model.Employee{}
	err := db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, position, items_managed
		 FROM employees WHERE id = ?`, id,
	).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Position, &e.ItemsManaged)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting employee: %w", err)
	}
	return e, nil
}

// ListEmployees returns all employees, most items managed first.
func ListEmployees(ctx context.Context, db *sql.DB) ([]model.Employee, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, first_name, last_name, position, items_managed
		 FROM employees ORDER BY items_managed DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Position, &e.ItemsManaged); err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// DeleteEmployee removes an employee. Claims they handled keep existing
// with handled_by unset (ON DELETE SET NULL).
func DeleteEmployee(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM employees WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deletion result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: employee %d", model.ErrNotFound, id)
	}
	return nil
}
