package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brightfold/agency-ops/pkg/db"
)

// GetStaff retrieves all staff records
func (d *DB) GetStaff(ctx context.Context) ([]db.Staff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, status, monthly_available_hours
		FROM staff
		ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []db.Staff
	for rows.Next() {
		var s db.Staff
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Status, &s.MonthlyAvailableHours); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}

// GetStaffByID retrieves a single staff record by ID
func (d *DB) GetStaffByID(ctx context.Context, id string) (*db.Staff, error) {
	var s db.Staff
	err := d.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, status, monthly_available_hours
		FROM staff
		WHERE id = $1
	`, id).Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Status, &s.MonthlyAvailableHours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query staff %s: %w", id, err)
	}

	return &s, nil
}
