package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brightfold/agency-ops/pkg/db"
)

// GetBriefs retrieves all brief records with their assigned staff
func (d *DB) GetBriefs(ctx context.Context) ([]db.Brief, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, title, client_id, status, due_date, shoot_hours, edit_hours
		FROM brief
		ORDER BY due_date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query briefs: %w", err)
	}
	defer rows.Close()

	var briefs []db.Brief
	for rows.Next() {
		var b db.Brief
		if err := rows.Scan(&b.ID, &b.Title, &b.ClientID, &b.Status, &b.DueDate, &b.ShootHours, &b.EditHours); err != nil {
			return nil, fmt.Errorf("failed to scan brief: %w", err)
		}
		briefs = append(briefs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating briefs: %w", err)
	}

	if err := d.loadAssignments(ctx, briefs); err != nil {
		return nil, err
	}

	return briefs, nil
}

// GetBriefByID retrieves a single brief record with its assigned staff
func (d *DB) GetBriefByID(ctx context.Context, id string) (*db.Brief, error) {
	var b db.Brief
	err := d.pool.QueryRow(ctx, `
		SELECT id, title, client_id, status, due_date, shoot_hours, edit_hours
		FROM brief
		WHERE id = $1
	`, id).Scan(&b.ID, &b.Title, &b.ClientID, &b.Status, &b.DueDate, &b.ShootHours, &b.EditHours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query brief %s: %w", id, err)
	}

	briefs := []db.Brief{b}
	if err := d.loadAssignments(ctx, briefs); err != nil {
		return nil, err
	}

	return &briefs[0], nil
}

// AddBriefAssignment assigns a staff member to a brief. Assigning the
// same pair twice is a no-op.
func (d *DB) AddBriefAssignment(ctx context.Context, briefID, staffID string) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO brief_staff (brief_id, staff_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, briefID, staffID)
	if err != nil {
		return fmt.Errorf("failed to add assignment: %w", err)
	}
	return nil
}

// RemoveBriefAssignment removes a staff member from a brief
func (d *DB) RemoveBriefAssignment(ctx context.Context, briefID, staffID string) error {
	_, err := d.pool.Exec(ctx, `
		DELETE FROM brief_staff
		WHERE brief_id = $1 AND staff_id = $2
	`, briefID, staffID)
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return nil
}

// loadAssignments populates AssignedStaff for each brief in place
func (d *DB) loadAssignments(ctx context.Context, briefs []db.Brief) error {
	if len(briefs) == 0 {
		return nil
	}

	ids := make([]string, len(briefs))
	index := make(map[string]int, len(briefs))
	for i, b := range briefs {
		ids[i] = b.ID
		index[b.ID] = i
	}

	rows, err := d.pool.Query(ctx, `
		SELECT brief_id, staff_id
		FROM brief_staff
		WHERE brief_id = ANY($1)
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to query brief assignments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var briefID, staffID string
		if err := rows.Scan(&briefID, &staffID); err != nil {
			return fmt.Errorf("failed to scan brief assignment: %w", err)
		}
		if i, ok := index[briefID]; ok {
			briefs[i].AssignedStaff = append(briefs[i].AssignedStaff, staffID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating brief assignments: %w", err)
	}

	return nil
}
