package repository

import (
	"context"
	"database/sql"
)

// CrewRepo handles the crew roster.
type CrewRepo struct {
	db *sql.DB
}

func NewCrewRepo(db *sql.DB) *CrewRepo {
	return &CrewRepo{db: db}
}

func (r *CrewRepo) Upsert(ctx context.Context, c CrewMember) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO crew(id, name, role, status, sort_order)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 role=excluded.role,
	 status=excluded.status,
	 sort_order=excluded.sort_order;
	`, c.ID, c.Name, c.Role, c.Status, c.SortOrder)
	return err
}

func (r *CrewRepo) List(ctx context.Context) ([]CrewMember, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, role, status, sort_order FROM crew ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CrewMember
	for rows.Next() {
		var c CrewMember
		if err := rows.Scan(&c.ID, &c.Name, &c.Role, &c.Status, &c.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CrewRepo) ByName(ctx context.Context, name string) (*CrewMember, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, role, status, sort_order FROM crew WHERE name = ?`, name)
	var c CrewMember
	if err := row.Scan(&c.ID, &c.Name, &c.Role, &c.Status, &c.SortOrder); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CrewRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE crew SET status = ? WHERE id = ?`, status, id)
	return err
}
