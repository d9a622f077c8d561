package repository

import (
	"context"
	"database/sql"
)

// DoorRequestRepo stores every pod bay door request and its outcome.
type DoorRequestRepo struct{ db *sql.DB }

func NewDoorRequestRepo(db *sql.DB) *DoorRequestRepo { return &DoorRequestRepo{db: db} }

func (r *DoorRequestRepo) Insert(ctx context.Context, d DoorRequest) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO door_requests(id, requested_by, outcome, message, requested_at)
	VALUES(?, ?, ?, ?, ?)
	`, d.ID, d.RequestedBy, d.Outcome, d.Message, d.RequestedAt.UTC())
	return err
}

// Recent returns at most limit requests, newest first.
func (r *DoorRequestRepo) Recent(ctx context.Context, limit int) ([]DoorRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, requested_by, outcome, message, requested_at
	FROM door_requests ORDER BY requested_at DESC, rowid DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []DoorRequest
	for rows.Next() {
		var d DoorRequest
		if err := rows.Scan(&d.ID, &d.RequestedBy, &d.Outcome, &d.Message, &d.RequestedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CountByOutcome returns how many requests ended with each outcome.
func (r *DoorRequestRepo) CountByOutcome(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM door_requests GROUP BY outcome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		out[outcome] = n
	}
	return out, rows.Err()
}
