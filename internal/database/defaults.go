package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/discovery/internal/database/repository"
)

// CrewID derives the stable id of a crew member from their name.
func CrewID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("crew:"+name)).String()
}

// SeedDefaults ensures the Discovery One crew exists for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	crewRepo := repository.NewCrewRepo(db)
	existing, err := crewRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	defaults := []struct {
		name, role, status string
	}{
		{"Dave Bowman", "Mission Commander", "awake"},
		{"Frank Poole", "Deputy Commander", "awake"},
		{"Victor Kaminsky", "Survey Team", "hibernating"},
		{"Jack Kimball", "Survey Team", "hibernating"},
		{"Charles Hunter", "Survey Team", "hibernating"},
	}
	return WithTx(db, func(tx *sql.Tx) error {
		for idx, d := range defaults {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO crew(id, name, role, status, sort_order) VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING
			`, CrewID(d.name), d.name, d.role, d.status, idx); err != nil {
				return err
			}
		}
		return nil
	})
}
