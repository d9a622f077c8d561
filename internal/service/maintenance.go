package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/discovery/internal/database"
)

// MaintenanceService houses destructive/ops actions surfaced through the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// ClearDoorLog wipes the door request history. The crew roster is kept.
func (s *MaintenanceService) ClearDoorLog(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM door_requests"); err != nil {
			return fmt.Errorf("clear door_requests: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
