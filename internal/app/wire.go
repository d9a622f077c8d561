//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/jask/discovery/internal/config"
)

// Initialize wires the console from cfg.
func Initialize(ctx context.Context, cfg config.Config) (*App, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil
}

// InitializeStore wires only the database and services.
func InitializeStore(ctx context.Context, cfg config.Config) (*Store, func(), error) {
	wire.Build(StoreSet)
	return nil, nil, nil
}
