package app

import "github.com/google/wire"

// StoreSet provides the database and the services on top of it.
var StoreSet = wire.NewSet(
	ProvideLogger,
	ProvideDB,
	ProvideCrewRepo,
	ProvideDoorRequestRepo,
	ProvideRoster,
	ProvideDoorLog,
	ProvideMaintenance,
	wire.Struct(new(Store), "*"),
)

// ConsoleSet provides the interactive console.
var ConsoleSet = wire.NewSet(
	ProvideMetrics,
	ProvideMetricsServer,
	ProvideObserver,
	ProvideCatalog,
	ProvideFormatter,
	ProvideKeys,
	ProvideScreenDeps,
	ProvideStack,
	ProvideRouter,
	ProvideEnv,
	ProvideScreens,
	ProvideConsole,
)

// SuperSet is everything App needs.
var SuperSet = wire.NewSet(
	StoreSet,
	ConsoleSet,
	wire.Struct(new(App), "*"),
)
