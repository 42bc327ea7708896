//go:build wireinject
// +build wireinject

package list

import (
	"database/sql"
	"time"

	"github.com/google/wire"

	"github.com/ttkcys/milliyetciler/internal/list/domain"
	"github.com/ttkcys/milliyetciler/internal/list/repository"
	"github.com/ttkcys/milliyetciler/internal/list/usecase/command"
	"github.com/ttkcys/milliyetciler/internal/list/usecase/query"
)

// ProvideListStore provides the traced list store
func ProvideListStore(db *sql.DB) domain.ListStore {
	return repository.NewTracingListStore(repository.NewSQLListStore(db))
}

// ProvideSharedLocks provides the per-key lock table shared by the
// mutation handlers
func ProvideSharedLocks() *command.SharedLocks {
	return command.NewSharedLocks()
}

// Command Handlers Providers
func ProvideAddItemHandler(store domain.ListStore, publisher domain.EventPublisher, locks *command.SharedLocks, opTimeout time.Duration) *command.AddItemHandler {
	return command.NewAddItemHandler(store, publisher, locks, opTimeout)
}

func ProvideRemoveItemHandler(store domain.ListStore, publisher domain.EventPublisher, locks *command.SharedLocks, opTimeout time.Duration) *command.RemoveItemHandler {
	return command.NewRemoveItemHandler(store, publisher, locks, opTimeout)
}

// Query Handlers Providers
func ProvideGetListHandler(store domain.ListStore, opTimeout time.Duration) *query.GetListHandler {
	return query.NewGetListHandler(store, opTimeout)
}

// CommandHandlers is a struct that holds all command handlers
type CommandHandlers struct {
	AddHandler    *command.AddItemHandler
	RemoveHandler *command.RemoveItemHandler
}

// QueryHandlers is a struct that holds all query handlers
type QueryHandlers struct {
	GetListHandler *query.GetListHandler
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
) *CommandHandlers {
	return &CommandHandlers{
		AddHandler:    addHandler,
		RemoveHandler: removeHandler,
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(
	getListHandler *query.GetListHandler,
) *QueryHandlers {
	return &QueryHandlers{
		GetListHandler: getListHandler,
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideListStore,
	ProvideSharedLocks,
)

var CommandHandlerSet = wire.NewSet(
	ProvideAddItemHandler,
	ProvideRemoveItemHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetListHandler,
	ProvideQueryHandlers,
)

var AllSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)
