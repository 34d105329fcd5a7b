package factory

import (
	"context"

	"github.com/mcoot/players/internal/storage/memory"
	"github.com/mcoot/players/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Memory is the concrete store behind App.Storage
	Memory *memory.Storage
}

// NewTestApp creates an App backed by a fresh in-memory store holding the
// starting eleven
func NewTestApp() *TestApp {
	store := memory.New()
	app := newWithDependencies(store, testutil.NopLogger())
	if err := app.Seed(context.Background()); err != nil {
		panic(err)
	}

	return &TestApp{
		App:    app,
		Memory: store,
	}
}

// NewEmptyTestApp creates an App backed by an empty in-memory store
func NewEmptyTestApp() *TestApp {
	store := memory.New()
	return &TestApp{
		App:    newWithDependencies(store, testutil.NopLogger()),
		Memory: store,
	}
}
