package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/pkg/clock"
	"github.com/polkiloo/orderdesk/internal/storage/memory"
	"github.com/polkiloo/orderdesk/internal/storage/postgres"
)

func testParams(t *testing.T, dsn string) factoryParams {
	return factoryParams{
		Ctx:       context.Background(),
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{DatabaseURI: dsn},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:     clock.System{},
	}
}

func TestNewFactoryUsesMemoryWithoutDSN(t *testing.T) {
	called := false
	orig := openPostgres
	t.Cleanup(func() { openPostgres = orig })
	openPostgres = func(postgres.Params) (repository.Factory, error) {
		called = true
		return nil, nil
	}

	f, err := newFactory(testParams(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := f.(*memory.Storage); !ok {
		t.Fatalf("expected memory storage, got %T", f)
	}
	if called {
		t.Fatal("postgres must not be opened without a DSN")
	}
}

func TestNewFactoryOpensPostgresWithDSN(t *testing.T) {
	orig := openPostgres
	t.Cleanup(func() { openPostgres = orig })

	var got postgres.Params
	want := memory.New(clock.System{})
	openPostgres = func(p postgres.Params) (repository.Factory, error) {
		got = p
		return want, nil
	}

	f, err := newFactory(testParams(t, "postgres://db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != want {
		t.Fatal("expected factory returned by postgres opener")
	}
	if got.DSN != "postgres://db" || got.Lifecycle == nil || got.Logger == nil {
		t.Fatalf("unexpected params %+v", got)
	}
}

func TestNewFactoryPropagatesOpenError(t *testing.T) {
	orig := openPostgres
	t.Cleanup(func() { openPostgres = orig })
	boom := errors.New("dial failed")
	openPostgres = func(postgres.Params) (repository.Factory, error) { return nil, boom }

	if _, err := newFactory(testParams(t, "postgres://db")); !errors.Is(err, boom) {
		t.Fatalf("expected open error, got %v", err)
	}
}
