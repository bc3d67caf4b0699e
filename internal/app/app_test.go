package app_test

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seek/internal/adapters/logger"
	"go.trai.ch/seek/internal/app"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/seek/internal/core/ports/mocks"
	"go.trai.ch/seek/internal/engine/dispatcher"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockConfigLoader
	searcher *mocks.MockSearcher
	reporter *mocks.MockReporter
	spawner  *mocks.MockSpawner
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logger.NewWithWriter(io.Discard)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		searcher: mocks.NewMockSearcher(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
		spawner:  mocks.NewMockSpawner(ctrl),
	}
	disp := dispatcher.NewDispatcher(log, map[domain.SpawnMode]ports.Spawner{
		domain.ModeGoroutine: dispatcher.NewLocalSpawner(f.searcher, f.reporter),
		domain.ModeProcess:   f.spawner,
	})
	f.app = app.New(f.loader, disp, dispatcher.NewReaper(log), f.searcher, f.reporter, nil, log)
	return f
}

func doneTask(ctrl *gomock.Controller, id domain.TaskID, target string, err error) *mocks.MockTask {
	task := mocks.NewMockTask(ctrl)
	task.EXPECT().ID().Return(id).AnyTimes()
	task.EXPECT().Target().Return(target).AnyTimes()
	task.EXPECT().Wait().Return(err)
	return task
}

func TestApp_Run_ReportsEveryName(t *testing.T) {
	f := newFixture(t)

	cfg := domain.SearchConfig{
		Root:    "/srv",
		Names:   []string{"a.txt", "b.txt"},
		Options: domain.Options{Recursive: true, Mode: domain.ModeGoroutine, Color: domain.ColorNever},
	}

	f.reporter.EXPECT().SetColor(domain.ColorNever)
	f.searcher.EXPECT().Search(gomock.Any(), cfg.Request("a.txt")).Return("/srv/x/a.txt", nil)
	f.searcher.EXPECT().Search(gomock.Any(), cfg.Request("b.txt")).Return("", nil)

	results := make(chan domain.SearchResult, 2)
	f.reporter.EXPECT().Report(gomock.Any()).DoAndReturn(func(res domain.SearchResult) error {
		results <- res
		return nil
	}).Times(2)

	require.NoError(t, f.app.Run(context.Background(), cfg))
	close(results)

	byTarget := map[string]domain.SearchResult{}
	for res := range results {
		byTarget[res.Target] = res
	}
	assert.Equal(t, "/srv/x/a.txt", byTarget["a.txt"].Path)
	assert.Equal(t, domain.OutcomeNotFound, byTarget["b.txt"].Outcome())
}

func TestApp_Run_NoNames(t *testing.T) {
	f := newFixture(t)

	err := f.app.Run(context.Background(), domain.SearchConfig{Root: "/srv", Options: domain.DefaultOptions()})
	assert.NoError(t, err)
}

func TestApp_Run_DispatchFailureStillReapsStartedTasks(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)

	cfg := domain.SearchConfig{
		Root:    "/srv",
		Names:   []string{"a", "b"},
		Options: domain.Options{Mode: domain.ModeProcess, Color: domain.ColorAuto},
	}

	f.reporter.EXPECT().SetColor(domain.ColorAuto)
	first := doneTask(ctrl, 100, "a", nil)
	gomock.InOrder(
		f.spawner.EXPECT().Spawn(gomock.Any(), cfg.Request("a")).Return(first, nil),
		f.spawner.EXPECT().Spawn(gomock.Any(), cfg.Request("b")).Return(nil, errors.New("fork failed")),
	)

	err := f.app.Run(context.Background(), cfg)
	require.ErrorIs(t, err, domain.ErrDispatchFailed)
	assert.NotErrorIs(t, err, domain.ErrTaskFailed)
}

func TestApp_Run_TaskFailure(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)

	cfg := domain.SearchConfig{
		Root:    "/srv",
		Names:   []string{"a"},
		Options: domain.Options{Mode: domain.ModeProcess, Color: domain.ColorAuto},
	}

	f.reporter.EXPECT().SetColor(domain.ColorAuto)
	f.spawner.EXPECT().Spawn(gomock.Any(), cfg.Request("a")).
		Return(doneTask(ctrl, 100, "a", errors.New("exit status 2")), nil)

	err := f.app.Run(context.Background(), cfg)
	require.ErrorIs(t, err, domain.ErrTaskFailed)
	assert.Contains(t, err.Error(), "exit status 2")
}

func TestApp_LoadOptions(t *testing.T) {
	f := newFixture(t)

	want := domain.Options{Recursive: true, Mode: domain.ModeProcess, Color: domain.ColorNever}
	f.loader.EXPECT().Load(".seek.yaml", false).Return(want, nil)

	got, err := f.app.LoadOptions(".seek.yaml", false)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApp_LoadOptions_Error(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("custom.yaml", true).
		Return(domain.Options{}, errors.Join(domain.ErrConfigReadFailed, os.ErrNotExist))

	_, err := f.app.LoadOptions("custom.yaml", true)
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestApp_RunWorker(t *testing.T) {
	f := newFixture(t)
	lockPath := t.TempDir() + "/out.lock"

	req := domain.SearchRequest{Root: "/srv", Target: "a.txt", CaseInsensitive: true}
	gomock.InOrder(
		f.reporter.EXPECT().SetColor(domain.ColorNever),
		f.reporter.EXPECT().ShareOutput(lockPath),
	)
	f.searcher.EXPECT().Search(gomock.Any(), req).Return("/srv/A.TXT", nil)
	f.reporter.EXPECT().Report(domain.SearchResult{
		Task:   domain.TaskID(os.Getpid()),
		Target: "a.txt",
		Path:   "/srv/A.TXT",
	}).Return(nil)

	require.NoError(t, f.app.RunWorker(context.Background(), req, domain.ColorNever, lockPath))
}

func TestApp_RunWorker_ReportFailure(t *testing.T) {
	f := newFixture(t)

	req := domain.SearchRequest{Root: "/srv", Target: "a.txt"}
	f.reporter.EXPECT().SetColor(domain.ColorAuto)
	f.searcher.EXPECT().Search(gomock.Any(), req).Return("", nil)
	f.reporter.EXPECT().Report(gomock.Any()).Return(errors.Join(domain.ErrReportFailed, io.ErrClosedPipe))

	err := f.app.RunWorker(context.Background(), req, domain.ColorAuto, "")
	require.ErrorIs(t, err, domain.ErrReportFailed)
}
