package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flauncher/internal/catalog"
	"flauncher/internal/config"
	"flauncher/internal/desktop"
	"flauncher/internal/discovery"
	"flauncher/internal/exec"
	"flauncher/internal/history"
	"flauncher/internal/logger"
	"flauncher/internal/paths"
	"flauncher/internal/system"
	"flauncher/internal/tui"
	"flauncher/internal/version"
)

// Execute runs one launcher session and returns the process exit code.
func Execute(ctx context.Context, opts Options) int {
	if opts.Help {
		PrintHelp()
		return 0
	}
	if opts.Version {
		fmt.Println(version.String())
		return 0
	}

	conf, err := config.Load(opts.ConfigPath, paths.GetConfigFilePath())
	if err != nil {
		logger.Error(ctx, "%v", err)
		return 1
	}
	conf = opts.Apply(conf)
	if err := conf.Validate(); err != nil {
		logger.Error(ctx, "Invalid option: %v", err)
		return 1
	}
	logger.SetVerbosity(conf.Verbose)
	if conf.Path != "" {
		logger.Debug(ctx, "Loaded configuration from '{{_File_}}%s{{|-|}}'", conf.Path)
	}

	lock, err := system.AcquireLock(ctx, paths.GetLockFilePath())
	if err != nil {
		if errors.Is(err, system.ErrAlreadyRunning) {
			logger.Error(ctx, "{{_ApplicationName_}}%s{{|-|}} is already running.", version.ApplicationName)
		} else {
			logger.Error(ctx, "Failed to acquire lock: %v", err)
		}
		return 1
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn(ctx, "Failed to release lock: %v", err)
		}
	}()

	if err := session(ctx, conf); err != nil {
		if errors.Is(err, errHistory) {
			// deferred releases still run while Fatal unwinds
			logger.Fatal(ctx, "%v", err)
		}
		logger.Error(ctx, "%v", err)
		return 1
	}
	return 0
}

// errHistory marks launch history failures, which end the session.
var errHistory = errors.New("launch history unavailable")

// session discovers entries, lets the user pick one, launches it and counts
// the launch.
func session(ctx context.Context, conf config.AppConfig) error {
	dbPath := paths.GetHistoryDBPath()
	db, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("%w: opening '{{_File_}}%s{{|-|}}': %w", errHistory, dbPath, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn(ctx, "Failed to close history: %v", err)
		}
	}()

	store, err := history.NewCached(db, history.DefaultCacheSize)
	if err != nil {
		return fmt.Errorf("%w: %w", errHistory, err)
	}

	engine := catalog.NewEngine(store, catalog.Options{
		IgnoreCase: conf.CaseInsensitiveSort,
		Wrap:       conf.WrapNavigation,
	})

	walkCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	roots := paths.GetApplicationDirs(conf.Directories...)
	logger.Debug(ctx, "Searching %d application directories", len(roots))
	entries := discovery.Discover(walkCtx, roots)

	entry, chosen, err := tui.Run(ctx, engine, entries, tui.Options{
		HighlightColor: conf.HighlightColor,
		CursorChar:     conf.CursorChar,
		Verbosity:      conf.Verbose,
		TickInterval:   time.Duration(conf.TickIntervalMS) * time.Millisecond,
	})
	if errors.Is(err, catalog.ErrHistory) {
		return fmt.Errorf("%w: %w", errHistory, err)
	}
	if err != nil {
		return err
	}
	if !chosen {
		logger.Debug(ctx, "Nothing selected")
		return nil
	}
	cancel()

	return launch(ctx, conf, store, entry)
}

// launch starts entry and, once the process is running, records the launch.
// An entry whose command cannot be built or started is not counted.
func launch(ctx context.Context, conf config.AppConfig, store history.Store, entry desktop.Entry) error {
	launcher := exec.Launcher{
		TerminalLauncher: conf.TerminalLauncher,
		InheritStdio:     !conf.NoLaunchedInheritStdio,
	}
	cmd, err := launcher.Command(entry)
	if err != nil {
		return fmt.Errorf("cannot launch {{_Entry_}}%s{{|-|}}: %w", entry.Name, err)
	}
	if err := launcher.Start(ctx, cmd); err != nil {
		return err
	}

	count := entry.LaunchCount + 1
	if err := store.Record(entry.Name, count); err != nil {
		return fmt.Errorf("%w: recording launch of {{_Entry_}}%s{{|-|}}: %w", errHistory, entry.Name, err)
	}
	logger.Debug(ctx, "Recorded launch %d of {{_Entry_}}%s{{|-|}}", count, entry.Name)
	return nil
}
