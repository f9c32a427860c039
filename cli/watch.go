package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/clausewitz/loader"
)

type WatchCmd struct {
	Path     string        `help:"Script file or directory to watch." arg:""`
	Debounce time.Duration `help:"Quiet period before a change triggers a re-check." default:"250ms"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	info, err := os.Stat(cmd.Path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addWatchTargets(watcher, cmd.Path, info.IsDir()); err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printInfof(ctx.Stdout, "Watching %s", pathStyle.Render(cmd.Path))

	// First pass before any change arrives.
	cmd.recheck(runCtx, ctx)

	var pending *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-runCtx.Done():
			printInfof(ctx.Stdout, "Stopped watching")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if info.IsDir() && !strings.EqualFold(filepath.Ext(event.Name), loader.DefaultExtension) {
				continue
			}

			// Editors fire bursts of events per save; collapse them.
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(cmd.Debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))

		case <-fire:
			cmd.recheck(runCtx, ctx)
		}
	}
}

// recheck re-parses the watched path and reports the outcome.
func (cmd *WatchCmd) recheck(runCtx context.Context, ctx *kong.Context) {
	check := &CheckCmd{Path: cmd.Path}

	info, err := os.Stat(cmd.Path)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}

	if info.IsDir() {
		_ = check.checkDir(runCtx, ctx)
	} else {
		_ = check.checkFile(runCtx, ctx)
	}
}

// addWatchTargets registers the path with the watcher; directories are
// registered recursively since fsnotify does not descend on its own.
func addWatchTargets(watcher *fsnotify.Watcher, path string, isDir bool) error {
	if !isDir {
		return watcher.Add(path)
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}
