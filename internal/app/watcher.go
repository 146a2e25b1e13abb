package app

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/five82/zcalc/internal/sampler"
	"github.com/five82/zcalc/internal/state"
)

const defaultSettle = 100 * time.Millisecond

// WatchOptions configure StartWatcher.
type WatchOptions struct {
	Path      string
	Parameter float64
	// Settle coalesces bursts of writes (editors often save in several
	// steps). Zero uses 100ms; negative resamples on every event.
	Settle time.Duration
}

// StartWatcher samples the equation file once, then resamples it into store
// every time the file changes. It returns immediately; the returned stop
// func closes the watcher and waits for the goroutine to exit.
func StartWatcher(ctx context.Context, store *state.Store, smp *sampler.Sampler, opts WatchOptions) (func(), error) {
	path, err := filepath.Abs(strings.TrimSpace(opts.Path))
	if err != nil {
		return nil, fmt.Errorf("resolve equation file: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat equation file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("cannot watch directory %s, must be a file", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory so atomic saves (write temp, rename over) are seen.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	settle := opts.Settle
	if settle == 0 {
		settle = defaultSettle
	}

	reload(store, smp, path, opts.Parameter)

	done := make(chan struct{})
	go func() {
		defer close(done)
		watchLoop(ctx, fw, path, settle, func() {
			reload(store, smp, path, opts.Parameter)
		})
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			if err := fw.Close(); err != nil {
				log.Printf("close watcher: %v", err)
			}
			<-done
		})
	}
	return stop, nil
}

func watchLoop(ctx context.Context, fw *fsnotify.Watcher, path string, settle time.Duration, fire func()) {
	var timer *time.Timer
	var pending <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !relevant(event, path) {
				continue
			}
			if settle < 0 {
				fire()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(settle)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(settle)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			fire()

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func relevant(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func reload(store *state.Store, smp *sampler.Sampler, path string, parameter float64) {
	equation, err := ReadEquation(path)
	if err != nil {
		store.Update(sampler.Result{}, parameter, err)
		log.Printf("equation reload failed: %v", err)
		return
	}
	g := sampler.GraphState{Equation: equation}.WithParameter(parameter)
	res := smp.SampleGraph(g)
	store.Update(res, g.ParameterA, nil)
	if res.Err != nil {
		log.Printf("equation %q: %v", equation, res.Err)
		return
	}
	log.Printf("resampled %q: %d points, %d dropped", res.Equation, len(res.Points), res.Dropped)
}

// ReadEquation returns the first line of path that is neither blank nor a
// # comment.
func ReadEquation(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open equation file: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read equation file: %w", err)
	}
	return "", fmt.Errorf("equation file %s is empty", path)
}
