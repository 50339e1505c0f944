package netlist

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/hydrograph/streamnet/network"
)

// Generation identifies one successful load of the network file.
type Generation struct {
	// ID is unique per load.
	ID string

	// Seq increases by one per load, starting at 1.
	Seq uint64

	// Loaded is when the load completed.
	Loaded time.Time
}

// Loader keeps a live network in sync with a document on disk. The
// network type itself is single-threaded; the loader never mutates a
// published network, it builds a fresh one per load and swaps the
// handle under its own lock. Callers must treat the returned network as
// read-only or coordinate their own mutation.
type Loader struct {
	path string
	log  *slog.Logger
	opts []network.Option

	mu       sync.RWMutex
	doc      *Document
	net      *network.Network
	gen      Generation
	onChange []func(Generation, *network.Network)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger routes load and watch events to l. Default discards.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// WithNetworkOptions appends options to every Build the loader runs,
// after the document's own conventions.
func WithNetworkOptions(opts ...network.Option) LoaderOption {
	return func(ld *Loader) { ld.opts = opts }
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string, opts ...LoaderOption) (*Loader, error) {
	ld := &Loader{
		path: path,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(ld)
	}

	doc, net, err := ld.load()
	if err != nil {
		return nil, err
	}
	ld.doc = doc
	ld.net = net
	ld.gen = ld.nextGeneration()
	ld.log.Info("network file loaded",
		"path", ld.path, "generation", ld.gen.ID, "nodes", net.Len())

	return ld, nil
}

// Network returns the most recently built network.
func (ld *Loader) Network() *network.Network {
	ld.mu.RLock()
	defer ld.mu.RUnlock()

	return ld.net
}

// Document returns the most recently parsed document.
func (ld *Loader) Document() *Document {
	ld.mu.RLock()
	defer ld.mu.RUnlock()

	return ld.doc
}

// Generation returns the stamp of the most recent successful load.
func (ld *Loader) Generation() Generation {
	ld.mu.RLock()
	defer ld.mu.RUnlock()

	return ld.gen
}

// OnChange registers a callback invoked after every successful reload,
// initial load excluded. Callbacks run on the reloading goroutine.
func (ld *Loader) OnChange(fn func(Generation, *network.Network)) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.onChange = append(ld.onChange, fn)
}

// Watch starts a background goroutine that rebuilds the network when
// the file is written. A save that fails to parse or build is logged
// and the previous network keeps serving. Call the returned stop
// function to clean up.
func (ld *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("netlist: watcher: %w", err)
	}
	if err := w.Add(ld.path); err != nil {
		w.Close()

		return nil, fmt.Errorf("netlist: watch %s: %w", ld.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := ld.Reload(); err != nil {
						ld.log.Warn("network file reload failed; keeping previous network",
							"path", ld.path, "error", err)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				ld.log.Warn("network file watcher error", "path", ld.path, "error", err)
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}

// Reload forces an immediate re-read of the file. On failure the
// previous network stays current and the error is returned.
func (ld *Loader) Reload() (*network.Network, error) {
	doc, net, err := ld.load()
	if err != nil {
		return nil, err
	}

	ld.mu.Lock()
	ld.doc = doc
	ld.net = net
	ld.gen = ld.nextGeneration()
	gen := ld.gen
	callbacks := make([]func(Generation, *network.Network), len(ld.onChange))
	copy(callbacks, ld.onChange)
	ld.mu.Unlock()

	ld.log.Info("network file reloaded",
		"path", ld.path, "generation", gen.ID, "seq", gen.Seq, "nodes", net.Len())
	for _, fn := range callbacks {
		fn(gen, net)
	}

	return net, nil
}

func (ld *Loader) load() (*Document, *network.Network, error) {
	doc, err := ReadFile(ld.path)
	if err != nil {
		return nil, nil, err
	}
	net, err := Build(doc, ld.opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("netlist: build %s: %w", ld.path, err)
	}

	return doc, net, nil
}

// nextGeneration stamps a load. Callers hold ld.mu or are still
// constructing the loader.
func (ld *Loader) nextGeneration() Generation {
	return Generation{
		ID:     uuid.New().String(),
		Seq:    ld.gen.Seq + 1,
		Loaded: time.Now(),
	}
}
