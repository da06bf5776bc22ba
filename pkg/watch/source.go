package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when a non-positive delay is given.
const DefaultDebounce = 100 * time.Millisecond

// Kind classifies an Event.
type Kind int

const (
	// Changed means the file content may have changed.
	Changed Kind = iota + 1
	// Removed means the file was removed or renamed away.
	Removed
)

func (k Kind) String() string {
	switch k {
	case Changed:
		return "changed"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is a change notification for the watched path.
type Event struct {
	Kind Kind
	Path string
	Time time.Time
}

// Source delivers events for one path.
type Source interface {
	Events() <-chan Event
	Errors() <-chan error
	Close() error
}

// FSNotifySource implements Source using fsnotify.
type FSNotifySource struct {
	watcher *fsnotify.Watcher
	path    string
	delay   time.Duration

	events chan Event
	errors chan error

	mu       sync.Mutex
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewFSNotifySource starts watching path. The file must exist.
func NewFSNotifySource(path string, debounce time.Duration) (*FSNotifySource, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWatch, "failed to resolve %s", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrWatch, "failed to create watcher")
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, errors.Wrapf(err, errors.ErrWatch, "failed to watch %s", filepath.Dir(absPath))
	}

	s := &FSNotifySource{
		watcher: fsw,
		path:    absPath,
		delay:   debounce,
		events:  make(chan Event, 16),
		errors:  make(chan error, 16),
		closeCh: make(chan struct{}),
	}

	s.closedWg.Add(1)
	go s.processLoop()

	return s, nil
}

// Path returns the absolute watched path.
func (s *FSNotifySource) Path() string { return s.path }

// Events returns the event channel. It is closed by Close.
func (s *FSNotifySource) Events() <-chan Event { return s.events }

// Errors returns the error channel. It is closed by Close.
func (s *FSNotifySource) Errors() <-chan error { return s.errors }

// Close stops the watcher.
func (s *FSNotifySource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.closeCh)
	s.mu.Unlock()

	s.closedWg.Wait()

	close(s.events)
	close(s.errors)

	return s.watcher.Close()
}

func (s *FSNotifySource) processLoop() {
	defer s.closedWg.Done()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-s.closeCh:
			return

		case <-pending:
			pending = nil
			s.send(Event{Kind: Changed, Path: s.path, Time: time.Now()})

		case fsEvent, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			switch classify(fsEvent, s.path) {
			case Changed:
				if timer == nil {
					timer = time.NewTimer(s.delay)
				} else {
					timer.Stop()
					timer.Reset(s.delay)
				}
				pending = timer.C
			case Removed:
				if timer != nil {
					timer.Stop()
				}
				pending = nil
				s.send(Event{Kind: Removed, Path: s.path, Time: time.Now()})
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			select {
			case s.errors <- err:
			default:
			}
		}
	}
}

func (s *FSNotifySource) send(e Event) {
	select {
	case s.events <- e:
	case <-s.closeCh:
	}
}

// classify maps an fsnotify event on the watched directory to a Kind, or 0
// when the event concerns another file or carries nothing of interest.
func classify(e fsnotify.Event, path string) Kind {
	if filepath.Clean(e.Name) != path {
		return 0
	}
	switch {
	case e.Op.Has(fsnotify.Remove), e.Op.Has(fsnotify.Rename):
		return Removed
	case e.Op.Has(fsnotify.Write), e.Op.Has(fsnotify.Create):
		return Changed
	default:
		return 0
	}
}
