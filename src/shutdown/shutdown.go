package shutdown

import (
	"log/slog"
	"os"
	"sync"
)

var DefaultShutdown = New(os.Exit)

func Add(fn func()) {
	DefaultShutdown.Add(fn)
}

// Exit runs the registered hooks of the default instance and ends the process.
func Exit(code int) {
	DefaultShutdown.Exit(code)
}

// Abort ends the process immediately. Registered hooks are skipped.
func Abort(code int) {
	DefaultShutdown.Abort(code)
}

type Shutdown struct {
	hooks  []func()
	mutex  *sync.Mutex
	osExit func(code int)
	logger *slog.Logger
}

func New(osExit func(code int)) *Shutdown {
	if osExit == nil {
		osExit = os.Exit
	}
	return &Shutdown{
		hooks:  []func(){},
		mutex:  &sync.Mutex{},
		osExit: osExit,
		logger: slog.Default().With("component", "shutdown"),
	}
}

func (s *Shutdown) SetLogger(logger *slog.Logger) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.logger = logger
}

func (s *Shutdown) Add(fn func()) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Len returns the number of hooks that have not run yet.
func (s *Shutdown) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.hooks)
}

// ExecuteHooks runs all hooks concurrently and waits for them. The hook list is drained so a
// later Exit does not run them twice.
func (s *Shutdown) ExecuteHooks() {
	s.mutex.Lock()
	hooks := s.hooks
	s.hooks = []func(){}
	logger := s.logger
	s.mutex.Unlock()

	var wg sync.WaitGroup
	for _, fn := range hooks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	wg.Wait()
	logger.Debug("finished shutdown routines", "hooks", len(hooks))
}

func (s *Shutdown) Exit(code int) {
	s.ExecuteHooks()
	s.osExit(code)
}

func (s *Shutdown) Abort(code int) {
	s.mutex.Lock()
	osExit := s.osExit
	s.mutex.Unlock()
	osExit(code)
}
