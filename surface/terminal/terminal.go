package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/keytap/input"
)

// Surface reads key events from a tcell screen and delivers each
// keystroke as a press followed by a synthetic release. It embeds an
// Emitter, so registries attach to it directly.
type Surface struct {
	*input.Emitter

	screen tcell.Screen
	log    zerolog.Logger

	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// Option configures a Surface.
type Option func(*Surface)

// WithLogger sets the diagnostic logger. The default discards output.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Surface) {
		s.log = log
	}
}

// New creates a surface on the process terminal.
func New(opts ...Option) (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen, opts...), nil
}

// NewWithScreen creates a surface on an existing screen. The screen must
// not be initialized; Start initializes it.
func NewWithScreen(screen tcell.Screen, opts ...Option) *Surface {
	s := &Surface{
		Emitter: input.NewEmitter(),
		screen:  screen,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the screen and begins delivering key events.
func (s *Surface) Start() error {
	var err error
	s.startOnce.Do(func() {
		if err = s.screen.Init(); err != nil {
			err = fmt.Errorf("init screen: %w", err)
			return
		}
		s.wg.Add(1)
		go s.pollLoop()
	})
	return err
}

// pollLoop translates screen events until the screen is finalized.
func (s *Surface) pollLoop() {
	defer s.wg.Done()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		keyEv, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		code, ok := codeForKey(keyEv)
		if !ok {
			s.log.Debug().Int("tcell_key", int(keyEv.Key())).Msg("unmapped key event")
			continue
		}

		s.EmitPress(code)
		s.EmitRelease(code)
	}
}

// Stop finalizes the screen and ends event delivery.
func (s *Surface) Stop() {
	s.stopOnce.Do(func() {
		s.screen.Fini()
		s.wg.Wait()
	})
}

// Screen exposes the underlying screen for drawing.
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}
