package evdev

import (
	"fmt"
	"sync"

	"github.com/holoplot/go-evdev"
	"github.com/rs/zerolog"

	"github.com/dshills/keytap/input"
)

// EV_KEY event values reported by the kernel.
const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// Device is the subset of an evdev input device the surface reads from.
type Device interface {
	ReadOne() (*evdev.InputEvent, error)
}

// Surface reads key events from an evdev device and delivers them as
// press and release events. It embeds an Emitter, so registries attach
// to it directly.
type Surface struct {
	*input.Emitter

	dev    Device
	closer func() error
	log    zerolog.Logger

	closeOnce sync.Once
	done      chan struct{}
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

// Open opens an evdev device node (e.g. /dev/input/event3) and starts
// reading key events from it.
func Open(path string, opts ...Option) (*Surface, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}

	s := NewFromDevice(dev, opts...)
	s.closer = dev.Close
	return s, nil
}

// NewFromDevice starts a surface reading from an already open device.
// Closing the surface does not close the device.
func NewFromDevice(dev Device, opts ...Option) *Surface {
	s := &Surface{
		Emitter: input.NewEmitter(),
		dev:     dev,
		log:     zerolog.Nop(),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.wg.Add(1)
	go s.readLoop()
	return s
}

// readLoop reads device events until the device errors or the surface is
// closed. Non-key events and unmapped codes are skipped.
func (s *Surface) readLoop() {
	defer s.wg.Done()

	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			select {
			case <-s.done:
				// Expected: Close interrupted the read.
			default:
				s.log.Error().Err(err).Msg("device read failed, stopping")
			}
			return
		}

		select {
		case <-s.done:
			return
		default:
		}

		if ev == nil || ev.Type != evdev.EV_KEY {
			continue
		}

		code, ok := codeFor(ev.Code)
		if !ok {
			continue
		}

		switch ev.Value {
		case valuePress, valueRepeat:
			s.EmitPress(code)
		case valueRelease:
			s.EmitRelease(code)
		}
	}
}

// Close stops event delivery and, for surfaces created with Open, closes
// the underlying device to unblock the read loop. For NewFromDevice
// surfaces the caller owns the device; the loop exits on the next read.
func (s *Surface) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		if s.closer != nil {
			err = s.closer()
			s.wg.Wait()
		}
	})
	return err
}
