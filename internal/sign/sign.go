// internal/sign/sign.go
package sign

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/tamzrod/viewmarq/internal/codec"
	"github.com/tamzrod/viewmarq/internal/command"
	"github.com/tamzrod/viewmarq/internal/display"
	"github.com/tamzrod/viewmarq/internal/registers"
	"github.com/tamzrod/viewmarq/internal/session"
)

// MaxID is the largest sign ID the <ID> tag carries.
const MaxID = 999

type Config struct {
	ID      int
	Address string
	Backoff time.Duration
	Clock   clockwork.Clock
}

// Sign is one ViewMarq display: its line configuration, the last rendered
// command and the session that carries it.
// A Sign is not safe for concurrent use.
type Sign struct {
	id      int
	store   *display.Store
	pattern display.TestPattern
	cmd     *command.Command
	sess    *session.Session
}

// New builds a sign that owns tr. Nothing is sent until Send.
func New(cfg Config, tr session.Transport) (*Sign, error) {
	if cfg.ID < 0 || cfg.ID > MaxID {
		return nil, fmt.Errorf("sign: id %d out of range 0-%d", cfg.ID, MaxID)
	}

	sess, err := session.New(session.Config{
		Address: cfg.Address,
		Backoff: cfg.Backoff,
		Clock:   cfg.Clock,
	}, tr)
	if err != nil {
		return nil, err
	}

	return &Sign{
		id:      cfg.ID,
		store:   display.NewStore(),
		pattern: display.TestNone,
		cmd:     command.New(""),
		sess:    sess,
	}, nil
}

// ---- line configuration ----

func (s *Sign) SetLine(n int, enabled bool) error                { return s.store.SetLine(n, enabled) }
func (s *Sign) SetColor(n int, c display.Color) error            { return s.store.SetColor(n, c) }
func (s *Sign) SetTextSize(n int, size int) error                { return s.store.SetTextSize(n, size) }
func (s *Sign) SetScrollType(n int, st display.ScrollType) error { return s.store.SetScrollType(n, st) }
func (s *Sign) SetScrollSpeed(n int, sp display.Speed) error     { return s.store.SetScrollSpeed(n, sp) }
func (s *Sign) SetBlink(n int, b display.Blink) error            { return s.store.SetBlink(n, b) }
func (s *Sign) SetText(n int, text string) error                 { return s.store.SetText(n, text) }

// Line returns the configuration of line n (1-based).
func (s *Sign) Line(n int) (display.Line, error) { return s.store.Line(n) }

// SetTestCondition selects a maintenance test pattern. While a pattern other
// than display.TestNone is active, compiled commands carry no lines.
func (s *Sign) SetTestCondition(p display.TestPattern) error {
	if p < display.TestGreen || p > display.TestNone {
		log.Warn().Int("pattern", int(p)).Msg("unknown test pattern")
		return fmt.Errorf("%w: test pattern %d", display.ErrInvalidValue, p)
	}
	s.pattern = p
	return nil
}

func (s *Sign) TestCondition() display.TestPattern { return s.pattern }

// ---- command lifecycle ----

// WriteMessage compiles the line configuration and loads it for sending.
func (s *Sign) WriteMessage() {
	s.load(display.Compile(s.store.Lines(), s.id, s.pattern))
}

// WriteRaw loads a hand-written or previously captured command verbatim.
func (s *Sign) WriteRaw(cmd string) {
	if len(cmd) > registers.MaxCommandChars {
		log.Warn().Int("len", len(cmd)).Msg("raw command longer than sign buffer")
	}
	s.load(cmd)
}

func (s *Sign) load(cmd string) {
	s.cmd.Set(cmd)
	s.sess.Load(codec.PackCommand(cmd))
	log.Debug().Int("chars", len(cmd)).Int("words", s.sess.MessageLength()).Msg("command loaded")
}

// Send pushes the loaded command. A command already sent is not resent.
func (s *Sign) Send(ctx context.Context) error {
	return s.sess.Send(ctx)
}

// Refresh compiles and sends in one step.
func (s *Sign) Refresh(ctx context.Context) error {
	s.WriteMessage()
	return s.Send(ctx)
}

// Reset restores every line to its defaults and clears the loaded command.
func (s *Sign) Reset() {
	s.store.Reset()
	s.cmd.Reset()
	s.sess.Reset()
}

// Message returns the current command string.
func (s *Sign) Message() string { return s.cmd.String() }

// PrintMessage writes the current command string and a newline to w.
func (s *Sign) PrintMessage(w io.Writer) error {
	_, err := fmt.Fprintln(w, s.cmd.String())
	return err
}

func (s *Sign) MessageLength() int { return s.sess.MessageLength() }
func (s *Sign) Completed() bool    { return s.sess.Completed() }

// ChangeAddress points the sign at another endpoint.
func (s *Sign) ChangeAddress(address string) error {
	return s.sess.SetAddress(address)
}

func (s *Sign) Address() string { return s.sess.Address() }

// Connect blocks until the sign is reachable or ctx ends.
func (s *Sign) Connect(ctx context.Context) error { return s.sess.Connect(ctx) }

func (s *Sign) Close() error { return s.sess.Close() }

// resend pushes the patched command so the sign re-reads field geometry.
func (s *Sign) resend(ctx context.Context) error {
	s.sess.Load(codec.PackCommand(s.cmd.String()))
	return s.sess.Send(ctx)
}

// skipFit reports whether a width edit error only disables the edit.
func skipFit(err error, slot int, kind string) bool {
	switch {
	case errors.Is(err, command.ErrNoField), errors.Is(err, command.ErrZeroDigits):
		log.Debug().Err(err).Int("slot", slot).Str("kind", kind).Msg("width adjustment skipped")
		return true
	case errors.Is(err, command.ErrMalformedField):
		log.Warn().Err(err).Int("slot", slot).Str("kind", kind).Msg("width adjustment skipped")
		return true
	}
	return false
}
