// internal/session/session.go
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/tamzrod/viewmarq/internal/codec"
	"github.com/tamzrod/viewmarq/internal/registers"
)

// DefaultBackoff is the fixed delay between connect attempts.
const DefaultBackoff = 500 * time.Millisecond

// Transport is the register-write collaborator the session drives.
type Transport interface {
	Connect(address string) error
	Close() error
	WriteRegisters(addr uint16, regs []uint16) error
}

type Config struct {
	Address string
	Backoff time.Duration
	Clock   clockwork.Clock
}

// Session owns one transport and the transmission buffer of one sign.
//
// The buffer holds the packed command words. completed is cleared by Load
// and set once every chunk of the buffer was written; Send is a no-op
// while it is set.
type Session struct {
	tr      Transport
	address string
	backoff time.Duration
	clock   clockwork.Clock

	connected bool
	words     []uint16
	completed bool
}

func New(cfg Config, tr Transport) (*Session, error) {
	if tr == nil {
		return nil, errors.New("session: transport required")
	}
	if cfg.Address == "" {
		return nil, errors.New("session: address required")
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultBackoff
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}

	return &Session{
		tr:      tr,
		address: cfg.Address,
		backoff: cfg.Backoff,
		clock:   cfg.Clock,
	}, nil
}

func (s *Session) Address() string { return s.address }

// SetAddress retargets the session. The open connection is dropped and the
// next operation reconnects.
func (s *Session) SetAddress(address string) error {
	if address == "" {
		return errors.New("session: address required")
	}
	if address == s.address {
		return nil
	}
	s.address = address
	return s.Close()
}

// Connect blocks until the transport is connected.
// Failed attempts are retried forever with a fixed backoff; only ctx ends
// the loop early.
func (s *Session) Connect(ctx context.Context) error {
	if s.connected {
		return nil
	}

	for attempt := 1; ; attempt++ {
		err := s.tr.Connect(s.address)
		if err == nil {
			s.connected = true
			if attempt > 1 {
				log.Info().Str("address", s.address).Int("attempts", attempt).Msg("connected to sign")
			}
			return nil
		}

		log.Warn().
			Err(err).
			Str("address", s.address).
			Int("attempt", attempt).
			Dur("backoff", s.backoff).
			Msg("sign connect failed, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("session: connect %s: %w", s.address, ctx.Err())
		case <-s.clock.After(s.backoff):
		}
	}
}

// Close drops the connection. The transmission buffer is kept.
func (s *Session) Close() error {
	if !s.connected {
		return nil
	}
	s.connected = false
	return s.tr.Close()
}

func (s *Session) Connected() bool { return s.connected }

// Load replaces the transmission buffer and marks it unsent.
func (s *Session) Load(words []uint16) {
	s.words = append(s.words[:0], words...)
	s.completed = false
}

// Reset clears the transmission buffer.
func (s *Session) Reset() {
	s.words = s.words[:0]
	s.completed = false
}

// MessageLength is the word count of the transmission buffer.
func (s *Session) MessageLength() int { return len(s.words) }

// Completed reports whether the buffer was fully pushed since the last Load.
func (s *Session) Completed() bool { return s.completed }

// Words returns a copy of the transmission buffer.
func (s *Session) Words() []uint16 {
	return append([]uint16(nil), s.words...)
}

// Send pushes the transmission buffer to the command area in chunks of at
// most registers.MaxWordsPerWrite words. Once a buffer was sent, Send does
// nothing until the next Load.
//
// A failed chunk aborts the send; the buffer stays unsent so the next Send
// starts over from the first chunk.
func (s *Session) Send(ctx context.Context) error {
	if s.completed {
		return nil
	}
	if err := s.Connect(ctx); err != nil {
		return err
	}

	addr := registers.CommandBase
	for _, chunk := range codec.Chunk(s.words, registers.MaxWordsPerWrite) {
		if err := s.tr.WriteRegisters(addr, chunk); err != nil {
			s.dropConnection()
			return fmt.Errorf("session: command chunk at %d (%d words): %w", addr, len(chunk), err)
		}
		log.Debug().Uint16("addr", addr).Int("words", len(chunk)).Msg("command chunk written")
		addr += uint16(len(chunk))
	}

	s.completed = true
	return nil
}

// WriteRegisters writes a register block outside the command area.
func (s *Session) WriteRegisters(ctx context.Context, addr uint16, regs []uint16) error {
	if err := s.Connect(ctx); err != nil {
		return err
	}
	if err := s.tr.WriteRegisters(addr, regs); err != nil {
		s.dropConnection()
		return fmt.Errorf("session: write at %d (%d words): %w", addr, len(regs), err)
	}
	return nil
}

// dropConnection forgets a connection that failed mid-write so the next
// operation reconnects.
func (s *Session) dropConnection() {
	if err := s.Close(); err != nil {
		log.Debug().Err(err).Msg("close after failed write")
	}
}
