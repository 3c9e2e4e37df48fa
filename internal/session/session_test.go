// internal/session/session_test.go
package session

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/viewmarq/internal/registers"
	"github.com/tamzrod/viewmarq/internal/testing/fakes"
)

func newSession(t *testing.T, tr *fakes.Transport) *Session {
	t.Helper()
	s, err := New(Config{Address: "10.0.0.5:502"}, tr)
	require.NoError(t, err)
	return s
}

func words(n int) []uint16 {
	w := make([]uint16, n)
	for i := range w {
		w[i] = uint16(i + 1)
	}
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Address: "x:502"}, nil)
	assert.Error(t, err)

	_, err = New(Config{}, fakes.NewTransport())
	assert.Error(t, err)
}

func TestSend_SingleChunk(t *testing.T) {
	tr := fakes.NewTransport()
	s := newSession(t, tr)

	s.Load(words(10))
	assert.False(t, s.Completed())
	assert.Equal(t, 10, s.MessageLength())

	require.NoError(t, s.Send(context.Background()))
	assert.True(t, s.Completed())

	require.Len(t, tr.Writes, 1)
	assert.Equal(t, registers.CommandBase, tr.Writes[0].Addr)
	assert.Equal(t, words(10), tr.Writes[0].Regs)
}

func TestSend_Chunked(t *testing.T) {
	tr := fakes.NewTransport()
	s := newSession(t, tr)

	s.Load(words(300))
	require.NoError(t, s.Send(context.Background()))

	require.Len(t, tr.Writes, 3)
	assert.Equal(t, registers.CommandBase, tr.Writes[0].Addr)
	assert.Len(t, tr.Writes[0].Regs, 123)
	assert.Equal(t, registers.CommandBase+123, tr.Writes[1].Addr)
	assert.Len(t, tr.Writes[1].Regs, 123)
	assert.Equal(t, registers.CommandBase+246, tr.Writes[2].Addr)
	assert.Len(t, tr.Writes[2].Regs, 54)

	for i, w := range words(300) {
		assert.Equal(t, w, tr.Regs[registers.CommandBase+uint16(i)])
	}
}

func TestSend_ExactMultipleOfChunk(t *testing.T) {
	tr := fakes.NewTransport()
	s := newSession(t, tr)

	s.Load(words(2 * registers.MaxWordsPerWrite))
	require.NoError(t, s.Send(context.Background()))

	require.Len(t, tr.Writes, 2)
	assert.Equal(t, registers.CommandBase+registers.MaxWordsPerWrite, tr.Writes[1].Addr)
	assert.Len(t, tr.Writes[1].Regs, registers.MaxWordsPerWrite)
}

func TestSend_Idempotent(t *testing.T) {
	tr := fakes.NewTransport()
	s := newSession(t, tr)

	s.Load(words(5))
	require.NoError(t, s.Send(context.Background()))
	n := len(tr.Writes)

	require.NoError(t, s.Send(context.Background()))
	assert.Equal(t, n, len(tr.Writes), "second send must not write")

	s.Load(words(5))
	require.NoError(t, s.Send(context.Background()))
	assert.Equal(t, n+1, len(tr.Writes), "reload must send again")
}

func TestSend_FailedChunkLeavesUnsent(t *testing.T) {
	tr := fakes.NewTransport()
	s := newSession(t, tr)

	s.Load(words(200))
	tr.FailWrites = 1

	err := s.Send(context.Background())
	require.ErrorIs(t, err, fakes.ErrWrite)
	assert.False(t, s.Completed())
	assert.False(t, s.Connected())

	require.NoError(t, s.Send(context.Background()))
	assert.True(t, s.Completed())
	assert.Equal(t, 2, tr.Connects)
	require.Len(t, tr.Writes, 2)
	assert.Equal(t, registers.CommandBase, tr.Writes[0].Addr)
}

func TestSend_EmptyBuffer(t *testing.T) {
	tr := fakes.NewTransport()
	s := newSession(t, tr)

	require.NoError(t, s.Send(context.Background()))
	assert.Empty(t, tr.Writes)
	assert.True(t, s.Completed())
}

func TestConnect_RetriesWithBackoff(t *testing.T) {
	tr := fakes.NewTransport()
	tr.FailConnects = 2
	clk := clockwork.NewFakeClock()

	s, err := New(Config{Address: "10.0.0.5:502", Backoff: 250 * time.Millisecond, Clock: clk}, tr)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Connect(ctx) }()

	for i := 0; i < 2; i++ {
		require.NoError(t, clk.BlockUntilContext(ctx, 1))
		clk.Advance(250 * time.Millisecond)
	}

	require.NoError(t, <-done)
	assert.True(t, s.Connected())
	assert.Equal(t, 3, tr.Connects)
}

func TestConnect_Cancelled(t *testing.T) {
	tr := fakes.NewTransport()
	tr.FailConnects = 1 << 30
	clk := clockwork.NewFakeClock()

	s, err := New(Config{Address: "10.0.0.5:502", Clock: clk}, tr)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Connect(ctx) }()

	require.NoError(t, clk.BlockUntilContext(context.Background(), 1))
	cancel()

	err = <-done
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.Connected())
}

func TestConnect_ReusesConnection(t *testing.T) {
	tr := fakes.NewTransport()
	s := newSession(t, tr)

	require.NoError(t, s.Connect(context.Background()))
	require.NoError(t, s.Connect(context.Background()))
	assert.Equal(t, 1, tr.Connects)
}

func TestSetAddress_Reconnects(t *testing.T) {
	tr := fakes.NewTransport()
	s := newSession(t, tr)
	require.NoError(t, s.Connect(context.Background()))

	require.NoError(t, s.SetAddress("10.0.0.6:502"))
	assert.False(t, s.Connected())
	assert.Equal(t, 1, tr.Closes)

	require.NoError(t, s.WriteRegisters(context.Background(), 100, []uint16{7}))
	assert.Equal(t, []string{"10.0.0.5:502", "10.0.0.6:502"}, tr.Addresses)
	assert.Equal(t, uint16(7), tr.Regs[100])

	assert.Error(t, s.SetAddress(""))
}

func TestReset(t *testing.T) {
	tr := fakes.NewTransport()
	s := newSession(t, tr)
	s.Load(words(3))
	require.NoError(t, s.Send(context.Background()))

	s.Reset()
	assert.Zero(t, s.MessageLength())
	assert.False(t, s.Completed())
	assert.Empty(t, s.Words())
}
