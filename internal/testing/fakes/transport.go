// internal/testing/fakes/transport.go

// Package fakes provides in-memory collaborators for tests.
package fakes

import "errors"

var (
	ErrConnect = errors.New("fake: connect refused")
	ErrWrite   = errors.New("fake: write failed")
)

// Write is one recorded register write.
type Write struct {
	Addr uint16
	Regs []uint16
}

// Transport records register writes into a flat register image.
type Transport struct {
	// FailConnects fails that many Connect calls before succeeding.
	FailConnects int
	// FailWrites fails that many WriteRegisters calls before succeeding.
	FailWrites int

	Connects  int
	Closes    int
	Addresses []string
	Writes    []Write
	Regs      map[uint16]uint16
	connected bool
}

func NewTransport() *Transport {
	return &Transport{Regs: make(map[uint16]uint16)}
}

func (t *Transport) Connect(address string) error {
	t.Connects++
	t.Addresses = append(t.Addresses, address)
	if t.FailConnects > 0 {
		t.FailConnects--
		return ErrConnect
	}
	t.connected = true
	return nil
}

func (t *Transport) Close() error {
	t.Closes++
	t.connected = false
	return nil
}

func (t *Transport) WriteRegisters(addr uint16, regs []uint16) error {
	if !t.connected {
		return errors.New("fake: not connected")
	}
	if t.FailWrites > 0 {
		t.FailWrites--
		return ErrWrite
	}
	t.Writes = append(t.Writes, Write{Addr: addr, Regs: append([]uint16(nil), regs...)})
	for i, r := range regs {
		t.Regs[addr+uint16(i)] = r
	}
	return nil
}

// WritesAt returns the writes that started at addr.
func (t *Transport) WritesAt(addr uint16) []Write {
	var out []Write
	for _, w := range t.Writes {
		if w.Addr == addr {
			out = append(out, w)
		}
	}
	return out
}
