// internal/transport/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/viewmarq/internal/syncutil"
)

var ErrNotConnected = errors.New("viewmarq modbus: not connected")

// Client is one Modbus TCP connection to a ViewMarq sign.
// Single-register writes use FC6, longer writes FC16.
type Client struct {
	mu      syncutil.Mutex
	unitID  uint8
	timeout time.Duration

	handler *modbus.TCPClientHandler
	client  modbus.Client
}

type Config struct {
	UnitID  uint8
	Timeout time.Duration
}

func New(cfg Config) *Client {
	return &Client{
		unitID:  cfg.UnitID,
		timeout: cfg.Timeout,
	}
}

// Connect opens a connection to address (host:port).
// Any previous connection is closed first.
func (c *Client) Connect(address string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if address == "" {
		return errors.New("viewmarq modbus: endpoint required")
	}
	c.closeLocked()

	h := modbus.NewTCPClientHandler(address)
	h.Timeout = c.timeout
	h.SlaveId = c.unitID

	if err := h.Connect(); err != nil {
		return fmt.Errorf("viewmarq modbus: connect %s: %w", address, err)
	}

	c.handler = h
	c.client = modbus.NewClient(h)
	return nil
}

// Close closes the connection. Closing a closed client is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *Client) closeLocked() error {
	if c.handler == nil {
		return nil
	}
	err := c.handler.Close()
	c.handler = nil
	c.client = nil
	return err
}

// WriteRegisters writes regs to consecutive holding registers starting at addr.
func (c *Client) WriteRegisters(addr uint16, regs []uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return ErrNotConnected
	}

	var err error
	switch len(regs) {
	case 0:
		return nil
	case 1:
		_, err = c.client.WriteSingleRegister(addr, regs[0])
	default:
		_, err = c.client.WriteMultipleRegisters(addr, uint16(len(regs)), packRegisters(regs))
	}
	if err != nil {
		return fmt.Errorf("viewmarq modbus: write addr=%d qty=%d: %w", addr, len(regs), err)
	}
	return nil
}

// packRegisters lays words out in Modbus wire order (big-endian).
func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
