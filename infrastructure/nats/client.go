package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/samiullah014/stan-task/pkg/logger"
)

// Client wraps the NATS connection used for task events
type Client struct {
	conn *nats.Conn
}

// ClientConfig configuration สำหรับ NATS Client
type ClientConfig struct {
	URL  string // nats://localhost:4222
	Name string
}

// NewClient เชื่อมต่อ NATS พร้อม reconnect แบบไม่จำกัด
func NewClient(cfg ClientConfig) (*Client, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS client initialized", "url", cfg.URL)
	return &Client{conn: nc}, nil
}

// Conn returns the underlying NATS connection
func (c *Client) Conn() *nats.Conn {
	return c.conn
}

// Close drains pending publishes and closes the connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	if err := c.conn.Drain(); err != nil {
		c.conn.Close()
		return err
	}
	logger.Info("NATS connection closed")
	return nil
}

// IsConnected ตรวจสอบว่าเชื่อมต่ออยู่หรือไม่
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}
