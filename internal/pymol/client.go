// Package pymol provides a client for a running PyMOL session reached over
// PyMOL's RPC interface (pymol -R). It exposes the subset of the command set
// that molbridge needs: structure transfer, session queries, the color
// registry and the selection-aware display commands.
package pymol

import (
	"context"
	"fmt"
	"strings"

	"github.com/kolo/xmlrpc"
	"github.com/sirupsen/logrus"
)

// DefaultAddress is where "pymol -R" listens by default.
const DefaultAddress = "localhost:9123"

// Client talks to a PyMOL RPC server.
type Client struct {
	rpc *xmlrpc.Client
	url string
	log *logrus.Logger
}

// NewClient creates a client for the PyMOL RPC server at the given address.
// The address may be a bare host:port or a full http(s) URL.
func NewClient(address string) (*Client, error) {
	return NewClientWithLogger(address, logrus.StandardLogger())
}

// NewClientWithLogger is NewClient with an explicit logger.
func NewClientWithLogger(address string, log *logrus.Logger) (*Client, error) {
	if address == "" {
		address = DefaultAddress
	}
	url := address
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}

	rpc, err := xmlrpc.NewClient(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create PyMOL RPC client: %w", err)
	}

	return &Client{rpc: rpc, url: url, log: log}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() error {
	return c.rpc.Close()
}

// call performs one RPC round trip. The XML-RPC transport has no native
// cancellation, so the context is only checked before the call is issued.
func (c *Client) call(ctx context.Context, method string, args []any, reply any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.log.WithFields(logrus.Fields{
		"method": method,
		"args":   len(args),
	}).Debug("pymol rpc call")
	if err := c.rpc.Call(method, args, reply); err != nil {
		return fmt.Errorf("pymol rpc %s: %w", method, err)
	}
	return nil
}
