package xcall

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrInvokerNil is returned when a Client is configured without an Invoker.
var ErrInvokerNil = errors.New("invoker cannot be nil")

// Config controls how a Client dispatches calls.
type Config struct {
	// Invoker carries requests to the host. Required.
	Invoker Invoker

	// Logger receives dispatch diagnostics. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Client dispatches CallRequests through an Invoker. It holds no per-call
// state and is safe for concurrent use when its Invoker is.
type Client struct {
	invoker Invoker
	logger  zerolog.Logger
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	if cfg.Invoker == nil {
		return nil, ErrInvokerNil
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Client{invoker: cfg.Invoker, logger: logger}, nil
}

// Call encodes req, invokes the host once and decodes its reply. The only
// error is an EncodingError; host problems are reflected in the Reply.
func (c *Client) Call(req CallRequest) (*Reply, error) {
	text, err := Encode(req)
	if err != nil {
		return nil, err
	}
	return NewReply(c.invoker.Invoke(text)), nil
}

// Dispatch performs a single Call and reports whether the host acknowledged
// it. There are no retries.
func (c *Client) Dispatch(req CallRequest) bool {
	reply, err := c.Call(req)
	if err != nil {
		c.logger.Error().Err(err).Str("function", req.Function()).Msg("xcall request rejected")
		return false
	}

	if err := reply.Err(); err != nil {
		c.logger.Debug().Err(err).Str("function", req.Function()).Msg("xcall not acknowledged")
		return false
	}
	return true
}
