package logging

import (
	"github.com/rs/zerolog"

	sdk "github.com/xcall-bridge/sdk"
	"github.com/xcall-bridge/sdk/xcall"
)

// Client sends log entries to the host. Each method reports whether the host
// acknowledged the entry; failures never panic or return errors.
type Client interface {
	Error(text string) bool
	Warning(text string) bool
	Info(text string) bool
	Debug(text string) bool

	// Log sends text with an explicit severity.
	Log(severity Severity, text string) bool
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig sdk.RuntimeConfig

	// HostCall overrides the waPC host function used for logging operations.
	HostCall sdk.HostCall

	// Invoker replaces the waPC transport entirely. HostCall is ignored when set.
	Invoker xcall.Invoker

	// FieldNames selects the payload field per severity. The zero value means
	// RevisionMessage.
	FieldNames FieldNames

	// Logger receives the bridge's own diagnostics. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// client implements Client on top of an xcall dispatcher.
type client struct {
	runtime    sdk.RuntimeConfig
	fields     FieldNames
	dispatcher *xcall.Client
	logger     zerolog.Logger
}

// Ensure client satisfies the Client interface at compile time.
var _ Client = (*client)(nil)

// New creates a Client that emits logs through the host's xcall capability.
func New(cfg Config) (Client, error) {
	runtimeCfg := cfg.SDKConfig.WithDefaults()

	fields := cfg.FieldNames
	if fields == (FieldNames{}) {
		fields = RevisionMessage
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	logger = logger.With().Str("namespace", runtimeCfg.Namespace).Logger()

	invoker := cfg.Invoker
	if invoker == nil {
		invoker = xcall.NewHostInvoker(xcall.HostInvokerConfig{
			SDKConfig: runtimeCfg,
			HostCall:  cfg.HostCall,
			Logger:    &logger,
		})
	}

	dispatcher, err := xcall.New(xcall.Config{Invoker: invoker, Logger: &logger})
	if err != nil {
		return nil, err
	}

	return &client{
		runtime:    runtimeCfg,
		fields:     fields,
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

func (c *client) Error(text string) bool   { return c.Log(SeverityError, text) }
func (c *client) Warning(text string) bool { return c.Log(SeverityWarning, text) }
func (c *client) Info(text string) bool    { return c.Log(SeverityInfo, text) }
func (c *client) Debug(text string) bool   { return c.Log(SeverityDebug, text) }

func (c *client) Log(severity Severity, text string) bool {
	req, err := xcall.NewCallRequest(severity.Function(), xcall.Field{Name: c.fields.For(severity), Value: text})
	if err != nil {
		c.logger.Error().Err(err).Stringer("severity", severity).Msg("cannot build log request")
		return false
	}
	return c.dispatcher.Dispatch(req)
}
