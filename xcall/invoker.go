package xcall

import (
	"errors"

	"github.com/rs/zerolog"
	wapc "github.com/wapc/wapc-guest-tinygo"

	sdk "github.com/xcall-bridge/sdk"
)

const (
	capabilityName = "xcall"
	fnInvoke       = "invoke"
)

// Invoker hands one encoded request to the host and returns its reply. It is
// synchronous and always returns, with an empty reply when the host could not
// be reached.
type Invoker interface {
	Invoke(request string) string
}

// InvokerFunc adapts a function to the Invoker interface.
type InvokerFunc func(request string) string

// Invoke calls f(request).
func (f InvokerFunc) Invoke(request string) string { return f(request) }

// HostInvokerConfig controls how a HostInvoker reaches the host runtime.
type HostInvokerConfig struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig sdk.RuntimeConfig

	// HostCall overrides the waPC host function used for xcalls.
	HostCall sdk.HostCall

	// Logger receives host call failures at debug level. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// HostInvoker sends xcalls over waPC to the "xcall" capability.
type HostInvoker struct {
	runtime  sdk.RuntimeConfig
	hostCall sdk.HostCall
	logger   zerolog.Logger
}

// Ensure HostInvoker satisfies the Invoker interface at compile time.
var _ Invoker = (*HostInvoker)(nil)

// NewHostInvoker creates a HostInvoker with namespace, host call and logger defaults.
func NewHostInvoker(cfg HostInvokerConfig) *HostInvoker {
	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &HostInvoker{
		runtime:  cfg.SDKConfig.WithDefaults(),
		hostCall: hostCall,
		logger:   logger,
	}
}

// Call performs the host call and reports transport failures as errors
// wrapping sdk.ErrHostCall.
func (h *HostInvoker) Call(request string) (string, error) {
	resp, err := h.hostCall(h.runtime.Namespace, capabilityName, fnInvoke, []byte(request))
	if err != nil {
		return "", errors.Join(sdk.ErrHostCall, err)
	}
	return string(resp), nil
}

// Invoke is Call with transport failures absorbed into an empty reply.
func (h *HostInvoker) Invoke(request string) string {
	reply, err := h.Call(request)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("namespace", h.runtime.Namespace).
			Msg("xcall host call failed")
		return ""
	}
	return reply
}
