/*
Package hostmock provides a friendly pretend host for xcalls.

It's designed primarily for SDK development and advanced tests where you want
to validate exactly what a component is sending to the host, without needing
a real host running. The mock answers the way a real xcall host does: it
parses the request store, looks up the function named in the xcall block and
merges xcall metadata into whatever the function returns.

Why use hostmock?

  - Validate routing: ensure calls use the expected namespace, capability, and function when you set them.
  - Inspect requests: every dispatched request is kept, decoded, in Calls.
  - Script responses: register xcall functions, return raw reply text, or simulate failures.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "kalisko",
	  ExpectedCapability: "xcall",
	  ExpectedFunction:   "invoke",
	  Functions: map[string]hostmock.Function{
	    "logInfo": hostmock.Acknowledge(1),
	  },
	})

	// Inject into a component under test
	reply, err := m.HostCall("kalisko", "xcall", "invoke", []byte(`message = "hi", xcall = { function = "logInfo" }`))
	// reply: success = 1, xcall = { params = { message = "hi" }, function = "logInfo" }

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces whichever of ExpectedNamespace/Capability/Function
    are set and hands the payload to Invoke.
  - Invoke returns RawReply's text when RawReply is set. Otherwise unparsable
    requests, a missing function name, unknown functions and functions
    returning nil all produce a reply with only an xcall block whose error
    field explains the problem.

Tips

  - Use table-driven tests for different routing and reply cases.
  - Mock satisfies xcall.Invoker, so it can also be plugged in without waPC.
  - Leave fields blank when you want a wildcard: hostmock only enforces values you set.
*/
package hostmock
