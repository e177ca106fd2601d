/*
Package sdk provides the core entry point and runtime configuration for guest
code that talks to its host through xcall.

The package exposes New to register a waPC handler, a RuntimeConfig that is
shared by the capability clients (xcall, logging), and the HostCall signature
those clients use to reach the host. DefaultNamespace is used when a namespace
is not explicitly provided.
*/
package sdk
