// Package driven defines the outbound ports of the gpeople core: the
// People API transport, the credentials store, and the authorizer that
// runs token refresh and the interactive consent flow. Adapters under
// internal/adapters/driven implement them.
package driven
