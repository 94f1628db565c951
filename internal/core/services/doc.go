// Package services contains the client orchestration for the gpeople
// core: authentication bootstrap, field-masked single-record
// operations, rate-limited paged retrieval, and group membership
// edits. It talks to the outside world only through the ports in
// internal/core/ports/driven.
package services
