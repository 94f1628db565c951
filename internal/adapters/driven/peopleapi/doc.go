// Package peopleapi implements the driven.Transport port on the real
// Google People API via google.golang.org/api/people/v1. Typed API
// messages are converted to and from the mapping-shaped raw records
// the core works with, and googleapi failures are normalised to the
// domain's retryable error sentinels.
package peopleapi
