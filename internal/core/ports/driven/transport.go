package driven

import (
	"context"

	"github.com/custodia-labs/gpeople/internal/core/domain"
)

// MembershipOp selects the direction of a group membership edit.
type MembershipOp int

const (
	// MembershipAdd adds the person to the group.
	MembershipAdd MembershipOp = iota
	// MembershipRemove removes the person from the group.
	MembershipRemove
)

// Transport is the wire collaborator for the People API. All reads and
// writes are scoped by exactly one field mask; implementations must
// neither request nor send fields outside it.
//
// Implementations wrap retryable failures (server-side rate limiting,
// transient faults) so that domain.IsRetryable recognises them.
type Transport interface {
	// GetPerson fetches one person record under the given mask.
	GetPerson(ctx context.Context, resourceName string, mask domain.FieldMask) (domain.RawRecord, error)

	// CreatePerson creates a person from the given record and returns
	// the created record populated under returnMask.
	CreatePerson(ctx context.Context, record domain.RawRecord, returnMask domain.FieldMask) (domain.RawRecord, error)

	// UpdatePerson updates the fields of updateMask from the record
	// and returns the updated record populated under returnMask.
	UpdatePerson(ctx context.Context, resourceName string, updateMask domain.FieldMask,
		record domain.RawRecord, returnMask domain.FieldMask) (domain.RawRecord, error)

	// ListPersonsPage fetches one page of the caller's contacts under
	// the given mask. An empty pageToken requests the first page; an
	// empty returned token means no further pages.
	ListPersonsPage(ctx context.Context, mask domain.FieldMask, pageToken string) (records []domain.RawRecord, nextPageToken string, err error)

	// ListGroupsPage fetches one page of the caller's contact groups,
	// each record carrying at least the group name.
	ListGroupsPage(ctx context.Context, pageToken string) (records []domain.RawRecord, nextPageToken string, err error)

	// GetGroup fetches one group record, including up to memberLimit
	// member resource names.
	GetGroup(ctx context.Context, resourceName string, memberLimit int) (domain.RawRecord, error)

	// CreateGroup creates a contact group with the given display name.
	CreateGroup(ctx context.Context, name string) (domain.RawRecord, error)

	// ModifyGroupMembership adds the person to or removes it from the
	// group.
	ModifyGroupMembership(ctx context.Context, groupResourceName, personResourceName string, op MembershipOp) error
}
