package peopleapi

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/people/v1"

	"github.com/custodia-labs/gpeople/internal/core/domain"
	"github.com/custodia-labs/gpeople/internal/core/ports/driven"
)

// connectionsResource is the fixed resource under which the
// authenticated user's contacts live.
const connectionsResource = "people/me"

// groupListFields are the group fields requested when resolving groups
// by name.
const groupListFields = "name,groupType,memberCount"

// defaultPageSize matches the page size the API recommends for
// connection listing.
const defaultPageSize = 100

// Ensure Transport implements the port.
var _ driven.Transport = (*Transport)(nil)

// Transport talks to the Google People API.
type Transport struct {
	svc      *people.Service
	pageSize int64
}

// New creates a Transport using the given token source for
// authentication.
func New(ctx context.Context, ts oauth2.TokenSource) (*Transport, error) {
	svc, err := people.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create people service: %w", err)
	}
	return &Transport{svc: svc, pageSize: defaultPageSize}, nil
}

// NewWithService creates a Transport over an already-built service.
// Useful for tests with an option.WithEndpoint override.
func NewWithService(svc *people.Service) *Transport {
	return &Transport{svc: svc, pageSize: defaultPageSize}
}

// GetPerson implements driven.Transport.
func (t *Transport) GetPerson(ctx context.Context, resourceName string, mask domain.FieldMask) (domain.RawRecord, error) {
	p, err := t.svc.People.Get(resourceName).
		PersonFields(mask.Wire()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return personToRecord(p)
}

// CreatePerson implements driven.Transport.
func (t *Transport) CreatePerson(ctx context.Context, record domain.RawRecord, returnMask domain.FieldMask) (domain.RawRecord, error) {
	person, err := recordToPerson(record)
	if err != nil {
		return nil, err
	}
	created, err := t.svc.People.CreateContact(person).
		PersonFields(returnMask.Wire()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return personToRecord(created)
}

// UpdatePerson implements driven.Transport.
func (t *Transport) UpdatePerson(ctx context.Context, resourceName string, updateMask domain.FieldMask,
	record domain.RawRecord, returnMask domain.FieldMask) (domain.RawRecord, error) {
	person, err := recordToPerson(record)
	if err != nil {
		return nil, err
	}
	updated, err := t.svc.People.UpdateContact(resourceName, person).
		UpdatePersonFields(updateMask.Wire()).
		PersonFields(returnMask.Wire()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return personToRecord(updated)
}

// ListPersonsPage implements driven.Transport.
func (t *Transport) ListPersonsPage(ctx context.Context, mask domain.FieldMask, pageToken string) ([]domain.RawRecord, string, error) {
	call := t.svc.People.Connections.List(connectionsResource).
		PersonFields(mask.Wire()).
		PageSize(t.pageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, "", wrapError(err)
	}

	records := make([]domain.RawRecord, 0, len(resp.Connections))
	for _, p := range resp.Connections {
		rec, err := personToRecord(p)
		if err != nil {
			return nil, "", err
		}
		records = append(records, rec)
	}
	return records, resp.NextPageToken, nil
}

// ListGroupsPage implements driven.Transport.
func (t *Transport) ListGroupsPage(ctx context.Context, pageToken string) ([]domain.RawRecord, string, error) {
	call := t.svc.ContactGroups.List().
		GroupFields(groupListFields).
		PageSize(t.pageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, "", wrapError(err)
	}

	records := make([]domain.RawRecord, 0, len(resp.ContactGroups))
	for _, g := range resp.ContactGroups {
		rec, err := groupToRecord(g)
		if err != nil {
			return nil, "", err
		}
		records = append(records, rec)
	}
	return records, resp.NextPageToken, nil
}

// GetGroup implements driven.Transport.
func (t *Transport) GetGroup(ctx context.Context, resourceName string, memberLimit int) (domain.RawRecord, error) {
	g, err := t.svc.ContactGroups.Get(resourceName).
		GroupFields(groupListFields).
		MaxMembers(int64(memberLimit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return groupToRecord(g)
}

// CreateGroup implements driven.Transport.
func (t *Transport) CreateGroup(ctx context.Context, name string) (domain.RawRecord, error) {
	created, err := t.svc.ContactGroups.Create(&people.CreateContactGroupRequest{
		ContactGroup:    &people.ContactGroup{Name: name},
		ReadGroupFields: groupListFields,
	}).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return groupToRecord(created)
}

// ModifyGroupMembership implements driven.Transport.
func (t *Transport) ModifyGroupMembership(ctx context.Context, groupResourceName, personResourceName string, op driven.MembershipOp) error {
	req := &people.ModifyContactGroupMembersRequest{}
	switch op {
	case driven.MembershipAdd:
		req.ResourceNamesToAdd = []string{personResourceName}
	case driven.MembershipRemove:
		req.ResourceNamesToRemove = []string{personResourceName}
	default:
		return fmt.Errorf("unknown membership op %d", op)
	}

	_, err := t.svc.ContactGroups.Members.Modify(groupResourceName, req).
		Context(ctx).
		Do()
	return wrapError(err)
}
