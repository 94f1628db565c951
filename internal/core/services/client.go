package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/gpeople/internal/core/domain"
	"github.com/custodia-labs/gpeople/internal/core/ports/driven"
	"github.com/custodia-labs/gpeople/internal/logger"
)

// Options configures a Client. Transport, Store and Auth are required;
// zero limits select the API defaults.
type Options struct {
	Transport driven.Transport
	Store     driven.CredentialsStore
	Auth      driven.Authorizer

	// ReadLimit budgets list/get calls, WriteLimit budgets
	// create/update/membership calls.
	ReadLimit  RateLimit
	WriteLimit RateLimit

	// MaxPageAttempts bounds retries per page during bulk retrieval.
	// Zero selects the default.
	MaxPageAttempts int
}

// Client orchestrates authentication, field-masked person operations,
// rate-limited bulk retrieval, and group membership edits.
//
// A Client is synchronous and not safe for concurrent use: the
// credentials store is single-writer and the rate budgets are shared
// per instance, so callers must serialise calls.
type Client struct {
	transport driven.Transport
	store     driven.CredentialsStore
	creds     *domain.Credentials

	readLimiter  *RateLimiter
	writeLimiter *RateLimiter
	pager        *Pager
}

// New constructs a Client, performing the authentication bootstrap:
// persisted credentials are loaded, refreshed when expired but
// refreshable, and otherwise obtained through the interactive consent
// flow. Whatever the bootstrap produces is saved back to the store.
// This is the one point where user interaction may occur; failure is
// fatal to construction and wraps domain.ErrAuthentication.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.Transport == nil || opts.Store == nil || opts.Auth == nil {
		return nil, fmt.Errorf("transport, store and authorizer are required")
	}
	if opts.ReadLimit == (RateLimit{}) {
		opts.ReadLimit = DefaultReadLimit
	}
	if opts.WriteLimit == (RateLimit{}) {
		opts.WriteLimit = DefaultWriteLimit
	}

	readLimiter, err := NewRateLimiter(opts.ReadLimit)
	if err != nil {
		return nil, fmt.Errorf("read limit: %w", err)
	}
	writeLimiter, err := NewRateLimiter(opts.WriteLimit)
	if err != nil {
		return nil, fmt.Errorf("write limit: %w", err)
	}

	c := &Client{
		transport:    opts.Transport,
		store:        opts.Store,
		readLimiter:  readLimiter,
		writeLimiter: writeLimiter,
		pager:        NewPager(readLimiter, opts.MaxPageAttempts),
	}
	if err := c.bootstrap(ctx, opts.Auth); err != nil {
		return nil, err
	}
	return c, nil
}

// bootstrap resolves valid credentials: load, refresh if possible,
// consent flow as the last resort.
func (c *Client) bootstrap(ctx context.Context, auth driven.Authorizer) error {
	creds, err := c.store.Load(ctx)
	if err != nil {
		logger.Warn("loading credentials from store failed: %v", err)
	}

	if creds != nil && creds.NeedsRefresh() {
		refreshed, err := auth.Refresh(ctx, creds)
		if err != nil {
			logger.Warn("refreshing stored credentials failed: %v", err)
		} else {
			refreshed.ID = creds.ID
			refreshed.CreatedAt = creds.CreatedAt
			creds = refreshed
			c.save(ctx, creds)
		}
	}

	if creds == nil || !creds.IsValid() {
		fresh, err := auth.Authorize(ctx)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrAuthentication, err)
		}
		creds = fresh
		c.save(ctx, creds)
	}

	if !creds.IsValid() {
		return fmt.Errorf("%w: no valid credentials could be acquired", domain.ErrAuthentication)
	}
	c.creds = creds
	return nil
}

// save persists credentials, assigning an ID on first save. A failing
// save is logged, not fatal: the in-memory credentials stay usable for
// this process.
func (c *Client) save(ctx context.Context, creds *domain.Credentials) {
	now := time.Now()
	if creds.ID == "" {
		creds.ID = uuid.NewString()
	}
	if creds.CreatedAt.IsZero() {
		creds.CreatedAt = now
	}
	creds.UpdatedAt = now
	if err := c.store.Save(ctx, creds); err != nil {
		logger.Warn("saving credentials to store failed: %v", err)
	}
}

// Credentials returns the credentials resolved at construction.
func (c *Client) Credentials() *domain.Credentials {
	return c.creds
}

// GetAllPersons fetches every contact under the given mask, handling
// paging and the read-rate budget. On a paging failure the wrappers of
// the records gathered so far are returned together with the
// *domain.PagingError.
func (c *Client) GetAllPersons(ctx context.Context, mask domain.FieldMask) ([]*domain.PersonWrapper, error) {
	records, err := c.pager.FetchAll(ctx, func(ctx context.Context, token string) ([]domain.RawRecord, string, error) {
		return c.transport.ListPersonsPage(ctx, mask, token)
	})
	persons := make([]*domain.PersonWrapper, len(records))
	for i, rec := range records {
		persons[i] = domain.PersonFromRaw(rec, mask)
	}
	return persons, err
}

// GetPerson fetches one person under the given mask. No internal
// retry; transport failures propagate to the caller.
func (c *Client) GetPerson(ctx context.Context, resourceName string, mask domain.FieldMask) (*domain.PersonWrapper, error) {
	if err := c.readLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	rec, err := c.transport.GetPerson(ctx, resourceName, mask)
	if err != nil {
		return nil, err
	}
	return domain.PersonFromRaw(rec, mask), nil
}

// CreatePerson creates a contact with the given unstructured name and
// returns it populated under returnMask, which may include fields the
// creation implicitly populated.
func (c *Client) CreatePerson(ctx context.Context, unstructuredName string, returnMask domain.FieldMask) (*domain.PersonWrapper, error) {
	person := domain.NewPersonForCreate(unstructuredName)
	record, err := person.ToRaw(person.Mask())
	if err != nil {
		return nil, err
	}

	if err := c.writeLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	created, err := c.transport.CreatePerson(ctx, record, returnMask)
	if err != nil {
		return nil, err
	}
	return domain.PersonFromRaw(created, returnMask), nil
}

// UpdatePerson writes the fields of mask from the wrapper back to the
// server and returns the updated person under the same mask. The
// wrapper must carry a server identifier and the mask must be a subset
// of the mask the wrapper was populated with.
func (c *Client) UpdatePerson(ctx context.Context, person *domain.PersonWrapper, mask domain.FieldMask) (*domain.PersonWrapper, error) {
	if !person.Created() {
		return nil, fmt.Errorf("%w: update of %q", domain.ErrNotCreated, person.LoggingName())
	}
	record, err := person.ToRaw(mask)
	if err != nil {
		return nil, err
	}
	// The server rejects updates without the version tag the record
	// was fetched with.
	if etag := person.Etag(); etag != "" {
		record["etag"] = etag
	}

	if err := c.writeLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	logger.Debug("updating %s with mask %s", person.ResourceName(), mask.Wire())
	updated, err := c.transport.UpdatePerson(ctx, person.ResourceName(), mask, record, mask)
	if err != nil {
		return nil, err
	}
	return domain.PersonFromRaw(updated, mask), nil
}

// GetAllGroups fetches every contact group, handling paging and the
// read-rate budget.
func (c *Client) GetAllGroups(ctx context.Context) ([]*domain.GroupWrapper, error) {
	records, err := c.pager.FetchAll(ctx, c.transport.ListGroupsPage)
	if err != nil {
		return nil, err
	}
	groups := make([]*domain.GroupWrapper, len(records))
	for i, rec := range records {
		groups[i] = domain.GroupFromRaw(rec)
	}
	return groups, nil
}

// FindGroupByName returns the first group with the given display name,
// or nil when no such group exists. The API does not enforce unique
// group names.
func (c *Client) FindGroupByName(ctx context.Context, name string) (*domain.GroupWrapper, error) {
	groups, err := c.GetAllGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, nil
}

// GetGroup fetches one group with up to memberLimit member resource
// names.
func (c *Client) GetGroup(ctx context.Context, resourceName string, memberLimit int) (*domain.GroupWrapper, error) {
	if err := c.readLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	rec, err := c.transport.GetGroup(ctx, resourceName, memberLimit)
	if err != nil {
		return nil, err
	}
	return domain.GroupFromRaw(rec), nil
}

// findOrCreateGroup resolves a group by name, creating it on first
// use.
func (c *Client) findOrCreateGroup(ctx context.Context, name string) (*domain.GroupWrapper, error) {
	group, err := c.FindGroupByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if group != nil {
		return group, nil
	}

	if err := c.writeLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	logger.Debug("creating contact group %q", name)
	created, err := c.transport.CreateGroup(ctx, name)
	if err != nil {
		return nil, err
	}
	return domain.GroupFromRaw(created), nil
}

// AddMemberToGroup adds the person to the named group, creating the
// group on first use. The person must carry a server identifier.
func (c *Client) AddMemberToGroup(ctx context.Context, groupName string, person *domain.PersonWrapper) error {
	if !person.Created() {
		return fmt.Errorf("%w: adding %q to group %q", domain.ErrNotCreated, person.LoggingName(), groupName)
	}
	group, err := c.findOrCreateGroup(ctx, groupName)
	if err != nil {
		return err
	}

	if err := c.writeLimiter.Wait(ctx); err != nil {
		return err
	}
	return c.transport.ModifyGroupMembership(ctx, group.ResourceName(), person.ResourceName(), driven.MembershipAdd)
}

// RemoveMemberFromGroup removes the person from the named group. A
// missing group is a no-op; the group itself is never deleted.
func (c *Client) RemoveMemberFromGroup(ctx context.Context, groupName string, person *domain.PersonWrapper) error {
	if !person.Created() {
		return fmt.Errorf("%w: removing %q from group %q", domain.ErrNotCreated, person.LoggingName(), groupName)
	}
	group, err := c.FindGroupByName(ctx, groupName)
	if err != nil {
		return err
	}
	if group == nil {
		return nil
	}

	if err := c.writeLimiter.Wait(ctx); err != nil {
		return err
	}
	return c.transport.ModifyGroupMembership(ctx, group.ResourceName(), person.ResourceName(), driven.MembershipRemove)
}
