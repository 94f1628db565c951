package domain

// Wire keys of a contact group record.
const (
	keyGroupName            = "name"
	keyGroupType            = "groupType"
	keyGroupMemberCount     = "memberCount"
	keyGroupMemberResources = "memberResourceNames"
)

// GroupWrapper is the local representation of one contact group. The
// client only needs groups for name resolution and membership edits,
// so the wrapper is read-only and not mask-scoped: the name is always
// requested.
type GroupWrapper struct {
	model RawRecord
}

// GroupFromRaw builds a group wrapper from a raw record. The record is
// deep-copied.
func GroupFromRaw(raw RawRecord) *GroupWrapper {
	return &GroupWrapper{model: copyRecord(raw)}
}

// ResourceName returns the group's server-side identifier.
func (g *GroupWrapper) ResourceName() string {
	return recordString(g.model, fieldResourceName)
}

// Name returns the group's display name.
func (g *GroupWrapper) Name() string {
	return recordString(g.model, keyGroupName)
}

// GroupType returns the group's type (user or system group).
func (g *GroupWrapper) GroupType() string {
	return recordString(g.model, keyGroupType)
}

// MemberCount returns the server-reported member count, which may
// exceed len(MemberResourceNames) when the record was fetched with a
// member limit.
func (g *GroupWrapper) MemberCount() int {
	n, _ := g.model[keyGroupMemberCount].(float64)
	return int(n)
}

// MemberResourceNames returns the resource names of the group's
// members, as far as the record carries them. System groups may omit
// the list entirely.
func (g *GroupWrapper) MemberResourceNames() []string {
	list := recordList(g.model, keyGroupMemberResources)
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// HasMember reports whether the given person is among the members
// carried by the record.
func (g *GroupWrapper) HasMember(p *PersonWrapper) bool {
	if p == nil || !p.Created() {
		return false
	}
	for _, name := range g.MemberResourceNames() {
		if name == p.ResourceName() {
			return true
		}
	}
	return false
}
