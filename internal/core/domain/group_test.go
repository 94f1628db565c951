package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGroupRecord() RawRecord {
	return RawRecord{
		"resourceName": "contactGroups/g1",
		"name":         "test",
		"groupType":    "USER_CONTACT_GROUP",
		"memberCount":  float64(2),
		"memberResourceNames": []any{
			"people/c1",
			"people/c2",
		},
	}
}

// TestGroupFromRaw_Accessors tests the read-only group surface
func TestGroupFromRaw_Accessors(t *testing.T) {
	group := GroupFromRaw(sampleGroupRecord())

	assert.Equal(t, "contactGroups/g1", group.ResourceName())
	assert.Equal(t, "test", group.Name())
	assert.Equal(t, "USER_CONTACT_GROUP", group.GroupType())
	assert.Equal(t, 2, group.MemberCount())
	assert.Equal(t, []string{"people/c1", "people/c2"}, group.MemberResourceNames())
}

// TestGroupFromRaw_Copies tests that the wrapper does not alias the
// input record
func TestGroupFromRaw_Copies(t *testing.T) {
	raw := sampleGroupRecord()
	group := GroupFromRaw(raw)

	raw["name"] = "changed"
	raw["memberResourceNames"].([]any)[0] = "people/other"

	assert.Equal(t, "test", group.Name())
	assert.Equal(t, []string{"people/c1", "people/c2"}, group.MemberResourceNames())
}

// TestGroupWrapper_MissingMembers tests system groups without a member
// list
func TestGroupWrapper_MissingMembers(t *testing.T) {
	group := GroupFromRaw(RawRecord{
		"resourceName": "contactGroups/starred",
		"name":         "starred",
		"groupType":    "SYSTEM_CONTACT_GROUP",
	})

	assert.Empty(t, group.MemberResourceNames())
}

// TestGroupWrapper_HasMember tests membership checks against person
// wrappers
func TestGroupWrapper_HasMember(t *testing.T) {
	group := GroupFromRaw(sampleGroupRecord())

	member := PersonFromRaw(RawRecord{"resourceName": "people/c1"}, MustFieldMask(FieldNames))
	outsider := PersonFromRaw(RawRecord{"resourceName": "people/c9"}, MustFieldMask(FieldNames))
	uncreated := NewPersonForCreate("Peter Tester")
	require.False(t, uncreated.Created())

	assert.True(t, group.HasMember(member))
	assert.False(t, group.HasMember(outsider))
	assert.False(t, group.HasMember(uncreated))
	assert.False(t, group.HasMember(nil))
}
