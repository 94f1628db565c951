package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewFieldMask_UnknownField tests that a mask cannot be built from
// an identifier outside the catalog
func TestNewFieldMask_UnknownField(t *testing.T) {
	_, err := NewFieldMask(FieldNames, Field("ageRanges"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Contains(t, err.Error(), "ageRanges")
}

// TestNewFieldMask_Deduplicates tests that duplicate fields collapse
func TestNewFieldMask_Deduplicates(t *testing.T) {
	mask, err := NewFieldMask(FieldNames, FieldNames, FieldEmailAddresses)
	require.NoError(t, err)
	assert.Equal(t, 2, mask.Len())
}

// TestFieldMask_Wire tests the canonical wire rendering
func TestFieldMask_Wire(t *testing.T) {
	mask := MustFieldMask(FieldPhoneNumbers, FieldNames, FieldEmailAddresses)
	assert.Equal(t, "emailAddresses,names,phoneNumbers", mask.Wire())
}

// TestFieldMask_WireDeterministic tests that rendering does not depend
// on construction order
func TestFieldMask_WireDeterministic(t *testing.T) {
	a := MustFieldMask(FieldNames, FieldEvents, FieldBirthdays)
	b := MustFieldMask(FieldBirthdays, FieldNames, FieldEvents)
	assert.Equal(t, a.Wire(), b.Wire())
}

// TestFieldMask_Contains tests membership checks
func TestFieldMask_Contains(t *testing.T) {
	mask := MustFieldMask(FieldNames)
	assert.True(t, mask.Contains(FieldNames))
	assert.False(t, mask.Contains(FieldEmailAddresses))
}

// TestFieldMask_IsSubsetOf tests subset semantics
func TestFieldMask_IsSubsetOf(t *testing.T) {
	full := MustFieldMask(FieldNames, FieldEmailAddresses)
	sub := MustFieldMask(FieldEmailAddresses)
	other := MustFieldMask(FieldPhoneNumbers)

	assert.True(t, sub.IsSubsetOf(full))
	assert.True(t, full.IsSubsetOf(full))
	assert.False(t, full.IsSubsetOf(sub))
	assert.False(t, other.IsSubsetOf(full))
}

// TestParseFieldMask tests parsing the wire form back
func TestParseFieldMask(t *testing.T) {
	mask, err := ParseFieldMask("names, emailAddresses")
	require.NoError(t, err)
	assert.True(t, mask.Contains(FieldNames))
	assert.True(t, mask.Contains(FieldEmailAddresses))

	_, err = ParseFieldMask("names,nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// TestParseFieldMask_Empty tests that an empty string yields an empty
// mask
func TestParseFieldMask_Empty(t *testing.T) {
	mask, err := ParseFieldMask("")
	require.NoError(t, err)
	assert.Equal(t, 0, mask.Len())
	assert.Equal(t, "", mask.Wire())
}

// TestCatalog_Complete tests that the catalog lists every implemented
// field
func TestCatalog_Complete(t *testing.T) {
	assert.ElementsMatch(t, []Field{
		FieldAddresses, FieldBirthdays, FieldEmailAddresses,
		FieldEvents, FieldNames, FieldPhoneNumbers,
	}, Catalog())
}
