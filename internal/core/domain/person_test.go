package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePersonRecord() RawRecord {
	return RawRecord{
		"resourceName": "people/c123",
		"etag":         "tag-1",
		"names": []any{
			map[string]any{"displayName": "Peter Tester", "unstructuredName": "Peter Tester"},
		},
		"emailAddresses": []any{
			map[string]any{"type": "Home", "value": "peter.tester@gmail.com"},
			map[string]any{"type": "Work", "value": "peter@example.org"},
		},
		"phoneNumbers": []any{
			map[string]any{"type": "Mobile", "value": "+49 170 1234567"},
		},
	}
}

// TestPersonFromRaw_RoundTrip tests that from-raw followed by to-raw
// reproduces the record restricted to the mask
func TestPersonFromRaw_RoundTrip(t *testing.T) {
	raw := samplePersonRecord()
	mask := MustFieldMask(FieldNames, FieldEmailAddresses)

	person := PersonFromRaw(raw, mask)
	out, err := person.ToRaw(mask)
	require.NoError(t, err)

	assert.Equal(t, raw["names"], out["names"])
	assert.Equal(t, raw["emailAddresses"], out["emailAddresses"])
	assert.NotContains(t, out, "phoneNumbers")
	assert.NotContains(t, out, "resourceName")
}

// TestPersonFromRaw_EmptyRepeatedField tests that a masked field
// absent from the record round-trips as absent, not asserted
func TestPersonFromRaw_EmptyRepeatedField(t *testing.T) {
	raw := RawRecord{"resourceName": "people/c1"}
	mask := MustFieldMask(FieldEmailAddresses)

	person := PersonFromRaw(raw, mask)
	out, err := person.ToRaw(mask)
	require.NoError(t, err)
	assert.NotContains(t, out, "emailAddresses")

	// Present-but-empty is different from absent: an explicit empty
	// list survives the round-trip.
	raw["emailAddresses"] = []any{}
	person = PersonFromRaw(raw, mask)
	out, err = person.ToRaw(mask)
	require.NoError(t, err)
	assert.Equal(t, []any{}, out["emailAddresses"])
}

// TestPersonWrapper_FieldNotRequested tests that every field outside
// the mask fails on access
func TestPersonWrapper_FieldNotRequested(t *testing.T) {
	mask := MustFieldMask(FieldNames)
	person := PersonFromRaw(samplePersonRecord(), mask)

	for _, f := range Catalog() {
		if mask.Contains(f) {
			continue
		}
		_, err := person.FieldContainer(f)
		assert.ErrorIs(t, err, ErrFieldNotRequested, "field %s", f)
	}

	_, err := person.Names()
	assert.NoError(t, err)
}

// TestPersonWrapper_NoAliasing tests that the wrapper does not share
// memory with the record it was built from
func TestPersonWrapper_NoAliasing(t *testing.T) {
	raw := samplePersonRecord()
	person := PersonFromRaw(raw, MustFieldMask(FieldEmailAddresses))

	raw["emailAddresses"].([]any)[0].(map[string]any)["value"] = "mutated@example.org"

	emails, err := person.EmailAddresses()
	require.NoError(t, err)
	assert.Equal(t, "peter.tester@gmail.com", emails.Values()[0])
}

// TestPersonWrapper_ToRawMaskMismatch tests that a write mask outside
// the populated mask is rejected
func TestPersonWrapper_ToRawMaskMismatch(t *testing.T) {
	person := PersonFromRaw(samplePersonRecord(), MustFieldMask(FieldNames))

	_, err := person.ToRaw(MustFieldMask(FieldNames, FieldEmailAddresses))
	assert.ErrorIs(t, err, ErrMaskMismatch)

	// A strict subset is fine.
	_, err = person.ToRaw(MustFieldMask(FieldNames))
	assert.NoError(t, err)
}

// TestPersonWrapper_UntouchedFieldsReemitted tests round-trip fidelity
// for fields in the mask the caller never read
func TestPersonWrapper_UntouchedFieldsReemitted(t *testing.T) {
	raw := samplePersonRecord()
	mask := MustFieldMask(FieldNames, FieldEmailAddresses, FieldPhoneNumbers)
	person := PersonFromRaw(raw, mask)

	// Touch only the emails; phone numbers and names stay untouched.
	emails, err := person.EmailAddresses()
	require.NoError(t, err)
	emails.Append("Other", "third@example.org")

	out, err := person.ToRaw(mask)
	require.NoError(t, err)
	assert.Equal(t, raw["names"], out["names"])
	assert.Equal(t, raw["phoneNumbers"], out["phoneNumbers"])
	assert.Len(t, out["emailAddresses"], 3)
}

// TestNewPersonForCreate tests the to-be-created state
func TestNewPersonForCreate(t *testing.T) {
	person := NewPersonForCreate("Peter Tester")

	assert.False(t, person.Created())
	assert.Equal(t, "", person.ResourceName())
	assert.True(t, person.Mask().Contains(FieldNames))
	assert.Equal(t, 1, person.Mask().Len())

	names, err := person.Names()
	require.NoError(t, err)
	assert.Equal(t, "Peter Tester", names.UnstructuredName())

	_, err = person.EmailAddresses()
	assert.ErrorIs(t, err, ErrFieldNotRequested)
}

// TestPersonWrapper_Changed tests mutation tracking
func TestPersonWrapper_Changed(t *testing.T) {
	person := PersonFromRaw(samplePersonRecord(), MustFieldMask(FieldEmailAddresses))
	assert.False(t, person.Changed())

	emails, err := person.EmailAddresses()
	require.NoError(t, err)
	emails.Append("Other", "new@example.org")
	assert.True(t, person.Changed())
}

// TestPersonWrapper_LoggingName tests the display name fallback chain
func TestPersonWrapper_LoggingName(t *testing.T) {
	person := PersonFromRaw(samplePersonRecord(), MustFieldMask(FieldNames))
	assert.Equal(t, "Peter Tester", person.LoggingName())

	// Without names in the mask the resource name identifies the
	// person.
	person = PersonFromRaw(samplePersonRecord(), MustFieldMask(FieldEmailAddresses))
	assert.Equal(t, "people/c123", person.LoggingName())
}

// TestPersonWrapper_Etag tests that the version tag rides along
// outside the mask
func TestPersonWrapper_Etag(t *testing.T) {
	person := PersonFromRaw(samplePersonRecord(), MustFieldMask(FieldNames))
	assert.Equal(t, "tag-1", person.Etag())

	out, err := person.ToRaw(MustFieldMask(FieldNames))
	require.NoError(t, err)
	assert.NotContains(t, out, "etag")
}
