package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Field identifies one addressable attribute of a person resource.
// The values match the personFields identifiers of the People API.
type Field string

// Person fields currently implemented by the wrapper. The catalog is
// fixed and versioned against the remote schema; fields the wrapper
// does not implement are not listed and cannot appear in a mask.
const (
	FieldAddresses      Field = "addresses"
	FieldBirthdays      Field = "birthdays"
	FieldEmailAddresses Field = "emailAddresses"
	FieldEvents         Field = "events"
	FieldNames          Field = "names"
	FieldPhoneNumbers   Field = "phoneNumbers"
)

// fieldResourceName is the key of the resource identifier in a raw
// record. It is not part of the catalog: the identifier is carried on
// every record regardless of mask and is never written back.
const fieldResourceName = "resourceName"

// fieldEtag is the key of the record version tag. Like the resource
// name it rides along outside the catalog: returned on every fetch,
// required by the server on update.
const fieldEtag = "etag"

// Catalog returns all known person fields in wire order.
func Catalog() []Field {
	return []Field{
		FieldAddresses,
		FieldBirthdays,
		FieldEmailAddresses,
		FieldEvents,
		FieldNames,
		FieldPhoneNumbers,
	}
}

// knownFields is the catalog as a lookup set.
var knownFields = func() map[Field]struct{} {
	m := make(map[Field]struct{})
	for _, f := range Catalog() {
		m[f] = struct{}{}
	}
	return m
}()

// FieldMask is the set of fields an operation is scoped to read or
// write. Masks are value objects: construct once, share read-only.
type FieldMask struct {
	fields map[Field]struct{}
}

// NewFieldMask builds a mask from catalog fields. Duplicates are
// collapsed. An identifier outside the catalog fails with
// ErrUnknownField.
func NewFieldMask(fields ...Field) (FieldMask, error) {
	m := make(map[Field]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := knownFields[f]; !ok {
			return FieldMask{}, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
		}
		m[f] = struct{}{}
	}
	return FieldMask{fields: m}, nil
}

// MustFieldMask is NewFieldMask for masks built from catalog constants.
// It panics on an unknown field and is intended for fixed masks in
// code and tests.
func MustFieldMask(fields ...Field) FieldMask {
	m, err := NewFieldMask(fields...)
	if err != nil {
		panic(err)
	}
	return m
}

// Contains reports whether the field is part of the mask.
func (m FieldMask) Contains(f Field) bool {
	_, ok := m.fields[f]
	return ok
}

// IsSubsetOf reports whether every field of m is contained in other.
func (m FieldMask) IsSubsetOf(other FieldMask) bool {
	for f := range m.fields {
		if !other.Contains(f) {
			return false
		}
	}
	return true
}

// Len returns the number of fields in the mask.
func (m FieldMask) Len() int {
	return len(m.fields)
}

// Fields returns the mask's fields in deterministic (lexical) order.
func (m FieldMask) Fields() []Field {
	fields := make([]Field, 0, len(m.fields))
	for f := range m.fields {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// Wire renders the canonical mask string for the transport:
// comma-joined, deduplicated, lexically ordered field identifiers.
func (m FieldMask) Wire() string {
	fields := m.Fields()
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = string(f)
	}
	return strings.Join(parts, ",")
}

// String implements fmt.Stringer using the wire form.
func (m FieldMask) String() string {
	return m.Wire()
}

// ParseFieldMask parses a comma-separated mask string back into a
// FieldMask, validating every identifier against the catalog.
func ParseFieldMask(s string) (FieldMask, error) {
	if strings.TrimSpace(s) == "" {
		return FieldMask{fields: map[Field]struct{}{}}, nil
	}
	parts := strings.Split(s, ",")
	fields := make([]Field, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, Field(strings.TrimSpace(p)))
	}
	return NewFieldMask(fields...)
}
