package domain

import (
	"fmt"
	"reflect"
)

// PersonWrapper is the local, partial representation of one person
// record. It holds exactly the fields of the mask it was populated
// with; a field outside the mask is genuinely unknown and its accessor
// fails, which is the central contract preventing accidental loss of
// unrequested data on write-back.
//
// Wrappers are mutated only through their field accessors. They are
// not safe for concurrent use.
type PersonWrapper struct {
	resourceName string
	etag         string
	mask         FieldMask
	model        RawRecord
	original     RawRecord
}

// PersonFromRaw builds a wrapper from a raw record returned by the
// transport together with the mask used for the request. Fields in the
// mask but absent from the record are present-but-empty; fields
// outside the mask are not represented at all. The record is
// deep-copied, the wrapper never aliases transport memory.
func PersonFromRaw(raw RawRecord, mask FieldMask) *PersonWrapper {
	model := RawRecord{}
	for _, f := range mask.Fields() {
		if v, ok := raw[string(f)]; ok {
			model[string(f)] = copyValue(v)
		}
	}
	return &PersonWrapper{
		resourceName: recordString(raw, fieldResourceName),
		etag:         recordString(raw, fieldEtag),
		mask:         mask,
		model:        model,
		original:     copyRecord(model),
	}
}

// NewPersonForCreate builds a wrapper in the to-be-created state: no
// identifier, mask containing only the names field, and the name
// populated with the given unstructured name.
func NewPersonForCreate(unstructuredName string) *PersonWrapper {
	mask := MustFieldMask(FieldNames)
	model := RawRecord{
		string(FieldNames): []any{
			map[string]any{"unstructuredName": unstructuredName},
		},
	}
	return &PersonWrapper{
		mask:     mask,
		model:    model,
		original: copyRecord(model),
	}
}

// ResourceName returns the server-side identifier, "" for a wrapper
// that has not been created on the server yet.
func (p *PersonWrapper) ResourceName() string {
	return p.resourceName
}

// Created reports whether the wrapper carries a server-side identifier.
func (p *PersonWrapper) Created() bool {
	return p.resourceName != ""
}

// Etag returns the record version tag the wrapper was fetched with.
// The server requires it on updates to detect concurrent modification.
func (p *PersonWrapper) Etag() string {
	return p.etag
}

// Mask returns the mask the wrapper was populated with.
func (p *PersonWrapper) Mask() FieldMask {
	return p.mask
}

// Changed reports whether any field was mutated since the wrapper was
// built.
func (p *PersonWrapper) Changed() bool {
	return !reflect.DeepEqual(p.model, p.original)
}

// LoggingName returns an identifying string for log output: the
// display name when the names field is populated, the resource name
// otherwise.
func (p *PersonWrapper) LoggingName() string {
	if p.mask.Contains(FieldNames) {
		names := Names{newRepeatedField(p.model, string(FieldNames), wrapName)}
		if dn := names.DisplayName(); dn != "" {
			return dn
		}
	}
	return p.resourceName
}

// require fails with ErrFieldNotRequested when the field is outside
// the wrapper's mask.
func (p *PersonWrapper) require(f Field) error {
	if !p.mask.Contains(f) {
		return fmt.Errorf("%w: %q (populated mask %q)", ErrFieldNotRequested, string(f), p.mask.Wire())
	}
	return nil
}

func wrapName(m map[string]any) Name               { return Name{part: m} }
func wrapEmailAddress(m map[string]any) EmailAddress { return EmailAddress{part: m} }
func wrapPhoneNumber(m map[string]any) PhoneNumber { return PhoneNumber{part: m} }
func wrapAddress(m map[string]any) Address         { return Address{part: m} }
func wrapBirthday(m map[string]any) Birthday       { return Birthday{part: m} }
func wrapEvent(m map[string]any) Event             { return Event{part: m} }

// Names returns the names container. Fails with ErrFieldNotRequested
// when names is not in the wrapper's mask.
func (p *PersonWrapper) Names() (*Names, error) {
	if err := p.require(FieldNames); err != nil {
		return nil, err
	}
	return &Names{newRepeatedField(p.model, string(FieldNames), wrapName)}, nil
}

// EmailAddresses returns the email addresses container.
func (p *PersonWrapper) EmailAddresses() (*EmailAddresses, error) {
	if err := p.require(FieldEmailAddresses); err != nil {
		return nil, err
	}
	return &EmailAddresses{newRepeatedField(p.model, string(FieldEmailAddresses), wrapEmailAddress)}, nil
}

// PhoneNumbers returns the phone numbers container.
func (p *PersonWrapper) PhoneNumbers() (*PhoneNumbers, error) {
	if err := p.require(FieldPhoneNumbers); err != nil {
		return nil, err
	}
	return &PhoneNumbers{newRepeatedField(p.model, string(FieldPhoneNumbers), wrapPhoneNumber)}, nil
}

// Addresses returns the postal addresses container.
func (p *PersonWrapper) Addresses() (*Addresses, error) {
	if err := p.require(FieldAddresses); err != nil {
		return nil, err
	}
	return &Addresses{newRepeatedField(p.model, string(FieldAddresses), wrapAddress)}, nil
}

// Birthdays returns the birthdays container.
func (p *PersonWrapper) Birthdays() (*Birthdays, error) {
	if err := p.require(FieldBirthdays); err != nil {
		return nil, err
	}
	return &Birthdays{newRepeatedField(p.model, string(FieldBirthdays), wrapBirthday)}, nil
}

// Events returns the events container.
func (p *PersonWrapper) Events() (*Events, error) {
	if err := p.require(FieldEvents); err != nil {
		return nil, err
	}
	return &Events{newRepeatedField(p.model, string(FieldEvents), wrapEvent)}, nil
}

// FieldContainer returns the container for any catalog field, erased
// to the generic removal/len surface. Typed accessors are preferred;
// this exists for callers iterating the catalog.
func (p *PersonWrapper) FieldContainer(f Field) (any, error) {
	switch f {
	case FieldNames:
		return p.Names()
	case FieldEmailAddresses:
		return p.EmailAddresses()
	case FieldPhoneNumbers:
		return p.PhoneNumbers()
	case FieldAddresses:
		return p.Addresses()
	case FieldBirthdays:
		return p.Birthdays()
	case FieldEvents:
		return p.Events()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
}

// ToRaw serialises the wrapper for write-back, emitting exactly the
// fields of the given mask. The mask must be a subset of the mask the
// wrapper was populated with; asserting state outside the populated
// mask fails with ErrMaskMismatch. Fields in the mask but never
// touched by the caller are re-emitted unchanged.
func (p *PersonWrapper) ToRaw(mask FieldMask) (RawRecord, error) {
	if !mask.IsSubsetOf(p.mask) {
		return nil, fmt.Errorf("%w: write mask %q, populated mask %q",
			ErrMaskMismatch, mask.Wire(), p.mask.Wire())
	}
	out := RawRecord{}
	for _, f := range mask.Fields() {
		if v, ok := p.model[string(f)]; ok {
			out[string(f)] = copyValue(v)
		}
	}
	return out, nil
}
