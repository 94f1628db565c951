package domain

import "errors"

// EmailAddresses is the container for the emailAddresses field.
type EmailAddresses struct {
	RepeatedField[EmailAddress]
}

// Append adds a new email address with the given label and value and
// returns its typed view for further mutation.
func (c *EmailAddresses) Append(label, value string) EmailAddress {
	return c.appendPart(map[string]any{keyType: label, keyValue: value})
}

// Values returns all email address strings in order.
func (c *EmailAddresses) Values() []string {
	all := c.All()
	out := make([]string, len(all))
	for i, e := range all {
		out[i] = e.Value()
	}
	return out
}

// AllOfType returns all entries carrying the given label.
func (c *EmailAddresses) AllOfType(label string) []EmailAddress {
	var out []EmailAddress
	for _, e := range c.All() {
		if e.Type() == label {
			out = append(out, e)
		}
	}
	return out
}

// FirstOfType returns the first entry carrying the given label.
func (c *EmailAddresses) FirstOfType(label string) (EmailAddress, bool) {
	for _, e := range c.All() {
		if e.Type() == label {
			return e, true
		}
	}
	return EmailAddress{}, false
}

// RemoveByValue removes every entry with the given email address.
func (c *EmailAddresses) RemoveByValue(value string) int {
	return c.RemoveFunc(func(e EmailAddress) bool { return e.Value() == value })
}

// RemoveByType removes every entry with the given label.
func (c *EmailAddresses) RemoveByType(label string) int {
	return c.RemoveFunc(func(e EmailAddress) bool { return e.Type() == label })
}

// PhoneNumbers is the container for the phoneNumbers field.
type PhoneNumbers struct {
	RepeatedField[PhoneNumber]
}

func (c *PhoneNumbers) Append(label, number string) PhoneNumber {
	return c.appendPart(map[string]any{keyType: label, keyValue: number})
}

func (c *PhoneNumbers) Values() []string {
	all := c.All()
	out := make([]string, len(all))
	for i, p := range all {
		out[i] = p.Value()
	}
	return out
}

func (c *PhoneNumbers) FirstOfType(label string) (PhoneNumber, bool) {
	for _, p := range c.All() {
		if p.Type() == label {
			return p, true
		}
	}
	return PhoneNumber{}, false
}

func (c *PhoneNumbers) RemoveByValue(number string) int {
	return c.RemoveFunc(func(p PhoneNumber) bool { return p.Value() == number })
}

func (c *PhoneNumbers) RemoveByType(label string) int {
	return c.RemoveFunc(func(p PhoneNumber) bool { return p.Type() == label })
}

// Addresses is the container for the addresses field.
type Addresses struct {
	RepeatedField[Address]
}

// Append adds a new address. The city is the minimal required
// information; all other attributes can be set on the returned view.
func (c *Addresses) Append(label, city string) Address {
	return c.appendPart(map[string]any{keyType: label, "city": city})
}

func (c *Addresses) FirstOfType(label string) (Address, bool) {
	for _, a := range c.All() {
		if a.Type() == label {
			return a, true
		}
	}
	return Address{}, false
}

func (c *Addresses) RemoveByType(label string) int {
	return c.RemoveFunc(func(a Address) bool { return a.Type() == label })
}

// Birthdays is the container for the birthdays field.
type Birthdays struct {
	RepeatedField[Birthday]
}

func (c *Birthdays) Append(d DateValue) Birthday {
	return c.appendPart(map[string]any{keyDate: d.wire()})
}

// ReplaceWithSingle discards all current birthdays and sets the given
// date as the only one.
func (c *Birthdays) ReplaceWithSingle(d DateValue) Birthday {
	c.RemoveAll()
	return c.Append(d)
}

// Dates returns all birthday dates in order.
func (c *Birthdays) Dates() []DateValue {
	all := c.All()
	out := make([]DateValue, len(all))
	for i, b := range all {
		out[i] = b.Date()
	}
	return out
}

func (c *Birthdays) RemoveByDate(d DateValue) int {
	return c.RemoveFunc(func(b Birthday) bool { return b.Date().Equal(d) })
}

// Events is the container for the events field.
type Events struct {
	RepeatedField[Event]
}

func (c *Events) Append(label string, d DateValue) Event {
	return c.appendPart(map[string]any{keyType: label, keyDate: d.wire()})
}

func (c *Events) FirstOfType(label string) (Event, bool) {
	for _, e := range c.All() {
		if e.Type() == label {
			return e, true
		}
	}
	return Event{}, false
}

func (c *Events) RemoveByType(label string) int {
	return c.RemoveFunc(func(e Event) bool { return e.Type() == label })
}

func (c *Events) RemoveByDate(d DateValue) int {
	return c.RemoveFunc(func(e Event) bool { return e.Date().Equal(d) })
}

// ErrSingleName is returned when appending a second name entry. The
// API keeps names as a list but allows at most one entry per person.
var ErrSingleName = errors.New("only one name entry is allowed per person")

// Names is the container for the names field. On the wire it is a
// list, but a person carries at most one name, so the container also
// exposes the single entry's accessors directly.
type Names struct {
	RepeatedField[Name]
}

// Append adds the name entry. Fails with ErrSingleName if one exists.
func (c *Names) Append(unstructuredName string) (Name, error) {
	if c.Len() > 0 {
		return Name{}, ErrSingleName
	}
	return c.appendPart(map[string]any{"unstructuredName": unstructuredName}), nil
}

// single returns the name entry, creating an empty one when absent.
func (c *Names) single() Name {
	if n, ok := c.First(); ok {
		return n
	}
	return c.appendPart(map[string]any{})
}

// DisplayName returns the server-rendered display name, "" when the
// person has no name entry.
func (c *Names) DisplayName() string {
	n, ok := c.First()
	if !ok {
		return ""
	}
	return n.DisplayName()
}

func (c *Names) UnstructuredName() string {
	n, ok := c.First()
	if !ok {
		return ""
	}
	return n.UnstructuredName()
}

func (c *Names) SetUnstructuredName(v string) { c.single().SetUnstructuredName(v) }

func (c *Names) GivenName() string {
	n, ok := c.First()
	if !ok {
		return ""
	}
	return n.GivenName()
}

func (c *Names) SetGivenName(v string) { c.single().SetGivenName(v) }

func (c *Names) FamilyName() string {
	n, ok := c.First()
	if !ok {
		return ""
	}
	return n.FamilyName()
}

func (c *Names) SetFamilyName(v string) { c.single().SetFamilyName(v) }
