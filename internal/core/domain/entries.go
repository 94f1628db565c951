package domain

// Wire keys shared across entry kinds.
const (
	keyValue         = "value"
	keyType          = "type"
	keyFormattedType = "formattedType"
	keyDate          = "date"
)

// EmailAddress is the typed view over one emailAddresses entry. It
// shares memory with its container; setters mutate the wrapper's
// record in place.
type EmailAddress struct {
	part map[string]any
}

// Value returns the email address string.
func (e EmailAddress) Value() string { return recordString(e.part, keyValue) }

// SetValue replaces the email address string.
func (e EmailAddress) SetValue(v string) { e.part[keyValue] = v }

// Type returns the free-text label of the entry, e.g. "Home".
func (e EmailAddress) Type() string { return recordString(e.part, keyType) }

// SetType replaces the label.
func (e EmailAddress) SetType(t string) { e.part[keyType] = t }

// FormattedType returns the server-rendered label. Read-only on the
// API; stale after SetType until the record is fetched again.
func (e EmailAddress) FormattedType() string { return recordString(e.part, keyFormattedType) }

// PhoneNumber is the typed view over one phoneNumbers entry.
type PhoneNumber struct {
	part map[string]any
}

func (p PhoneNumber) Value() string      { return recordString(p.part, keyValue) }
func (p PhoneNumber) SetValue(v string)  { p.part[keyValue] = v }
func (p PhoneNumber) Type() string       { return recordString(p.part, keyType) }
func (p PhoneNumber) SetType(t string)   { p.part[keyType] = t }
func (p PhoneNumber) FormattedType() string { return recordString(p.part, keyFormattedType) }

// CanonicalForm returns the server-canonicalised number. Read-only.
func (p PhoneNumber) CanonicalForm() string { return recordString(p.part, "canonicalForm") }

// Address is the typed view over one addresses entry.
type Address struct {
	part map[string]any
}

func (a Address) Type() string         { return recordString(a.part, keyType) }
func (a Address) SetType(t string)     { a.part[keyType] = t }
func (a Address) FormattedType() string { return recordString(a.part, keyFormattedType) }

// Formatted returns the server-rendered full address. Read-only.
func (a Address) Formatted() string { return recordString(a.part, "formattedValue") }

func (a Address) POBox() string              { return recordString(a.part, "poBox") }
func (a Address) SetPOBox(v string)          { a.part["poBox"] = v }
func (a Address) StreetAddress() string      { return recordString(a.part, "streetAddress") }
func (a Address) SetStreetAddress(v string)  { a.part["streetAddress"] = v }
func (a Address) ExtendedAddress() string    { return recordString(a.part, "extendedAddress") }
func (a Address) SetExtendedAddress(v string) { a.part["extendedAddress"] = v }
func (a Address) City() string               { return recordString(a.part, "city") }
func (a Address) SetCity(v string)           { a.part["city"] = v }
func (a Address) Region() string             { return recordString(a.part, "region") }
func (a Address) SetRegion(v string)         { a.part["region"] = v }
func (a Address) PostalCode() string         { return recordString(a.part, "postalCode") }
func (a Address) SetPostalCode(v string)     { a.part["postalCode"] = v }
func (a Address) Country() string            { return recordString(a.part, "country") }
func (a Address) SetCountry(v string)        { a.part["country"] = v }
func (a Address) CountryCode() string        { return recordString(a.part, "countryCode") }
func (a Address) SetCountryCode(v string)    { a.part["countryCode"] = v }

// Birthday is the typed view over one birthdays entry.
type Birthday struct {
	part map[string]any
}

// Date returns the birthday's possibly partial date.
func (b Birthday) Date() DateValue {
	if d, ok := b.part[keyDate].(map[string]any); ok {
		return dateFromWire(d)
	}
	return DateValue{}
}

// SetDate replaces the birthday's date.
func (b Birthday) SetDate(d DateValue) { b.part[keyDate] = d.wire() }

// Event is the typed view over one events entry.
type Event struct {
	part map[string]any
}

func (e Event) Type() string        { return recordString(e.part, keyType) }
func (e Event) SetType(t string)    { e.part[keyType] = t }
func (e Event) FormattedType() string { return recordString(e.part, keyFormattedType) }

func (e Event) Date() DateValue {
	if d, ok := e.part[keyDate].(map[string]any); ok {
		return dateFromWire(d)
	}
	return DateValue{}
}

func (e Event) SetDate(d DateValue) { e.part[keyDate] = d.wire() }

// Name is the typed view over the single names entry.
type Name struct {
	part map[string]any
}

// DisplayName returns the server-rendered display name. Read-only.
func (n Name) DisplayName() string { return recordString(n.part, "displayName") }

// DisplayNameLastFirst returns the server-rendered "Last, First" form.
// Read-only.
func (n Name) DisplayNameLastFirst() string { return recordString(n.part, "displayNameLastFirst") }

func (n Name) UnstructuredName() string       { return recordString(n.part, "unstructuredName") }
func (n Name) SetUnstructuredName(v string)   { n.part["unstructuredName"] = v }
func (n Name) GivenName() string              { return recordString(n.part, "givenName") }
func (n Name) SetGivenName(v string)          { n.part["givenName"] = v }
func (n Name) MiddleName() string             { return recordString(n.part, "middleName") }
func (n Name) SetMiddleName(v string)         { n.part["middleName"] = v }
func (n Name) FamilyName() string             { return recordString(n.part, "familyName") }
func (n Name) SetFamilyName(v string)         { n.part["familyName"] = v }
func (n Name) HonorificPrefix() string        { return recordString(n.part, "honorificPrefix") }
func (n Name) SetHonorificPrefix(v string)    { n.part["honorificPrefix"] = v }
func (n Name) HonorificSuffix() string        { return recordString(n.part, "honorificSuffix") }
func (n Name) SetHonorificSuffix(v string)    { n.part["honorificSuffix"] = v }
