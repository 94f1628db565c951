package peopleapi

import (
	"encoding/json"
	"fmt"
	"unicode"

	"google.golang.org/api/people/v1"

	"github.com/custodia-labs/gpeople/internal/core/domain"
)

// personToRecord converts a typed API person to the mapping-shaped raw
// record the core works with, going through the message's own JSON
// form so wire keys and entry order are preserved exactly.
func personToRecord(p *people.Person) (domain.RawRecord, error) {
	if p == nil {
		return domain.RawRecord{}, nil
	}
	data, err := p.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode person: %w", err)
	}
	var record domain.RawRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode person: %w", err)
	}
	return record, nil
}

// recordToPerson converts a raw record back into the typed API
// message. Every top-level key of the record is force-sent so that a
// field present-but-empty (an emptied repeated container) reaches the
// server instead of being dropped by omitempty.
func recordToPerson(record domain.RawRecord) (*people.Person, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var p people.Person
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	for key := range record {
		p.ForceSendFields = append(p.ForceSendFields, goFieldName(key))
	}
	return &p, nil
}

// groupToRecord converts a typed contact group to a raw record.
func groupToRecord(g *people.ContactGroup) (domain.RawRecord, error) {
	if g == nil {
		return domain.RawRecord{}, nil
	}
	data, err := g.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode group: %w", err)
	}
	var record domain.RawRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode group: %w", err)
	}
	return record, nil
}

// goFieldName maps a wire key to the generated struct's field name,
// e.g. "emailAddresses" to "EmailAddresses".
func goFieldName(wireKey string) string {
	if wireKey == "" {
		return ""
	}
	runes := []rune(wireKey)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
