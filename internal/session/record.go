package session

import (
	"encoding/json"
	"strings"
)

// set of record fields that carry credentials
const (
	fieldAccessToken = "accessToken"
	fieldAPIKey      = "apiKey"
)

// Media is an image reference attached to a profile or listing
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Record is the cached identity of the signed-in user: the credentials
// issued at login along with the public profile fields last seen on the server
type Record struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
	APIKey      string `json:"apiKey,omitempty"`
	Credits     int    `json:"credits"`
	Avatar      *Media `json:"avatar,omitempty"`
	Banner      *Media `json:"banner,omitempty"`
	Bio         string `json:"bio,omitempty"`

	// Extra holds the fields the server sent that the record does not model,
	// so they survive a save and read cycle untouched
	Extra map[string]json.RawMessage `json:"-"`
}

type record Record

var knownFields = map[string]struct{}{
	"name":           {},
	"email":          {},
	fieldAccessToken: {},
	fieldAPIKey:      {},
	"credits":        {},
	"avatar":         {},
	"banner":         {},
	"bio":            {},
}

// MarshalJSON writes the record with any extra fields inlined
func (r Record) MarshalJSON() ([]byte, error) {
	fields, err := r.fields()
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// UnmarshalJSON reads the record and keeps the unmodeled fields in Extra
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	for k, v := range fields {
		if _, ok := knownFields[k]; ok {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = map[string]json.RawMessage{}
		}
		rec.Extra[k] = v
	}

	*r = Record(rec)
	return nil
}

func (r Record) fields() (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(record(r))
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	for k, v := range r.Extra {
		if _, ok := fields[k]; !ok {
			fields[k] = v
		}
	}
	return fields, nil
}

// Merge returns a copy of the record with the provided server fields laid
// over it. The merge is shallow: a field present in the server payload
// replaces the cached field of the same name, everything else is kept.
// Locally known credentials are never replaced by a server payload.
func (r Record) Merge(server map[string]json.RawMessage) (Record, error) {
	fields, err := r.fields()
	if err != nil {
		return Record{}, err
	}

	for k, v := range server {
		switch k {
		case fieldAccessToken:
			if r.AccessToken != "" {
				continue
			}
		case fieldAPIKey:
			if r.APIKey != "" {
				continue
			}
		}
		fields[k] = v
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return Record{}, err
	}

	var merged Record
	if err := json.Unmarshal(raw, &merged); err != nil {
		return Record{}, err
	}
	return merged, nil
}

// Initials returns the two letter avatar placeholder for the record
func (r Record) Initials() string {
	name := r.Name
	if name == "" {
		name = "NM"
	}
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// Session is the persisted login envelope: the auth response's data
// written verbatim, alongside whatever meta the server attached to it
type Session struct {
	Data *Record         `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}
