package api

import "encoding/json"

// fallback keeps the existing value when the incoming one is empty. This is
// the blog-style partial update: an empty string collapses to "not
// provided".
func fallback(existing, incoming string) string {
	if incoming == "" {
		return existing
	}
	return incoming
}

// OptionalString is a JSON field that distinguishes "absent" from
// "provided as empty or null". Project link fields need the distinction:
// omitting the field keeps the stored value, while sending "" or null
// clears it.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// Merge resolves the field against the stored value: absent keeps
// existing, present overwrites with whatever was sent.
func (o OptionalString) Merge(existing *string) *string {
	if !o.Set {
		return existing
	}
	return o.Value
}
