package models

import (
	"encoding/json"
	"time"
)

// Timestamp layouts observed in upstream ticket feeds. The backend is not
// consistent about fractional seconds or zone suffixes.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp normalizes an ISO-8601-ish timestamp string. Unparseable or
// missing values come back as the zero time, which ranks lowest in recency
// ordering instead of failing the whole payload.
func ParseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// UnmarshalJSON decodes a ticket while tolerating the upstream's loose
// timestamp formats. All other malformed fields fall back to zero values and
// are handled downstream as non-urgent.
func (t *Ticket) UnmarshalJSON(data []byte) error {
	type ticketAlias Ticket
	aux := struct {
		Timestamp string `json:"timestamp"`
		*ticketAlias
	}{ticketAlias: (*ticketAlias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	t.Timestamp = ParseTimestamp(aux.Timestamp)
	return nil
}
