package controllers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"akkor-hotel-backend/services"
)

const dateLayout = "2006-01-02"

var jsonNull = []byte("null")

// nullableString records whether the field appeared in the payload, so a
// literal null can clear the column instead of being dropped as a nil
// pointer.
type nullableString struct {
	services.NullableString
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, jsonNull) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

type nullableFloat64 struct {
	services.NullableFloat64
}

func (n *nullableFloat64) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, jsonNull) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// parseID converts a numeric path parameter; non-numeric ids are treated
// as payload-shape errors (422) by the callers. Any numeric id, zero
// included, goes through to the lookup and 404s if absent.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, raw)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
