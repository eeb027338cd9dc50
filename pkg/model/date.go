package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

const dateLayout = "2006-01-02"

// Date is a calendar date exchanged as "YYYY-MM-DD" over JSON and
// stored as a BSON datetime at midnight UTC. RFC3339 input is also
// accepted for callers that send full timestamps.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t.UTC()}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.Time)
}

func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var parsed time.Time
	if err := bson.UnmarshalValue(t, data, &parsed); err != nil {
		return err
	}
	d.Time = parsed
	return nil
}
