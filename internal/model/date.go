package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Date is the birth-date field of create and update payloads. Besides
// "YYYY-MM-DD" it accepts full timestamps such as "1990-01-01T00:00:00.000Z",
// keeping the calendar date as written, the same way PostgreSQL casts a
// timestamp literal to date.
type Date pgtype.Date

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if len(s) > 10 && (s[10] == 'T' || s[10] == ' ') {
		if _, err := time.Parse(time.RFC3339Nano, s); err != nil {
			if _, err := time.Parse("2006-01-02 15:04:05", s); err != nil {
				return fmt.Errorf("invalid date %q", s)
			}
		}
		s = s[:10]
	}

	var pd pgtype.Date
	if err := pd.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = Date(pd)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return pgtype.Date(d).MarshalJSON()
}

// PgDate returns the value handed to pgx as a query argument.
func (d Date) PgDate() pgtype.Date {
	return pgtype.Date(d)
}
