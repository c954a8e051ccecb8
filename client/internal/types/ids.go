package types

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// ID is a backend identifier. The backend stores 64-bit integers and may
// serialise them as JSON numbers or as strings (to survive float64 readers),
// so ID decodes from both and always encodes as a string.
type ID string

// UnmarshalJSON accepts `123`, `"123"` and `null`.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	if _, err := strconv.ParseInt(string(data), 10, 64); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(data)
	return nil
}

// Int64 parses the identifier as a number.
func (id ID) Int64() (int64, error) { return strconv.ParseInt(string(id), 10, 64) }

// Count is a page counter that tolerates string-encoded numbers.
type Count int64

// UnmarshalJSON accepts `12`, `"12"` and `null`.
func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid count %s: %w", data, err)
	}
	*c = Count(n)
	return nil
}
