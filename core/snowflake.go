package core

import (
	"bytes"
	"fmt"
	"strconv"
)

// Snowflake is a Discord snowflake identifier. Discord transports these as
// decimal strings, while stored records keep the compact integer form. This
// type is the single codec between the two representations - conversions
// should not be scattered at call sites.
type Snowflake uint64

// ParseSnowflake converts a Discord string identifier into a Snowflake
func ParseSnowflake(id string) (Snowflake, error) {
	if id == "" {
		return 0, fmt.Errorf("snowflake cannot be empty")
	}
	value, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse snowflake %q: %w", id, err)
	}
	return Snowflake(value), nil
}

// String returns the Discord string form of the identifier
func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// MarshalJSON encodes the snowflake as a JSON number
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(s), 10)), nil
}

// UnmarshalJSON accepts both the integer form and the quoted string form,
// since Discord payloads use strings while stored records use numbers
func (s *Snowflake) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	value, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse snowflake %s: %w", data, err)
	}
	*s = Snowflake(value)
	return nil
}
