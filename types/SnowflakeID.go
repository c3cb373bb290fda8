package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SnowflakeID is an int64 id serialised as a JSON string so browser
// clients never lose precision.
type SnowflakeID int64

func (s SnowflakeID) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// ParseSnowflakeID reads the stored text form, zero when malformed.
func ParseSnowflakeID(raw string) SnowflakeID {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return SnowflakeID(v)
}

// Marshal: int64 → string
func (s SnowflakeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(s), 10))
}

func (s *SnowflakeID) UnmarshalJSON(data []byte) error {
	// try as string first
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		val, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid snowflake ID string: %w", err)
		}
		*s = SnowflakeID(val)
		return nil
	}

	// fall back to a plain number
	var num int64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = SnowflakeID(num)
		return nil
	}

	return fmt.Errorf("invalid snowflake ID format")
}
