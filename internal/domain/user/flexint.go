package user

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number or a quoted number. Form clients send age
// either way, and the API coerces both to an integer.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string

		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		s = strings.TrimSpace(s)

		if s == "" {
			*f = 0
			return nil
		}

		n, err := strconv.Atoi(s)

		if err != nil {
			return err
		}

		*f = FlexInt(n)
		return nil
	}

	var n int

	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*f = FlexInt(n)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}
