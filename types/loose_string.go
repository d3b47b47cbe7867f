package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// LooseString is a string field that also accepts JSON numbers and booleans,
// keeping their literal text. null decodes to "".
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = LooseString(value)
	case json.Number:
		*s = LooseString(value.String())
	case bool:
		*s = LooseString(strconv.FormatBool(value))
	default:
		return fmt.Errorf("expected a string, got %s", data)
	}
	return nil
}

func (s LooseString) String() string {
	return string(s)
}
