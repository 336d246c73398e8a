package models

import (
	"strconv"
	"strings"
)

// FlexID accepts an identifier sent either as a JSON number or as a
// numeric string ("3" and 3 are the same id). Anything unparseable
// decodes to 0, which no stored record ever uses.
type FlexID uint

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexID(n)
	return nil
}

func (f FlexID) Uint() uint {
	return uint(f)
}
