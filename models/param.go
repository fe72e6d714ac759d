package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// LookupParam is a lookup key read from a JSON body. Clients send serial and
// job numbers both as strings and as bare numbers, so a number is kept as its
// literal text. null reads as "".
type LookupParam string

func (p *LookupParam) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("lookup param: empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = LookupParam(s)
	case 'n':
		*p = ""
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*p = LookupParam(n.String())
	default:
		return errors.New("lookup param: must be a string or number")
	}
	return nil
}
