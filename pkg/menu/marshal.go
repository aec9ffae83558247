package menu

import (
	"encoding/json"
	"fmt"
)

// Marshal serializes days as JSON followed by a newline
func Marshal(days []Day, pretty bool) ([]byte, error) {
	if days == nil {
		days = []Day{}
	}

	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(days, "", "  ")
	} else {
		data, err = json.Marshal(days)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling menu: %w", err)
	}
	return append(data, '\n'), nil
}
