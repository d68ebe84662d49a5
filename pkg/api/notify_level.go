package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NotifyLevel accepts a JSON number or a numeric string, as HTML form
// controls submit the level as text.
type NotifyLevel int

func (l *NotifyLevel) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)

	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}

		raw = []byte(strings.TrimSpace(s))
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || f != math.Trunc(f) {
		return fmt.Errorf("notify_level must be an integer, got %s", data)
	}

	*l = NotifyLevel(f)

	return nil
}
