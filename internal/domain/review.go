package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Review is the structured content of a commit or merge request review.
type Review struct {
	Info       string      `json:"info"`
	Suggestion Suggestions `json:"suggestion,omitempty"`
	Level      *int        `json:"level,omitempty"`
}

// Suggestion is the proposed content of one file.
type Suggestion struct {
	FilePath string
	Code     string
}

// Suggestions is a file path → code mapping that keeps the order of the
// JSON object it was decoded from.
type Suggestions []Suggestion

func (s *Suggestions) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("suggestion must be a JSON object")
	}

	var out Suggestions

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected suggestion key %v", keyTok)
		}

		var code string
		if err := dec.Decode(&code); err != nil {
			return fmt.Errorf("suggestion for %q: %w", key, err)
		}

		out = append(out, Suggestion{FilePath: key, Code: code})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out

	return nil
}

func (s Suggestions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, sg := range s {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(sg.FilePath)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(sg.Code)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
