package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyLevel_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    NotifyLevel
		wantErr bool
	}{
		{name: "number", raw: `2`, want: 2},
		{name: "numeric string", raw: `"3"`, want: 3},
		{name: "padded string", raw: `" 1 "`, want: 1},
		{name: "integral float", raw: `1.0`, want: 1},
		{name: "fraction", raw: `1.5`, wantErr: true},
		{name: "word", raw: `"high"`, wantErr: true},
		{name: "boolean", raw: `true`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var level NotifyLevel

			err := json.Unmarshal([]byte(tc.raw), &level)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, level)
		})
	}
}
