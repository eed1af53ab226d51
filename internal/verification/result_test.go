package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVerifiedFlag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		value    string
		verified bool
		wantErr  bool
	}{
		{name: "hex true", value: "0x01", verified: true},
		{name: "hex false", value: "0x00"},
		{name: "bare true", value: "1", verified: true},
		{name: "bare false", value: "0"},
		{name: "zero padded true", value: "0x0000000000000001", verified: true},
		{name: "all zeros", value: "0x0000000000000000"},
		{name: "surrounding whitespace", value: "  0x01\n", verified: true},
		{name: "empty", value: "", wantErr: true},
		{name: "prefix only", value: "0x", wantErr: true},
		{name: "two", value: "0x02", wantErr: true},
		{name: "not a flag", value: "0xdeadbeef", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			verified, err := DecodeVerifiedFlag(tc.value)
			if tc.wantErr {
				var invalid *InvalidEncryptionResultError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tc.value, invalid.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.verified, verified)
		})
	}
}
