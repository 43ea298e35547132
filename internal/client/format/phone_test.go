package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitPhone(t *testing.T) {
	tests := []struct {
		in     string
		ddd    int
		number int64
	}{
		{"(11) 98888-7777", 11, 988887777},
		{"11988887777", 11, 988887777},
		{"(21) 3333-4444", 21, 33334444},
		{"21 3333 4444", 21, 33334444},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ddd, number, err := SplitPhone(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.ddd, ddd)
			require.Equal(t, tt.number, number)
		})
	}
}

func TestSplitPhoneInvalid(t *testing.T) {
	for _, in := range []string{"", "123", "119888877771234"} {
		_, _, err := SplitPhone(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestJoinPhone(t *testing.T) {
	require.Equal(t, "(11) 98888-7777", JoinPhone(11, 988887777))
	require.Equal(t, "(21) 3333-4444", JoinPhone(21, 33334444))
}
