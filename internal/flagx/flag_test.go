package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-a", "http://api.local", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://api.local"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--config=conf.json", "-a", "addr"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-z", "1", "-y=2"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "value starting with dash not swallowed",
			args:    []string{"-a", "-s", "422"},
			allowed: []string{"-a", "-s"},
			want:    []string{"-a", "-s", "422"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			require.Equal(t, tt.want, got)
		})
	}
}
