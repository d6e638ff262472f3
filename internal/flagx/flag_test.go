package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-a", "http://localhost"},
			names: []string{"-c", "--config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "long flag with equals",
			args:  []string{"--config=alt.json", "-a", "http://localhost"},
			names: []string{"-c", "--config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "both forms present, order preserved",
			args:  []string{"--config=first.json", "-c", "second.json", "-x", "1"},
			names: []string{"-c", "--config"},
			want:  []string{"--config=first.json", "-c", "second.json"},
		},
		{
			name:  "unknown flags ignored",
			args:  []string{"-x", "1", "--y=2", "positional"},
			names: []string{"-c", "--config"},
			want:  []string{},
		},
		{
			name:  "flag without value at end kept as-is",
			args:  []string{"-c"},
			names: []string{"-c", "--config"},
			want:  []string{"-c"},
		},
		{
			name:  "flag followed by another flag has no value",
			args:  []string{"-c", "-notvalue"},
			names: []string{"-c", "--config"},
			want:  []string{"-c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.args, tt.names))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd", "-c", "admin.json", "-a", "http://localhost"}
	assert.Equal(t, "admin.json", ConfigFileFlag())

	os.Args = []string{"cmd", "--config=other.json"}
	assert.Equal(t, "other.json", ConfigFileFlag())

	os.Args = []string{"cmd", "-a", "http://localhost"}
	assert.Equal(t, "", ConfigFileFlag())
}
