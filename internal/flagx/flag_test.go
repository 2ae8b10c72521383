package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-d", "memento.db", "-l", "debug"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "memento.db"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-d=journal.db", "-l", "info"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=journal.db"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-config=alt.json"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "-config=alt.json"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-b", "one", "-b", "two"},
			allowedFlags: []string{"-b"},
			want:         []string{"-b", "one", "-b", "two"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/etc/memento.json", ConfigPath([]string{"-c", "/etc/memento.json"}))
	assert.Equal(t, "/tmp/long.json", ConfigPath([]string{"-config", "/tmp/long.json", "-d", "x.db"}))
	assert.Equal(t, "/tmp/2.json", ConfigPath([]string{"-c", "/tmp/1.json", "-config", "/tmp/2.json"}))
	assert.Empty(t, ConfigPath([]string{"-d", "x.db"}))
}

func TestJsonConfigFlags_ReadsProcessArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"memento", "-c", "/path/short.json"}
	assert.Equal(t, "/path/short.json", JsonConfigFlags())
}
