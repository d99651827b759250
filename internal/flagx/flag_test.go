package flagx

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String("users", "", "")
	fs.String("output", "", "")
	fs.String("ledger", "", "")
	fs.Bool("version", false, "")
	return fs
}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate values",
			args: []string{"-users", "u.json", "-x", "1", "-output", "out.txt"},
			want: []string{"-users", "u.json", "-output", "out.txt"},
		},
		{
			name: "equals form and double dash",
			args: []string{"--users=u.json", "-ledger=l.db", "-other=1"},
			want: []string{"--users=u.json", "-ledger=l.db"},
		},
		{
			name: "string flag consumes a dash-prefixed value",
			args: []string{"-output", "-report.txt", "-users", "u.json"},
			want: []string{"-output", "-report.txt", "-users", "u.json"},
		},
		{
			name: "bool flag does not consume the next argument",
			args: []string{"-version", "-output", "o.txt"},
			want: []string{"-version", "-output", "o.txt"},
		},
		{
			name: "bool flag with explicit value",
			args: []string{"-version=false", "stray"},
			want: []string{"-version=false"},
		},
		{
			name: "positional arguments dropped",
			args: []string{"report", "-", "--", "-users", "u.json"},
			want: []string{"-users", "u.json"},
		},
		{
			name: "trailing flag without value",
			args: []string{"-users"},
			want: []string{"-users"},
		},
		{
			name: "nothing matches",
			args: []string{"-a", "1"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(newFlagSet(), tt.args))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "cfg.json", ConfigPath([]string{"-users", "u.json", "-c", "cfg.json"}))
	assert.Equal(t, "other.json", ConfigPath([]string{"-config=other.json"}))
	assert.Equal(t, "-cfg.json", ConfigPath([]string{"-c", "-cfg.json"}))
	assert.Equal(t, "", ConfigPath([]string{"-users", "u.json"}))
	assert.Equal(t, "", ConfigPath(nil))
}
