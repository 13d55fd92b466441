package save_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemap/pkg/errors"
	"github.com/agentstation/cinemap/pkg/save"
)

func TestDefaults(t *testing.T) {
	opts := save.Defaults()
	assert.Equal(t, save.FormatText, opts.Format())
	assert.Empty(t, opts.Path())
	assert.Nil(t, opts.Writer())
}

func TestApply(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := save.Defaults().Apply(
		save.WithFormat(save.FormatYAML),
		save.WithPath("out.yaml"),
		save.WithWriter(buf),
	)

	assert.Equal(t, save.FormatYAML, opts.Format())
	assert.Equal(t, "out.yaml", opts.Path())
	assert.Same(t, buf, opts.Writer())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want save.Format
	}{
		{"text", save.FormatText},
		{"", save.FormatText},
		{"JSON", save.FormatJSON},
		{"yml", save.FormatYAML},
		{" md ", save.FormatMarkdown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := save.ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}

	_, err := save.ParseFormat("xml")
	assert.True(t, errors.IsValidationError(err))
}

func TestFormatString(t *testing.T) {
	names := make([]string, 0, len(save.Formats))
	for _, f := range save.Formats {
		names = append(names, f.String())
	}
	assert.Equal(t, []string{"text", "json", "yaml", "markdown"}, names)
	assert.Equal(t, "unknown", save.Format(42).String())
	assert.False(t, save.Format(42).IsValid())
}
