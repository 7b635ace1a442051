package ui

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/ui/json"
	"github.com/arthur-debert/frece/pkg/ui/terminal"
	"github.com/arthur-debert/frece/pkg/ui/text"
	"github.com/arthur-debert/frece/pkg/ui/xml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"term", FormatTerminal},
		{"Terminal", FormatTerminal},
		{"plain", FormatText},
		{" json ", FormatJSON},
		{"XML", FormatXML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestFormatStringRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON, FormatXML} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	r, err := NewRenderer(FormatAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &text.Renderer{}, r)

	r, err = NewRenderer(FormatTerminal, &buf)
	require.NoError(t, err)
	assert.IsType(t, &terminal.Renderer{}, r)

	r, err = NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)
	assert.IsType(t, &json.Renderer{}, r)

	r, err = NewRenderer(FormatXML, &buf)
	require.NoError(t, err)
	assert.IsType(t, &xml.Renderer{}, r)

	_, err = NewRenderer(Format(99), &buf)
	assert.Error(t, err)
}
