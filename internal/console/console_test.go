package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jimdowning-cyclops/vergate/internal/version"
)

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, PlainPalette())

	p.KeyValue("version", "1.2.3")

	assert.Equal(t, "version: 1.2.3\n", buf.String())
}

func TestPrinter_Verdict(t *testing.T) {
	tests := []struct {
		result version.RangeResult
		want   string
	}{
		{version.RangeIn, "new-parser: in\n"},
		{version.RangeOut, "new-parser: out\n"},
		{version.RangeUnknown, "new-parser: unknown\n"},
	}

	for _, tt := range tests {
		t.Run(tt.result.String(), func(t *testing.T) {
			var buf bytes.Buffer
			p := NewPrinter(&buf, PlainPalette())

			p.Verdict("new-parser", tt.result)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPalettesAreIndependent(t *testing.T) {
	// Two printers with different palettes must not share state.
	a := NewPrinter(&bytes.Buffer{}, DefaultPalette())
	b := NewPrinter(&bytes.Buffer{}, PlainPalette())

	assert.NotEqual(t, a.palette.In, b.palette.In)
}
