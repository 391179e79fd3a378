package field

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newField(t *testing.T, mode Mode, edit func(*Config)) *Field {
	t.Helper()
	cfg := DefaultConfig(mode)
	if edit != nil {
		edit(&cfg)
	}
	f, err := New(mode, cfg)
	require.NoError(t, err)
	return f
}

func display(f *Field) string {
	var sb strings.Builder
	for _, c := range f.State().Cells {
		sb.WriteString(c.DisplayValue)
	}
	return sb.String()
}

func userFlags(f *Field) string {
	var sb strings.Builder
	for _, c := range f.State().Cells {
		if c.IsUserInput {
			sb.WriteByte('u')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
