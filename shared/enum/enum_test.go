package enum_test

import (
	"bestevents/shared/enum"
	"testing"

	"github.com/stretchr/testify/assert"
)

type size string

var sizes = enum.NewTable(
	enum.Member[size]{Code: "small", Label: "Small Room"},
	enum.Member[size]{Code: "large", Label: "Large Hall"},
)

func TestTable_Parse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   size
		wantOK bool
	}{
		{name: "code", input: "small", want: "small", wantOK: true},
		{name: "label", input: "Large Hall", want: "large", wantOK: true},
		{name: "label any case with spaces", input: "  large hall ", want: "large", wantOK: true},
		{name: "unknown", input: "medium", want: "medium", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sizes.Parse(tt.input)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestTable_Lookup(t *testing.T) {
	assert.True(t, sizes.Contains("small"))
	assert.False(t, sizes.Contains("Small Room"))
	assert.Equal(t, "Large Hall", sizes.Label("large"))
	assert.Equal(t, "tiny", sizes.Label("tiny"))
	assert.Equal(t, []size{"small", "large"}, sizes.Codes())
	assert.Equal(t, []string{"Small Room", "Large Hall"}, sizes.Labels())
}
