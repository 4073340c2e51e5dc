package netsuite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want []Row
	}{
		{
			name: "empty",
			rows: nil,
			want: []Row{},
		},
		{
			name: "no duplicates",
			rows: []Row{{"internalid": "1"}, {"internalid": "2"}},
			want: []Row{{"internalid": "1"}, {"internalid": "2"}},
		},
		{
			name: "first occurrence wins",
			rows: []Row{
				{"internalid": "1", "line": "a"},
				{"internalid": "1", "line": "b"},
				{"internalid": "2", "line": "c"},
				{"internalid": "1", "line": "d"},
			},
			want: []Row{
				{"internalid": "1", "line": "a"},
				{"internalid": "2", "line": "c"},
			},
		},
		{
			name: "missing internalid collapses together",
			rows: []Row{{"foo": "x"}, {"bar": "y"}},
			want: []Row{{"foo": "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedupe(tt.rows))
		})
	}
}

func TestRowString(t *testing.T) {
	row := Row{"name": "Acme", "missing": nil}

	assert.Equal(t, "Acme", row.String("name"))
	assert.Equal(t, "", row.String("missing"))
	assert.Equal(t, "", row.String("absent"))
	assert.True(t, row.Has("name"))
	assert.False(t, row.Has("absent"))
}
