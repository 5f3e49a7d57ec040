package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		size int
		want [][]string
	}{
		{
			name: "empty input",
			ids:  nil,
			size: 50,
			want: nil,
		},
		{
			name: "single partial group",
			ids:  []string{"a", "b", "c"},
			size: 50,
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "exact multiple",
			ids:  []string{"a", "b", "c", "d"},
			size: 2,
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "remainder in final group",
			ids:  []string{"a", "b", "c", "d", "e"},
			size: 2,
			want: [][]string{{"a", "b"}, {"c", "d"}, {"e"}},
		},
		{
			name: "non-positive size keeps one group",
			ids:  []string{"a", "b"},
			size: 0,
			want: [][]string{{"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.ids, tt.size))
		})
	}
}

func TestSplitPreservesOrder(t *testing.T) {
	ids := make([]string, 120)
	for i := range ids {
		ids[i] = string(rune('a' + i%26))
	}

	groups := Split(ids, 50)

	var flattened []string
	for _, g := range groups {
		flattened = append(flattened, g...)
	}
	assert.Equal(t, ids, flattened)
	assert.Len(t, groups, 3)
	assert.Len(t, groups[0], 50)
	assert.Len(t, groups[1], 50)
	assert.Len(t, groups[2], 20)
}
