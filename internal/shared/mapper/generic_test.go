package mapper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSlice(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		mapFunc func(int) string
		want    []string
	}{
		{
			name:    "nil input returns nil",
			input:   nil,
			mapFunc: func(i int) string { return fmt.Sprintf("%d", i) },
			want:    nil,
		},
		{
			name:    "empty slice returns empty slice",
			input:   []int{},
			mapFunc: func(i int) string { return fmt.Sprintf("%d", i) },
			want:    []string{},
		},
		{
			name:    "maps every element in order",
			input:   []int{1, 2, 3},
			mapFunc: func(i int) string { return fmt.Sprintf("num_%d", i) },
			want:    []string{"num_1", "num_2", "num_3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSlice(tt.input, tt.mapFunc)
			assert.Equal(t, tt.want, got)
		})
	}
}
