package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollided(t *testing.T) {
	tests := []struct {
		name  string
		snake Snake
		want  bool
	}{
		{"start body", StartBody, false},
		{"single cell", Snake{{0, 0}}, false},
		{"artificial duplicate", Snake{{5, 5}, {5, 5}}, true},
		{"head through left wall", Snake{{2, 1}, {1, 1}, {0, 1}, {-1, 1}}, true},
		{"head through bottom", Snake{{3, Rows - 1}, {3, Rows}}, true},
		{"right edge is inside", Snake{{Columns - 2, 4}, {Columns - 1, 4}}, false},
		{"right wall", Snake{{Columns - 1, 4}, {Columns, 4}}, true},
		{"head bites body", Snake{{1, 1}, {2, 1}, {2, 2}, {1, 2}, {1, 1}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Collided(tc.snake))
		})
	}
}
