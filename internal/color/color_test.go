package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForKid(t *testing.T) {
	assert.Equal(t, "#2e86de", ForKid(0))
	assert.Equal(t, "#f39c12", ForKid(3))
	assert.Equal(t, "#2e86de", ForKid(4))
	assert.Equal(t, "#2e86de", ForKid(-1))
}

func TestForAssignment(t *testing.T) {
	kids := []string{"#2e86de", "#e84393", "#00b894"}

	tests := []struct {
		name    string
		indices []int
		colors  []string
		want    string
	}{
		{"empty", nil, kids, Unassigned},
		{"single kid", []int{1}, kids, "#e84393"},
		{"unknown kid", []int{7}, kids, Unassigned},
		{"all kids", []int{0, 1, 2}, kids, AllKids},
		{"partial set", []int{0, 2}, kids, AllKids},
		{"only kid", []int{0}, kids[:1], "#2e86de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForAssignment(tt.indices, tt.colors))
		})
	}
}

func TestBackground(t *testing.T) {
	assert.Equal(t, "rgba(46,134,222,0.12)", Background("#2e86de"))
	assert.Equal(t, "rgba(62,107,72,0.12)", Background(AllKids))
	assert.Equal(t, "rgba(204,204,204,0.12)", Background(Unassigned))
	assert.Equal(t, "rgba(0,0,0,0.12)", Background("not a colour"))
}
