package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose_DefaultWeights(t *testing.T) {
	// 66.67*0.7 + 100*0.2 + 100*0.1 = 76.669, rounds to 77.
	assert.Equal(t, 77, Compose(66.67, 100, 100, DefaultWeights()))
}

func TestCompose_RoundsToNearest(t *testing.T) {
	w := DefaultWeights()

	assert.Equal(t, 50, Compose(50, 50, 50, w))
	assert.Equal(t, 0, Compose(0, 0, 0, w))
	assert.Equal(t, 100, Compose(100, 100, 100, w))
}

func TestCompose_CustomWeights(t *testing.T) {
	w := Weights{Skills: 0.5, Experience: 0.3, Education: 0.2}

	assert.Equal(t, 65, Compose(80, 50, 50, w))
}

func TestDefaultWeights_Values(t *testing.T) {
	w := DefaultWeights()

	assert.Equal(t, 0.7, w.Skills)
	assert.Equal(t, 0.2, w.Experience)
	assert.Equal(t, 0.1, w.Education)
}
