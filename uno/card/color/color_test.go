package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unodesk/engine/uno/card/color"
)

func TestSidesOrder(t *testing.T) {
	assert.Equal(t, []color.Color{color.Red, color.Yellow, color.Green, color.Blue}, color.Sides())
}

func TestString(t *testing.T) {
	assert.Equal(t, "RED", color.Red.String())
	assert.Equal(t, "YELLOW", color.Yellow.String())
	assert.Equal(t, "GREEN", color.Green.String())
	assert.Equal(t, "BLUE", color.Blue.String())
	assert.Equal(t, "WILD", color.Wild.String())
}

func TestByName(t *testing.T) {
	for _, name := range []string{"red", "RED", "Red"} {
		parsed, err := color.ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, color.Red, parsed)
	}

	_, err := color.ByName("pink")
	assert.Error(t, err)
}
