package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSupportedPlant(t *testing.T) {
	require.True(t, SupportedPlant("mango"))
	require.True(t, SupportedPlant("tomato"))
	require.True(t, SupportedPlant("chili"))
	require.False(t, SupportedPlant("cactus"))
	require.False(t, SupportedPlant(""))
	require.False(t, SupportedPlant("Mango"))
}

func TestLabelSetSizes(t *testing.T) {
	require.Len(t, Labels("mango"), 8)
	require.Len(t, Labels("tomato"), 10)
	require.Len(t, Labels("chili"), 4)
	require.Nil(t, Labels("cactus"))
}

func TestPlantTypes(t *testing.T) {
	types := PlantTypes()
	require.ElementsMatch(t, []string{"mango", "tomato", "chili"}, types)
}
