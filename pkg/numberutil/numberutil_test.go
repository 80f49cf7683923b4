package numberutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToKilometer(t *testing.T) {
	require.Equal(t, 1.5, ToKilometer(1500))
	require.Equal(t, 0.0, ToKilometer(0))
	require.Equal(t, 0.075, ToKilometer(75))
}
