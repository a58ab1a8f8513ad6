package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindwell-app/mindwell/internal/utils"
)

func TestValue(t *testing.T) {
	require.Equal(t, 0, utils.Value[int](nil))
	require.Equal(t, "", utils.Value[string](nil))
	require.Equal(t, 42, utils.Value(utils.Ptr(42)))
}

func TestPtr(t *testing.T) {
	p := utils.Ptr("dark")
	require.NotNil(t, p)
	require.Equal(t, "dark", *p)
}
