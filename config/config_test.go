package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDriverName(t *testing.T) {
	require.Equal(t, "sqlite", AppConfig{}.DriverName())
	require.Equal(t, "postgres", AppConfig{DBHost: "localhost"}.DriverName())
	require.Equal(t, "sqlite", AppConfig{DBDriver: "sqlite", DBHost: "localhost"}.DriverName())
	require.Equal(t, "postgres", AppConfig{DBDriver: "postgres"}.DriverName())
}
