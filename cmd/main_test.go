package main

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigLeavesLoggingToConfigPackage(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "foods.sqlite"))

	hook := test.NewGlobal()
	defer hook.Reset()

	conf, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, "sqlite", conf.DBDriver)
	assert.Empty(t, hook.AllEntries())
}
