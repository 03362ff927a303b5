package registry

import (
	"testing"

	cfg "github.com/Tomas-vilte/TypoMate/internal/config"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type stubFactory struct {
	name string
}

func (f *stubFactory) CreateCommand(t *i18n.Translations, cfg *cfg.Config) *cli.Command {
	return &cli.Command{Name: f.name}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewRegistry(&cfg.Config{}, trans)
}

func TestRegistry(t *testing.T) {
	t.Run("should create the commands in registration order", func(t *testing.T) {
		registry := newTestRegistry(t)

		require.NoError(t, registry.Register("save", &stubFactory{name: "save"}))
		require.NoError(t, registry.Register("submit", &stubFactory{name: "submit"}))
		require.NoError(t, registry.Register("batch", &stubFactory{name: "batch"}))

		commands := registry.CreateCommands()

		require.Len(t, commands, 3)
		assert.Equal(t, "save", commands[0].Name)
		assert.Equal(t, "submit", commands[1].Name)
		assert.Equal(t, "batch", commands[2].Name)
	})

	t.Run("should reject a duplicated command name", func(t *testing.T) {
		registry := newTestRegistry(t)

		require.NoError(t, registry.Register("save", &stubFactory{name: "save"}))
		err := registry.Register("save", &stubFactory{name: "save"})

		assert.Error(t, err)
	})

	t.Run("should create no commands on an empty registry", func(t *testing.T) {
		registry := newTestRegistry(t)

		assert.Empty(t, registry.CreateCommands())
	})
}
