package ui

import (
	"strings"
	"testing"

	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChooser(t *testing.T, input string) *StdinChooser {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewStdinChooserWithReader(strings.NewReader(input), trans)
}

func TestStdinChooser_Choose(t *testing.T) {
	options := []string{"make a commit", "make a full issue", "make a short issue"}

	t.Run("should map the 1-based input to a 0-based index", func(t *testing.T) {
		chooser := newChooser(t, "2\n")

		index, err := chooser.Choose("Select an option", options)

		require.NoError(t, err)
		assert.Equal(t, 1, index)
	})

	t.Run("should cancel on zero", func(t *testing.T) {
		chooser := newChooser(t, "0\n")

		_, err := chooser.Choose("Select an option", options)

		assert.ErrorIs(t, err, domainerrors.ErrUserCancelled)
	})

	t.Run("should cancel on end of input", func(t *testing.T) {
		chooser := newChooser(t, "")

		_, err := chooser.Choose("Select an option", options)

		assert.ErrorIs(t, err, domainerrors.ErrUserCancelled)
	})

	t.Run("should retry after an out of range choice", func(t *testing.T) {
		chooser := newChooser(t, "9\n3\n")

		index, err := chooser.Choose("Select an option", options)

		require.NoError(t, err)
		assert.Equal(t, 2, index)
	})
}

func TestStdinChooser_Confirm(t *testing.T) {
	t.Run("should accept english and spanish affirmatives", func(t *testing.T) {
		for _, answer := range []string{"y", "yes", "s", "si", "Y", "SI"} {
			chooser := newChooser(t, answer+"\n")

			confirmed, err := chooser.Confirm("Do you want to save?")

			require.NoError(t, err)
			assert.True(t, confirmed, "respuesta %q", answer)
		}
	})

	t.Run("should read anything else as a no", func(t *testing.T) {
		chooser := newChooser(t, "n\n")

		confirmed, err := chooser.Confirm("Do you want to save?")

		require.NoError(t, err)
		assert.False(t, confirmed)
	})

	t.Run("should cancel on end of input", func(t *testing.T) {
		chooser := newChooser(t, "")

		_, err := chooser.Confirm("Do you want to save?")

		assert.ErrorIs(t, err, domainerrors.ErrUserCancelled)
	})
}
