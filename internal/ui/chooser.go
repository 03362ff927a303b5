package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
)

var _ ports.Chooser = (*StdinChooser)(nil)

// StdinChooser presenta menús numerados por stdout y lee la elección por
// stdin. El 0 (o EOF) siempre es cancelar.
type StdinChooser struct {
	in    io.Reader
	trans *i18n.Translations
}

func NewStdinChooser(trans *i18n.Translations) *StdinChooser {
	return &StdinChooser{in: os.Stdin, trans: trans}
}

// NewStdinChooserWithReader permite inyectar la entrada en los tests.
func NewStdinChooserWithReader(in io.Reader, trans *i18n.Translations) *StdinChooser {
	return &StdinChooser{in: in, trans: trans}
}

func (c *StdinChooser) Choose(prompt string, options []string) (int, error) {
	fmt.Printf("%s\n", Info.Sprint(prompt))
	for i, option := range options {
		fmt.Printf("%d. %s\n", i+1, option)
	}
	fmt.Printf("0. %s\n", c.trans.GetMessage("choose_cancel", 0, nil))

	for {
		var selection int
		if _, err := fmt.Fscan(c.in, &selection); err != nil {
			return 0, domainerrors.ErrUserCancelled
		}
		if selection == 0 {
			return 0, domainerrors.ErrUserCancelled
		}
		if selection >= 1 && selection <= len(options) {
			return selection - 1, nil
		}
		fmt.Println(Warning.Sprint(c.trans.GetMessage("invalid_choice", 0, map[string]interface{}{
			"Max": len(options),
		})))
	}
}

func (c *StdinChooser) Confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/n]: ", Info.Sprint(prompt))

	var answer string
	if _, err := fmt.Fscan(c.in, &answer); err != nil {
		return false, domainerrors.ErrUserCancelled
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes" || answer == "s" || answer == "si", nil
}
