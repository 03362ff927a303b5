package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations arma el bundle con los mensajes por defecto en inglés y, si
// se indica un directorio, carga los locales activos desde ahí.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Turn a staged single-word typo fix into a reviewable GitHub contribution"

	[app_description]
	other = "TypoMate picks up the typo correction you already staged, decides from the repository's conventions whether to open an issue first, and submits the commit, branch and pull request for you."

	[help_command_usage]
	other = "Show help"

	[save_command_usage]
	other = "Extract the typo from the staged diff and save it for submission"

	[save_dir_flag_usage]
	other = "Repository directory to inspect"

	[changing_announcement]
	other = "Changing {{.Old}} to {{.New}} in {{.Files}}"

	[save_confirm_prompt]
	other = "Do you want to save?"

	[save_done]
	other = "Saved fix for {{.Repo}}"

	[save_discarded]
	other = "Nothing saved"

	[no_staged_changes]
	other = "No staged changes found.\nStage the typo fix with 'git add' first"

	[submit_command_usage]
	other = "Submit a saved fix as a commit, push and pull request"

	[submit_repo_flag_usage]
	other = "Repository name (owner/name); derived from the remote when omitted"

	[submit_dir_flag_usage]
	other = "Repository directory"

	[submit_plain_flag_usage]
	other = "Force a plain pull request without an issue"

	[submit_full_flag_usage]
	other = "Force creating an issue before the pull request"

	[submit_yes_flag_usage]
	other = "Skip confirmation prompts"

	[fix_announcement]
	other = "Fix in {{.Repo}}: {{.Old}} -> {{.New}} over {{.Files}}"

	[suggest_plain_prompt]
	other = "Analysis suggests plain pr, agree?"

	[complex_repo_prompt]
	other = "Complex repo submit plain pr anyway?"

	[submitting_fix]
	other = "Submitting fix..."

	[no_save_found]
	other = "No saved fix for '{{.Repo}}'. Run 'typomate save' in the repository first"

	[batch_command_usage]
	other = "Submit every saved fix, scheduling repositories concurrently"

	[batch_empty]
	other = "No saved fixes to submit"

	[batch_enqueued]
	other = "Enqueued {{.Count}} repositories"

	[prepare_command_usage]
	other = "Interactively prepare and submit the issue and commit artifacts"

	[menu_prompt]
	other = "Select an option"

	[menu_show_file]
	other = "show {{.Path}}"

	[menu_make_commit]
	other = "make a commit"

	[menu_make_full_issue]
	other = "make a full issue"

	[menu_make_short_issue]
	other = "make a short issue"

	[menu_submit_issue]
	other = "submit issue"

	[menu_submit_commit]
	other = "submit commit"

	[has_path]
	other = "{{.Repo}} HAS {{.Path}}"

	[does_not_have_path]
	other = "{{.Repo}} does not have {{.Path}}"

	[quit_message]
	other = "quit - returning to main process"

	[opening_editor]
	other = "Opening editor"

	[issue_submitted]
	other = "Created issue #{{.Number}}"

	[artifact_written]
	other = "Wrote {{.Path}}"

	[choose_cancel]
	other = "cancel"

	[invalid_choice]
	other = "Invalid choice, pick a number between 0 and {{.Max}}"

	[config_command_usage]
	other = "Manage TypoMate configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_lang_usage]
	other = "Set the interface language"

	[config_set_lang_flag_usage]
	other = "Language code (en or es)"

	[unsupported_language]
	other = "Unsupported language, use 'en' or 'es'"

	[language_configured]
	other = "Language set to {{.Lang}}"

	[config_set_token_usage]
	other = "Set the GitHub API token"

	[config_set_token_flag_usage]
	other = "Personal access token"

	[token_configured]
	other = "GitHub token saved"

	[config_set_editor_usage]
	other = "Set the editor used to show files"

	[config_set_editor_flag_usage]
	other = "Editor binary name"

	[editor_configured]
	other = "Editor set to {{.Editor}}"

	[current_config]
	other = "Current configuration"

	[language_label]
	other = "Language: {{.Lang}}"

	[editor_label]
	other = "Editor: {{.Editor}}"

	[remote_label]
	other = "Default remote: {{.Remote}}"

	[workers_label]
	other = "Workers: {{.Workers}}"

	[token_set]
	other = "GitHub token: configured"

	[token_not_set]
	other = "GitHub token: not set (export GITHUB_TOKEN or run 'typomate config set-token')"
`
