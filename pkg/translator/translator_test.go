package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"taskboard/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

func TestInitTranslator_LoadsMessages(t *testing.T) {
	// Create a temporary directory for translations
	dir := t.TempDir()

	// Write a test en.toml file
	enFile := filepath.Join(dir, "en.toml")
	content := []byte(`
taskNotFound = "Task not found"
userExists = "User already exists"
hello = "Hello english"
`)
	if err := os.WriteFile(enFile, content, 0644); err != nil {
		t.Fatalf("failed to write en.toml: %v", err)
	}

	// Initialize translator with the temp dir
	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguagePt},
	})

	localizer := i18n.NewLocalizer(translator.Translator, translator.LanguageEn)

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "hello",
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	expected := "Hello english"
	if msg != expected {
		t.Errorf("expected %q, got %q", expected, msg)
	}
}

func TestLocalize_FallbackToKey(t *testing.T) {
	dir := t.TempDir()
	enFile := filepath.Join(dir, "en.toml")
	if err := os.WriteFile(enFile, []byte(`hello = "Hello english"`), 0644); err != nil {
		t.Fatalf("failed to write en.toml: %v", err)
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn},
	})

	if got := translator.Localize("hello", translator.LanguageEn); got != "Hello english" {
		t.Errorf("expected translation, got %q", got)
	}
	if got := translator.Localize("missing_key", translator.LanguageEn); got != "missing_key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
}

func TestTranslatorConstants(t *testing.T) {
	if translator.LanguageEn != "en" {
		t.Errorf("expected LanguageEn to be 'en'")
	}
	if translator.LanguagePt != "pt" {
		t.Errorf("expected LanguagePt to be 'pt'")
	}
}
