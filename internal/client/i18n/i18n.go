// Package i18n provides the localization capability used by the folder list:
// translated UI strings and locale-aware string ordering, both backed by
// golang.org/x/text.
package i18n

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/foldervault/internal/common"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DecryptErrorKey is the translation key shown in place of a name that could
// not be decrypted.
const DecryptErrorKey = "decryptError"

// Service translates keys and orders strings for one locale.
type Service interface {
	// T returns the translation of key. Unknown keys are returned as-is.
	T(key string) string

	// Compare orders a and b the way the locale sorts them: negative if a
	// sorts first, zero if they are equal, positive otherwise.
	Compare(a, b string) int
}

var translations = map[string]map[language.Tag]string{
	common.NoneFolderKey: {
		language.English: "No Folder",
		language.German:  "Kein Ordner",
		language.Russian: "Без папки",
		language.French:  "Aucun dossier",
		language.Spanish: "Sin carpeta",
	},
	DecryptErrorKey: {
		language.English: "[decryption error]",
		language.German:  "[Entschlüsselungsfehler]",
		language.Russian: "[ошибка расшифровки]",
		language.French:  "[erreur de déchiffrement]",
		language.Spanish: "[error de descifrado]",
	},
}

// LocaleService implements Service for a single language tag. It is safe for
// concurrent use.
type LocaleService struct {
	printer *message.Printer

	// collate.Collator keeps internal buffers and must not be shared
	// between goroutines.
	mu       sync.Mutex
	collator *collate.Collator
}

// NewLocaleService builds a LocaleService for a BCP 47 locale such as "en",
// "de-AT" or "ru". Missing translations fall back to English.
func NewLocaleService(locale string) (*LocaleService, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	cat, err := buildCatalog()
	if err != nil {
		return nil, err
	}

	return &LocaleService{
		printer:  message.NewPrinter(tag, message.Catalog(cat)),
		collator: collate.New(tag),
	}, nil
}

func buildCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, byTag := range translations {
		for tag, msg := range byTag {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s/%s: %w", tag, key, err)
			}
		}
	}
	return b, nil
}

func (s *LocaleService) T(key string) string {
	return s.printer.Sprintf(key)
}

func (s *LocaleService) Compare(a, b string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collator.CompareString(a, b)
}
