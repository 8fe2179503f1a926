package locale

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/nicksnyder/go-i18n/i18n"
	"github.com/thoas/go-funk"

	"github.com/ActiveState/pylink/internal/logging"
)

// Supported languages
var Supported = []string{"en-US"}

//go:embed locales/*.yaml
var localeFiles embed.FS

var translateFunction i18n.TranslateFunc

var current string

func init() {
	for _, name := range Supported {
		filename := strings.ToLower(name) + ".yaml"
		data, err := localeFiles.ReadFile(path.Join("locales", filename))
		if err != nil {
			panic(fmt.Sprintf("Could not read locale file %s: %v", filename, err))
		}
		if err := i18n.ParseTranslationFileBytes(filename, data); err != nil {
			panic(fmt.Sprintf("Could not parse locale file %s: %v", filename, err))
		}
	}

	if err := Set(Supported[0]); err != nil {
		panic(err)
	}
}

// Set the active language to the given locale
func Set(localeName string) error {
	if !funk.ContainsString(Supported, localeName) {
		return fmt.Errorf("locale does not exist: %s", localeName)
	}

	tfunc, err := i18n.Tfunc(localeName)
	if err != nil {
		return fmt.Errorf("could not load locale %s: %w", localeName, err)
	}

	translateFunction = tfunc
	current = localeName
	return nil
}

// Current returns the active locale
func Current() string {
	return current
}

// T aliases to i18n.Tfunc()
func T(translationID string, args ...interface{}) string {
	return translateFunction(translationID, args...)
}

// Tr is like T but it accepts string params that will be used as numbered params, eg. V0, V1, V2 etc
func Tr(translationID string, values ...string) string {
	return T(translationID, valuesMap(values))
}

// Tl is like Tr but it accepts a fallback locale for if the translation id is not registered
func Tl(translationID, locale string, values ...string) string {
	translation := Tr(translationID, values...)
	if translation != translationID {
		return translation
	}

	tpl, err := template.New("locale").Parse(locale)
	if err != nil {
		logging.Warning("Could not parse fallback locale for %s: %v", translationID, err)
		return locale
	}

	var out bytes.Buffer
	if err := tpl.Execute(&out, valuesMap(values)); err != nil {
		logging.Warning("Could not render fallback locale for %s: %v", translationID, err)
		return locale
	}
	return out.String()
}

// Tt aliases to T, but before returning the string it replaces `[[` and `]]` with `{{` and `}}`,
// allowing for the localized strings to use these template tags without triggering i18n
func Tt(translationID string, args ...interface{}) string {
	translation := T(translationID, args...)
	translation = strings.Replace(translation, "[[", "{{", -1)
	translation = strings.Replace(translation, "]]", "}}", -1)

	// For templates we want to manually specify the linebreaks as the way YAML gets parsed makes
	// this very painful otherwise
	translation = strings.Replace(translation, "\n", "", -1)
	translation = strings.Replace(translation, "{{BR}}", "\n", -1)

	translation = strings.Trim(translation, " ")
	return translation
}

func valuesMap(values []string) map[string]interface{} {
	input := map[string]interface{}{}
	for k, v := range values {
		input[fmt.Sprintf("V%d", k)] = v
	}
	return input
}
