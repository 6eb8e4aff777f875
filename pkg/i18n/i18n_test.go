package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLang(t *testing.T) {
	t.Parallel()

	lang, ok := ParseLang("zh")
	assert.True(t, ok)
	assert.Equal(t, LangZH, lang)

	_, ok = ParseLang("fr")
	assert.False(t, ok)

	_, ok = ParseLang("")
	assert.False(t, ok)
}

func TestEveryKeyLocalized(t *testing.T) {
	t.Parallel()

	for key := range messages[LangEN] {
		assert.NotEmpty(t, messages[LangZH][key], "zh missing %s", key)
	}
	for key := range messages[LangZH] {
		assert.NotEmpty(t, messages[LangEN][key], "en missing %s", key)
	}
	for kind := range kindLabels[LangEN] {
		assert.NotEmpty(t, kindLabels[LangZH][kind], "zh missing kind %s", kind)
	}
}

func TestFallbackToEnglish(t *testing.T) {
	t.Parallel()

	assert.Equal(t, T(LangEN, KeyNoChanges), T(Lang("fr"), KeyNoChanges))
	assert.Equal(t, "deleted", KindLabel(Lang("fr"), "deleted"))
}
