package i18n

import (
	"testing"

	"bazar-dor-api/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "No items found matching your criteria.", T(model.LangEN, KeyNoResults))
	assert.Equal(t, "আপনার অনুসন্ধান অনুযায়ী কোন পণ্য পাওয়া যায়নি।", T(model.LangBN, KeyNoResults))
	assert.Equal(t, "missing.key", T(model.LangEN, "missing.key"))
}

func TestEveryMessageHasBothLanguages(t *testing.T) {
	for key, m := range messages {
		assert.NotEmpty(t, m.BN, key)
		assert.NotEmpty(t, m.EN, key)
	}
}

func TestLabels(t *testing.T) {
	labels := Labels(model.LangEN)
	assert.Len(t, labels, len(messages))
	assert.Equal(t, "Market Prices", labels[KeyAppTitle])
}
