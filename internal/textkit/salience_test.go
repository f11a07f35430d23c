package textkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

func TestSalience_FiltersStopwords(t *testing.T) {
	engine := NewEngine(NewResources(""))

	summary, diags := engine.Salience("the cat and the dog and the cat", "english")

	require.Empty(t, diags)
	assert.Equal(t, 2, summary.UniqueMeaningful)
	require.Len(t, summary.TopMeaningful, 2)
	assert.Equal(t, domain.FrequencyEntry{Token: "cat", Count: 2}, summary.TopMeaningful[0])
	assert.Equal(t, domain.FrequencyEntry{Token: "dog", Count: 1}, summary.TopMeaningful[1])
}

func TestSalience_German(t *testing.T) {
	engine := NewEngine(NewResources(""))

	summary, _ := engine.Salience("Der Text und die Analyse der Texte", "german")

	assert.Equal(t, 3, summary.UniqueMeaningful) // text, analyse, texte
}

func TestSalience_EmptyText(t *testing.T) {
	engine := NewEngine(NewResources(""))

	summary, diags := engine.Salience("", "german")

	assert.Empty(t, diags)
	assert.Equal(t, 0, summary.UniqueMeaningful)
	assert.Empty(t, summary.TopMeaningful)
}

func TestSalience_OnlyStopwords(t *testing.T) {
	engine := NewEngine(NewResources(""))

	summary, _ := engine.Salience("der die das und oder", "german")

	assert.Equal(t, 0, summary.UniqueMeaningful)
	assert.Empty(t, summary.TopMeaningful)
}

func TestSalience_UnknownLanguageUsesFallbackSet(t *testing.T) {
	engine := NewEngine(NewResources(""))

	// "und" is in the fallback stopword set; fallback tokenization
	// raises a diagnostic but the analysis still completes.
	summary, diags := engine.Salience("wort und zahl", "klingon")

	require.NotEmpty(t, diags)
	assert.Equal(t, 2, summary.UniqueMeaningful)
}

func TestStopwordProvider_Fallback(t *testing.T) {
	provider := NewStopwordProvider(NewResources(""))

	stops := provider.Stopwords("klingon")

	assert.True(t, stops["der"])
	assert.True(t, stops["und"])
}

func TestStopwordProvider_German(t *testing.T) {
	provider := NewStopwordProvider(NewResources(""))

	stops := provider.Stopwords("german")

	assert.True(t, stops["zwischen"])
	assert.False(t, stops["analyse"])
}
