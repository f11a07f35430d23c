package textkit

import "strings"

// builtinLanguage returns embedded resource data for the languages the
// tool ships with.
func builtinLanguage(language string) (*Language, bool) {
	switch language {
	case "german":
		return &Language{
			Name:      "german",
			Letters:   runeSet("äöüß"),
			Stopwords: wordSet(germanStopwords),
		}, true
	case "english":
		return &Language{
			Name:      "english",
			Letters:   runeSet(""),
			Stopwords: wordSet(englishStopwords),
		}, true
	}
	return nil, false
}

// FallbackStopwords is the minimal noise filter used when no curated
// list can be loaded for the requested language. High-frequency German
// function words, matching the tool's primary audience.
var FallbackStopwords = wordSet([]string{
	"der", "die", "das", "und", "oder", "in", "zu", "ein", "eine",
	"ist", "von", "mit",
})

func runeSet(runes string) map[rune]bool {
	set := make(map[rune]bool, len(runes))
	for _, r := range runes {
		set[r] = true
	}
	return set
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// germanStopwords is the curated German function word list.
var germanStopwords = []string{
	"aber", "alle", "allem", "allen", "aller", "alles", "als", "also",
	"am", "an", "andere", "anderen", "anders", "auch", "auf", "aus",
	"bei", "bin", "bis", "bist", "da", "damit", "dann", "das", "dass",
	"dein", "deine", "dem", "den", "denn", "der", "des", "dessen",
	"dich", "die", "dies", "diese", "diesem", "diesen", "dieser",
	"dieses", "dir", "doch", "dort", "du", "durch", "ein", "eine",
	"einem", "einen", "einer", "eines", "einig", "einige", "er", "es",
	"etwas", "euer", "eure", "für", "gegen", "gewesen", "hab", "habe",
	"haben", "hat", "hatte", "hatten", "hier", "hin", "hinter", "ich",
	"ihm", "ihn", "ihnen", "ihr", "ihre", "im", "in", "indem", "ins",
	"ist", "ja", "jede", "jedem", "jeden", "jeder", "jedes", "jene",
	"jenem", "jenen", "jener", "jenes", "jetzt", "kann", "kein",
	"keine", "keinem", "keinen", "keiner", "keines", "können",
	"könnte", "machen", "man", "manche", "mein", "meine", "mich",
	"mir", "mit", "muss", "musste", "nach", "nicht", "nichts", "noch",
	"nun", "nur", "ob", "oder", "ohne", "sehr", "sein", "seine",
	"seinem", "seinen", "seiner", "seines", "selbst", "sich", "sie",
	"sind", "so", "solche", "soll", "sollte", "sondern", "sonst",
	"über", "um", "und", "uns", "unser", "unsere", "unter", "viel",
	"vom", "von", "vor", "während", "war", "waren", "warst", "was",
	"weg", "weil", "weiter", "welche", "welchem", "welchen",
	"welcher", "welches", "wenn", "werde", "werden", "wie", "wieder",
	"will", "wir", "wird", "wirst", "wo", "wollen", "wollte",
	"würde", "würden", "zu", "zum", "zur", "zwar", "zwischen",
}

// englishStopwords is the curated English function word list.
var englishStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am",
	"an", "and", "any", "are", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"could", "did", "do", "does", "doing", "down", "during", "each",
	"few", "for", "from", "further", "had", "has", "have", "having",
	"he", "her", "here", "hers", "herself", "him", "himself", "his",
	"how", "i", "if", "in", "into", "is", "it", "its", "itself",
	"just", "me", "might", "more", "most", "my", "myself", "no",
	"nor", "not", "now", "of", "off", "on", "once", "only", "or",
	"other", "our", "ours", "ourselves", "out", "over", "own",
	"same", "she", "should", "so", "some", "such", "than", "that",
	"the", "their", "theirs", "them", "themselves", "then", "there",
	"these", "they", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "we", "were", "what",
	"when", "where", "which", "while", "who", "whom", "why", "will",
	"with", "would", "you", "your", "yours", "yourself", "yourselves",
}
