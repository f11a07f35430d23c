// Package textkit is the text analytics engine: tokenization with a
// layered fallback chain, stopword handling, word statistics, TF-IDF
// and WDF-IDF corpus scoring, keyword density, Flesch readability and
// semantic salience.
//
// Every scorer is a total function: degenerate input (empty text, zero
// tokens) produces a well-formed zero result, and recoverable failures
// such as missing language data are reported through diagnostics
// instead of errors. The engine holds no state across calls apart from
// the memoized language resources.
package textkit
