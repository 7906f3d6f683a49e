// Package preprocess cleans social-media post text (Polish tweets) before
// downstream analysis such as sentiment classification or topic modeling.
//
// The five operations are independent pure functions that may be composed
// in any order. Order matters in one case: RemovePunctuation deletes the
// '#' and '@' sigils, so running it before RemoveHashtags or RemoveMentions
// leaves the hashtag or mention word behind as plain text. Pipeline checks
// for that order; DefaultSteps avoids it.
package preprocess

import (
	"github.com/baditaflorin/go_preprocess/internal/adapters/normalizer"
	"github.com/baditaflorin/go_preprocess/internal/core/clean"
)

// LowerCase converts every letter in text to lower case, including Polish
// diacritics. Non-letters pass through unchanged.
func LowerCase(text string) string {
	return clean.LowerCase(text)
}

// RemoveHashtags deletes every '#' immediately followed by word characters
// (letters, digits, underscore). Adjacent whitespace is preserved, so
// "Zaczyna się wojna #DONBAS" becomes "Zaczyna się wojna ".
func RemoveHashtags(text string) string {
	return clean.RemoveHashtags(text)
}

// RemovePunctuation deletes ASCII punctuation and Unicode punctuation runes
// wherever they occur. Whitespace is preserved, so "- Znowu przegrana :("
// becomes " Znowu przegrana ".
func RemovePunctuation(text string) string {
	return clean.RemovePunctuation(text)
}

// RemoveMentions deletes every '@' immediately followed by word characters.
// Adjacent whitespace is preserved.
func RemoveMentions(text string) string {
	return clean.RemoveMentions(text)
}

// RemoveStopWords drops whitespace-separated tokens that exactly match a
// built-in Polish stopword and rejoins the rest with single spaces.
// Matching is case-sensitive and the list is lowercase.
func RemoveStopWords(text string) string {
	return clean.RemoveStopWords(text)
}

// StopWords returns the built-in stopword list, sorted.
func StopWords() []string {
	return clean.StopWords()
}

var defaultChain = normalizer.NewDefaultChain()

// Clean applies DefaultSteps to text without logging.
func Clean(text string) string {
	return defaultChain.Normalize(text)
}
