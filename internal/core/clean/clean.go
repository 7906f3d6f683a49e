// Package clean implements the text cleaning operations applied to
// social-media posts before analysis.
//
// Every function is pure and safe for concurrent use. Hashtag and mention
// recognition relies on the '#' and '@' sigils, which RemovePunctuation
// deletes, so run RemoveHashtags and RemoveMentions first.
package clean

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_preprocess/internal/pool"
	"golang.org/x/text/language"
)

// wordClass matches letters (with combining marks), numbers of any kind
// (digits, superscripts, roman numerals) and underscore. Go's \w is
// ASCII-only and would cut "#zażółć" short.
const wordClass = `[\p{L}\p{M}\p{N}_]`

var (
	hashtagPattern = regexp.MustCompile(`#` + wordClass + `+`)
	mentionPattern = regexp.MustCompile(`@` + wordClass + `+`)

	lowerCasers = pool.NewLowerCaserPool(language.Polish)
	bytePool    = pool.NewBufferPool(512)

	asciiPunct [utf8.RuneSelf]bool
)

func init() {
	for _, c := range "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" {
		asciiPunct[c] = true
	}
}

// LowerCase converts every letter to lower case using Polish casing rules.
func LowerCase(text string) string {
	if text == "" {
		return ""
	}
	c := lowerCasers.Get()
	defer lowerCasers.Put(c)
	return c.String(text)
}

// RemoveHashtags deletes every '#' followed by one or more word characters.
// Whitespace around a removed hashtag is left untouched. Invalid UTF-8 is
// dropped first so that deleting a token cannot fuse stray bytes into a
// new rune.
func RemoveHashtags(text string) string {
	return hashtagPattern.ReplaceAllLiteralString(strings.ToValidUTF8(text, ""), "")
}

// RemoveMentions deletes every '@' followed by one or more word characters.
// Whitespace around a removed mention is left untouched. Invalid UTF-8 is
// dropped as in RemoveHashtags.
func RemoveMentions(text string) string {
	return mentionPattern.ReplaceAllLiteralString(strings.ToValidUTF8(text, ""), "")
}

// RemovePunctuation deletes ASCII punctuation and any rune in a Unicode
// punctuation category. Whitespace is kept even when it ends up doubled.
// Invalid UTF-8 is dropped as in RemoveHashtags.
func RemovePunctuation(text string) string {
	text = strings.ToValidUTF8(text, "")
	if text == "" {
		return ""
	}

	buffer := bytePool.Get()
	defer bytePool.Put(buffer)
	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}

	for i := 0; i < len(text); {
		b := text[i]
		if b < utf8.RuneSelf {
			if !asciiPunct[b] {
				*buffer = append(*buffer, b)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsPunct(r) {
			*buffer = append(*buffer, text[i:i+size]...)
		}
		i += size
	}

	return string(*buffer)
}

// RemoveStopWords splits text on whitespace, drops tokens that are in the
// built-in Polish stopword set and joins the rest with single spaces.
// Matching is case-sensitive: "się" is removed, "Się" is not. Run LowerCase
// first for case-insensitive removal.
func RemoveStopWords(text string) string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if !IsStopWord(f) {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
