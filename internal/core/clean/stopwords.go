package clean

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

// polishStopWords is a short list of high-frequency Polish function words:
// pronouns, prepositions, conjunctions, particles and forms of "być".
var polishStopWords = []string{
	"a", "aby", "ale", "bo", "by", "być", "był", "była", "było", "były",
	"będzie", "co", "czy", "dla", "do", "gdy", "gdzie", "i", "ich", "im",
	"ja", "jak", "jako", "je", "jego", "jej", "jednak", "jest", "jestem",
	"już", "każdy", "kiedy", "kto", "który", "która", "które", "lub", "ma",
	"mi", "mnie", "mu", "my", "na", "nad", "nam", "nas", "nawet", "nic",
	"nie", "niż", "no", "o", "od", "on", "ona", "one", "oni", "ono", "oraz",
	"po", "pod", "przez", "przy", "się", "są", "ta", "tak", "tam", "te",
	"tego", "tej", "ten", "to", "tu", "tym", "u", "w", "we", "wy", "z",
	"za", "ze", "że", "żeby",
}

var stopWordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(polishStopWords))
	for _, w := range polishStopWords {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopWord reports whether token is in the stopword set. Tokens written
// with decomposed diacritics are compared in their composed (NFC) form.
func IsStopWord(token string) bool {
	if _, ok := stopWordSet[token]; ok {
		return true
	}
	if norm.NFC.IsNormalString(token) {
		return false
	}
	_, ok := stopWordSet[norm.NFC.String(token)]
	return ok
}

// StopWords returns a sorted copy of the stopword set.
func StopWords() []string {
	words := make([]string, len(polishStopWords))
	copy(words, polishStopWords)
	sort.Strings(words)
	return words
}
