package clean

import (
	"regexp"
	"strings"
	"testing"
	"unicode"
)

var samples = []string{
	"",
	"FOO",
	"Zaczyna się wojna #DONBAS",
	"#loosers Znowu przegrana :(",
	"- Znowu przegrana :(",
	"Zaczyna się wojna @Ukraine",
	"@TSW Znowu przegrana :(",
	"ZAŻÓŁĆ gęślą jaźń!!! #Polska @Sejm_RP…",
	"  podwójne  spacje \t i tabulatory\n",
	"##hash @@mention #_ @1",
	"„Cytat” – myślnik, nawias (tak) i [kwadrat]",
	"Się nie uda, że się uda",
	"\xe2.\x80\xa6",
	"#\xc4#x\x85",
	"@\xc4@x\x85",
	"x\xff#tag\xfe. @\xc5\x82",
}

func TestLowerCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "all upper", in: "FOO", want: "foo"},
		{name: "title", in: "Foo", want: "foo"},
		{name: "middle", in: "fOo", want: "foo"},
		{name: "last", in: "foO", want: "foo"},
		{name: "polish diacritics", in: "ZAŻÓŁĆ GĘŚLĄ JAŹŃ", want: "zażółć gęślą jaźń"},
		{name: "non letters unchanged", in: "123 #TAG :( @X", want: "123 #tag :( @x"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LowerCase(tc.in); got != tc.want {
				t.Errorf("LowerCase(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRemoveHashtags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trailing", in: "Zaczyna się wojna #DONBAS", want: "Zaczyna się wojna "},
		{name: "leading", in: "#loosers Znowu przegrana :(", want: " Znowu przegrana :("},
		{name: "polish letters", in: "Idę #zażółć dalej", want: "Idę  dalej"},
		{name: "digits and underscore", in: "#euro_2024 mecz", want: " mecz"},
		{name: "other numbers", in: "#abc² #Ⅻwiek x", want: "  x"},
		{name: "bare sigil kept", in: "numer # 5", want: "numer # 5"},
		{name: "stops at punctuation", in: "#tag, reszta", want: ", reszta"},
		{name: "mention untouched", in: "@TSW #TSW", want: "@TSW "},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemoveHashtags(tc.in); got != tc.want {
				t.Errorf("RemoveHashtags(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRemoveMentions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trailing", in: "Zaczyna się wojna @Ukraine", want: "Zaczyna się wojna "},
		{name: "leading", in: "@TSW Znowu przegrana :(", want: " Znowu przegrana :("},
		{name: "several", in: "@a i @b_c oraz @Łódź", want: " i  oraz "},
		{name: "email-like", in: "kontakt@firma.pl", want: "kontakt.pl"},
		{name: "hashtag untouched", in: "#TSW @TSW", want: "#TSW "},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemoveMentions(tc.in); got != tc.want {
				t.Errorf("RemoveMentions(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRemovePunctuation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ellipsis", in: "Zaczyna się wojna ...", want: "Zaczyna się wojna "},
		{name: "dash and emoticon", in: "- Znowu przegrana :(", want: " Znowu przegrana "},
		{name: "unicode ellipsis", in: "No i…", want: "No i"},
		{name: "polish quotes and dash", in: "„Tak” – nie", want: "Tak  nie"},
		{name: "word internal", in: "nie-wiem, co?", want: "niewiem co"},
		{name: "ascii symbols", in: "a+b=c $5 ~x|y", want: "abc 5 xy"},
		{name: "sigils", in: "#tag @user", want: "tag user"},
		{name: "diacritics kept", in: "żółć!", want: "żółć"},
		{name: "emoji kept", in: "super 😀!", want: "super 😀"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemovePunctuation(tc.in); got != tc.want {
				t.Errorf("RemovePunctuation(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestInvalidUTF8Dropped(t *testing.T) {
	tests := []struct {
		name string
		op   func(string) string
		in   string
		want string
	}{
		{name: "punctuation stray bytes", op: RemovePunctuation, in: "a\xffb.", want: "ab"},
		{name: "punctuation between split rune", op: RemovePunctuation, in: "\xe2.\x80\xa6", want: ""},
		{name: "hashtag between split rune", op: RemoveHashtags, in: "#\xc4#x\x85", want: "#"},
		{name: "mention between split rune", op: RemoveMentions, in: "@\xc4@x\x85", want: "@"},
		{name: "valid text untouched", op: RemoveHashtags, in: "zażółć", want: "zażółć"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.op(tc.in)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
			if again := tc.op(got); again != got {
				t.Errorf("second pass changed %q to %q", got, again)
			}
		})
	}
}

func TestRemoveStopWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "contract", in: "Zaczyna się wojna", want: "Zaczyna wojna"},
		{name: "collapses whitespace", in: "  Zaczyna \t się\n wojna  ", want: "Zaczyna wojna"},
		{name: "case sensitive", in: "Się uda", want: "Się uda"},
		{name: "several", in: "to nie jest to co myślisz", want: "myślisz"},
		{name: "decomposed diacritic", in: "sie\u0328 uda", want: "uda"},
		{name: "only stopwords", in: "i w z", want: ""},
		{name: "punctuation attached", in: "się, uda", want: "się, uda"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemoveStopWords(tc.in); got != tc.want {
				t.Errorf("RemoveStopWords(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	ops := map[string]func(string) string{
		"LowerCase":         LowerCase,
		"RemoveHashtags":    RemoveHashtags,
		"RemovePunctuation": RemovePunctuation,
		"RemoveMentions":    RemoveMentions,
		"RemoveStopWords":   RemoveStopWords,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			for _, s := range samples {
				once := op(s)
				if twice := op(once); twice != once {
					t.Errorf("%s not idempotent on %q: %q then %q", name, s, once, twice)
				}
			}
		})
	}
}

func TestLengthNonIncrease(t *testing.T) {
	ops := map[string]func(string) string{
		"RemoveHashtags":    RemoveHashtags,
		"RemovePunctuation": RemovePunctuation,
		"RemoveMentions":    RemoveMentions,
		"RemoveStopWords":   RemoveStopWords,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			for _, s := range samples {
				if out := op(s); len(out) > len(s) {
					t.Errorf("%s grew %q to %q", name, s, out)
				}
			}
		})
	}
}

func TestNoUppercaseAfterLowerCase(t *testing.T) {
	for _, s := range samples {
		out := LowerCase(s)
		for _, r := range out {
			if unicode.IsUpper(r) {
				t.Errorf("LowerCase(%q) = %q still contains %q", s, out, r)
			}
		}
	}
}

func TestNoResidualSigils(t *testing.T) {
	hashtag := regexp.MustCompile(`#` + wordClass)
	mention := regexp.MustCompile(`@` + wordClass)

	for _, s := range samples {
		if out := RemoveHashtags(s); hashtag.MatchString(out) {
			t.Errorf("RemoveHashtags(%q) = %q still contains a hashtag", s, out)
		}
		if out := RemoveMentions(s); mention.MatchString(out) {
			t.Errorf("RemoveMentions(%q) = %q still contains a mention", s, out)
		}
	}
}

func TestNoStopWordsRemain(t *testing.T) {
	for _, s := range samples {
		out := RemoveStopWords(LowerCase(s))
		for _, tok := range strings.Fields(out) {
			if IsStopWord(tok) {
				t.Errorf("RemoveStopWords left stopword %q in %q", tok, out)
			}
		}
	}
}

func TestStopWordsSortedCopy(t *testing.T) {
	words := StopWords()
	if len(words) != len(polishStopWords) {
		t.Fatalf("expected %d words, got %d", len(polishStopWords), len(words))
	}
	for i := 1; i < len(words); i++ {
		if words[i-1] >= words[i] {
			t.Fatalf("stopwords not sorted or not unique at %q, %q", words[i-1], words[i])
		}
	}
	words[0] = "changed"
	if !IsStopWord("a") {
		t.Error("mutating the returned slice must not affect the set")
	}
	for _, w := range []string{"zaczyna", "wojna", "znowu", "przegrana"} {
		if IsStopWord(w) {
			t.Errorf("%q must not be a stopword", w)
		}
	}
}
