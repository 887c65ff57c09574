package gen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]bool)
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	// UUID must precede ID; acronyms are replaced in order.
	for _, w := range []string{"UUID", "AC", "DC", "ID"} {
		acronyms[w] = true
		rules.AddAcronym(w)
	}
	return rules
}

// snake converts the given name to snake case. For example:
//
//	ACLineSegment => ac_line_segment
//	mRID          => m_r_id
func snake(s string) string {
	if s == "" {
		return ""
	}
	return rules.Underscore(s)
}

// pascal converts the given name to an exported Go name. For example:
//
//	cutLevel1 => CutLevel1
//	uuid      => UUID
//	mRID      => MRID
func pascal(s string) string {
	words := strings.Split(snake(s), "_")
	for i, w := range words {
		switch {
		case w == "":
		case acronyms[strings.ToUpper(w)]:
			words[i] = strings.ToUpper(w)
		default:
			words[i] = rules.Capitalize(w)
		}
	}
	return strings.Join(words, "")
}

// camel converts the given name to an unexported Go name.
// A leading acronym is lowered as a whole: ACLineSegment => acLineSegment.
func camel(s string) string {
	r := []rune(pascal(s))
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n > 1 && n < len(r) {
		n--
	}
	for i := range n {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}

// unexported returns a struct field name for the given name that does not
// collide with Go keywords.
func unexported(s string) string {
	name := camel(s)
	if token.Lookup(name).IsKeyword() {
		return "_" + name
	}
	return name
}

// enumConst returns the constant name of an enum value: SeasonName, "spring" => SeasonNameSpring.
func enumConst(enum, value string) string {
	words := strings.FieldsFunc(value, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	// Casers are stateful; files are rendered concurrently.
	title := cases.Title(language.English, cases.NoLower)
	var b strings.Builder
	b.WriteString(enum)
	for _, w := range words {
		b.WriteString(title.String(w))
	}
	return b.String()
}
