package validation

import "regexp"

// rewriteRule rewrites a raw validator message when its pattern matches.
type rewriteRule struct {
	pattern *regexp.Regexp
	rewrite string
}

// rules is the translation table. Evaluation order is the slice order and
// the first matching rule wins, so specific phrasings sit above the
// generic code-prefix strip: a code-prefixed "content is not complete"
// message still collapses to the short phrase instead of merely losing
// its prefix.
var rules = []rewriteRule{
	// "The content of element 'x' is not complete." with or without a
	// leading machine code.
	{
		pattern: regexp.MustCompile(`^(?:[A-Za-z][\w.-]*: )?The content of element '[^']*' is not complete\.$`),
		rewrite: "Content is incomplete.",
	},
	// Strip a leading machine-diagnostic code such as
	// "cvc-complex-type.2.4.a: ".
	{
		pattern: regexp.MustCompile(`^[A-Za-z][\w.-]*: (.*)$`),
		rewrite: "$1",
	},
}

// Translate converts a raw validator error into a clean diagnostic. The
// first matching rewrite rule supplies the message; an unmatched message
// passes through verbatim. Raw validator errors always surface as errors,
// and the reported position is copied through untouched.
func Translate(raw RawError) Error {
	message := raw.Message
	for _, rule := range rules {
		if rule.pattern.MatchString(message) {
			message = rule.pattern.ReplaceAllString(message, rule.rewrite)
			break
		}
	}
	return Error{
		Message:  message,
		Severity: SeverityError,
		Line:     raw.Line,
		Column:   raw.Column,
	}
}
