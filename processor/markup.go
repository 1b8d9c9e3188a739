package processor

import (
	"encoding/base64"
	"strings"

	"punctguess/transformations"
)

// Sentinels stand in for wiki markup while the punctuation rules run. They
// are private use runes, so no rule matches them and titles never hold them.
const (
	boldSentinel   = "\uE000"
	italicSentinel = "\uE001"
)

var (
	// [target] or [target|label]; only the target is encoded
	encodeLinks = transformations.Func("encode-link-targets", `\[(.+?)(\|.+?)?\]`,
		func(g []string) string {
			return "[" + base64.StdEncoding.EncodeToString([]byte(g[1])) + g[2] + "]"
		})

	decodeLinks = transformations.Func("decode-link-targets", `\[([A-Za-z0-9+/=]+)(\|.+?)?\]`,
		func(g []string) string {
			target, err := base64.StdEncoding.DecodeString(g[1])
			if err != nil {
				return g[0]
			}
			return "[" + string(target) + g[2] + "]"
		})

	protectRules = transformations.NewRuleSet(
		transformations.Template("bold", `'''`, boldSentinel),
		transformations.Template("italic", `''`, italicSentinel),
		encodeLinks,
	)

	restoreRules = transformations.NewRuleSet(
		decodeLinks,
		transformations.Template("italic", italicSentinel, "''"),
		transformations.Template("bold", boldSentinel, "'''"),
	)
)

// Protect hides bold and italic markers and link targets from the
// punctuation rules. Link labels stay readable so they still get guessed.
func Protect(text string) string {
	return protectRules.Apply(text)
}

// Restore undoes Protect.
func Restore(text string) string {
	return restoreRules.Apply(text)
}

// Guard runs rules over text with its markup protected. Text that already
// holds a sentinel rune is returned unchanged.
func Guard(text string, rules transformations.RuleSet) string {
	if text == "" || hasSentinel(text) {
		return text
	}
	return Restore(rules.Apply(Protect(text)))
}

// hasSentinel reports whether text already holds a rune Protect would
// produce, in which case Restore cannot tell the two apart.
func hasSentinel(text string) bool {
	return strings.Contains(text, boldSentinel) || strings.Contains(text, italicSentinel)
}
