package transformations

// Boundaries for quoted spans: an ASCII non-word character or the string edge,
// checked without consuming it.
const (
	beforeBoundary = `(?<=[^A-Za-z0-9_]|^)`
	afterBoundary  = `(?=[^A-Za-z0-9_]|$)`

	month = `(0[1-9]|1[0-2])`
	day   = `(0[1-9]|[12][0-9]|3[01])`
)

// PunctuationRules returns the rules guessing Unicode punctuation from ASCII
// quotes, apostrophes, periods and hyphens.
//
// Specific patterns come first so the catch-all apostrophe and hyphen rules
// only see what is left. Em dash, minus sign and figure dash are never
// produced: there is not enough context to tell them apart.
func PunctuationRules() RuleSet {
	return NewRuleSet(
		// "quoted text" enclosed by non-word characters or the title edges
		Template("double-quotes", beforeBoundary+`"(.+?)"`+afterBoundary, "“$1”"),
		// rock 'n' roll, before it is read as a quoted n
		Template("n-contraction", beforeBoundary+`'n'`+afterBoundary, "’n’"),
		Template("single-quotes", beforeBoundary+`'(.+?)'`+afterBoundary, "‘$1’"),
		// 12″
		Template("double-prime", `([0-9]+)"`, "$1″"),
		// 3′42″ but not 70’s
		Template("prime", `([0-9]+)'([0-9]+)`, "$1′$2"),
		Template("apostrophe", `'`, "’"),
		// not for four or more dots
		Template("ellipsis", `(?<!\.)\.{3}(?!\.)`, "…"),
		Template("separator-dash", ` - `, " – "),
		// ISO 8601 dates, 1987‐07‐30
		Template("date-hyphens", beforeBoundary+`([0-9]{4})-`+month+`-`+day+afterBoundary, "$1‐$2‐$3"),
		// partial ISO 8601 dates, 2016‐04
		Template("month-hyphen", beforeBoundary+`([0-9]{4})-`+month+afterBoundary, "$1‐$2"),
		// ranges, 1965–1972
		Template("range-dash", `([0-9]+)-([0-9]+)`, "$1–$2"),
		Template("hyphen", `-`, "‐"),
	)
}
