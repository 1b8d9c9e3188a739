package processor

import (
	"punctguess/transformations"
)

// Processor guesses punctuation with a fixed rule set.
type Processor struct {
	rules transformations.RuleSet
}

// New returns a Processor applying rules in order.
func New(rules transformations.RuleSet) *Processor {
	return &Processor{rules: rules}
}

var defaultProcessor = New(transformations.PunctuationRules())

// Default returns the Processor used by GuessPunctuation.
func Default() *Processor {
	return defaultProcessor
}

// Rules returns the rule set the Processor applies.
func (p *Processor) Rules() transformations.RuleSet {
	return p.rules
}

// Guess applies the rules to a plain title.
func (p *Processor) Guess(text string) string {
	return p.rules.Apply(text)
}

// GuessPreservingMarkup applies the rules to text that may hold bold and
// italic markers and [links], leaving the markers and link targets alone.
func (p *Processor) GuessPreservingMarkup(text string) string {
	return Guard(text, p.rules)
}

// GuessPunctuation replaces ASCII punctuation in a title by the Unicode
// punctuation it most likely stands for.
func GuessPunctuation(text string) string {
	return defaultProcessor.Guess(text)
}

// GuessPunctuationPreservingMarkup is GuessPunctuation for annotations and
// edit notes.
func GuessPunctuationPreservingMarkup(text string) string {
	return defaultProcessor.GuessPreservingMarkup(text)
}
