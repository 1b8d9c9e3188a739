package processor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"punctguess/transformations"
)

func TestGuessPunctuation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
	}{
		{input: `He said "hello"`, expected: "He said “hello”"},
		{input: `It's a 'test'`, expected: "It’s a ‘test’"},
		{input: `12" vinyl`, expected: "12″ vinyl"},
		{input: `3'42"`, expected: "3′42″"},
		{input: `the 70's`, expected: "the 70’s"},
		{input: "Released 1987-07-30", expected: "Released 1987‐07‐30"},
		{input: "Recorded 1965-1972", expected: "Recorded 1965–1972"},
		{input: "rock - pop", expected: "rock – pop"},
		{input: "\xff - x", expected: "\xff – x"},
		{input: "", expected: ""},
	}

	for i, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("Case %d", i+1), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, GuessPunctuation(tc.input))
		})
	}
}

func TestGuessPunctuationPreservingMarkup(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
	}{
		{
			input:    "'''bold''' and [http://example.com/a-b|link 1970-80]",
			expected: "'''bold''' and [http://example.com/a-b|link 1970–80]",
		},
		{
			input:    "''italic'' title - live",
			expected: "''italic'' title – live",
		},
		{
			input:    "see [https://example.org/it's-1-2]",
			expected: "see [https://example.org/it's-1-2]",
		},
		{
			input:    "[https://example.org/a-b|Rock 'n' Roll] isn't it",
			expected: "[https://example.org/a-b|Rock ’n’ Roll] isn’t it",
		},
		{
			input:    "'''''both''''' - yes",
			expected: "'''''both''''' – yes",
		},
		{
			// no closing bracket, so the hyphen is guessed like any other
			input:    "[a-b",
			expected: "[a‐b",
		},
		{input: "", expected: ""},
	}

	for i, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("Case %d", i+1), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, GuessPunctuationPreservingMarkup(tc.input))
		})
	}
}

func TestPlainGuessBreaksMarkup(t *testing.T) {
	t.Parallel()

	in := "''x''"
	assert.NotEqual(t, in, GuessPunctuation(in))
	assert.Equal(t, in, GuessPunctuationPreservingMarkup(in))
}

func TestProcessorUsesInjectedRules(t *testing.T) {
	t.Parallel()

	p := New(transformations.NewRuleSet(
		transformations.Template("shout", `!`, "‼"),
	))

	assert.Equal(t, 1, p.Rules().Len())
	assert.Equal(t, "hey‼ it's", p.Guess("hey! it's"))
	assert.Equal(t, "''hey''‼ [a!b|c‼]", p.GuessPreservingMarkup("''hey''! [a!b|c!]"))
}

func TestDefaultProcessor(t *testing.T) {
	t.Parallel()

	assert.Same(t, Default(), Default())
	assert.Equal(t, transformations.PunctuationRules().Len(), Default().Rules().Len())
}
