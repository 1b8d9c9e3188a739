package process

import (
	"github.com/rs/zerolog/log"

	"punctguess/processor"
)

// Field is one named text value, such as a track title or an edit note.
// Markup fields may hold bold/italic markers and [links].
type Field struct {
	Name   string
	Value  string
	Markup bool
}

// Result is the guessed value of a Field.
type Result struct {
	Field   Field
	Guessed string
	Changed bool
}

// Fields guesses punctuation for every field in order. Empty values are
// passed through without running any rule.
func Fields(p *processor.Processor, fields []Field) []Result {
	results := make([]Result, 0, len(fields))
	for _, f := range fields {
		results = append(results, guessField(p, f))
	}
	return results
}

func guessField(p *processor.Processor, f Field) Result {
	if f.Value == "" {
		return Result{Field: f}
	}

	var guessed string
	if f.Markup {
		guessed = p.GuessPreservingMarkup(f.Value)
	} else {
		guessed = p.Guess(f.Value)
	}

	res := Result{Field: f, Guessed: guessed, Changed: guessed != f.Value}
	if res.Changed {
		log.Debug().
			Str("field", f.Name).
			Str("from", f.Value).
			Str("to", guessed).
			Msg("guessed punctuation")
	}
	return res
}

// Changed returns the results whose value changed.
func Changed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Changed {
			out = append(out, r)
		}
	}
	return out
}
