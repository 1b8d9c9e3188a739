package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"punctguess/processor"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFields(t *testing.T) {
	t.Parallel()

	fields := []Field{
		{Name: "release", Value: "Rock 'n' Roll - Live"},
		{Name: "track 1", Value: "Intro"},
		{Name: "disc 1", Value: ""},
		{Name: "annotation", Value: "''Recorded'' 1965-1972 [http://example.com/a-b]", Markup: true},
	}

	results := Fields(processor.Default(), fields)
	require.Len(t, results, len(fields))

	assert.Equal(t, "Rock ’n’ Roll – Live", results[0].Guessed)
	assert.True(t, results[0].Changed)

	assert.Equal(t, "Intro", results[1].Guessed)
	assert.False(t, results[1].Changed)

	assert.Empty(t, results[2].Guessed, "empty fields are skipped")
	assert.False(t, results[2].Changed)

	assert.Equal(t, "''Recorded'' 1965–1972 [http://example.com/a-b]", results[3].Guessed)
	assert.True(t, results[3].Changed)

	for i, r := range results {
		assert.Equal(t, fields[i], r.Field)
	}
}

func TestChanged(t *testing.T) {
	t.Parallel()

	results := Fields(processor.Default(), []Field{
		{Name: "a", Value: "same"},
		{Name: "b", Value: "it's"},
		{Name: "c", Value: "1-2"},
	})

	changed := Changed(results)
	require.Len(t, changed, 2)
	assert.Equal(t, "b", changed[0].Field.Name)
	assert.Equal(t, "c", changed[1].Field.Name)
	assert.Empty(t, Changed(nil))
}
