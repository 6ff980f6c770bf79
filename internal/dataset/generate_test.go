package dataset

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SameSeedSameSamples(t *testing.T) {
	first, err := NewGenerator(42).Generate(25)
	require.NoError(t, err)
	second, err := NewGenerator(42).Generate(25)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	first, err := NewGenerator(1).Generate(25)
	require.NoError(t, err)
	second, err := NewGenerator(2).Generate(25)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerate_SamplesAreWellFormed(t *testing.T) {
	samples, err := NewGenerator(7).Generate(50)
	require.NoError(t, err)
	require.Len(t, samples, 50)

	seen := map[string]bool{}
	for _, s := range samples {
		assert.NotEmpty(t, s.ID)
		assert.False(t, seen[s.ID], "duplicate sample id %s", s.ID)
		seen[s.ID] = true

		require.NotNil(t, s.Resume)
		require.NotNil(t, s.Job)
		require.NotNil(t, s.GapAnalysis)
		require.NotNil(t, s.Score)

		assert.NotEmpty(t, s.Job.Role)
		assert.GreaterOrEqual(t, len(s.Job.RequiredSkills), 3)
		assert.LessOrEqual(t, len(s.Job.RequiredSkills), 5)
		assert.True(t, s.Job.Seniority.IsValid())

		assert.GreaterOrEqual(t, s.Score.OverallScore, 0)
		assert.LessOrEqual(t, s.Score.OverallScore, 100)
		assert.NotEmpty(t, s.Score.Bucket)
	}
}

func TestGenerate_CoverageSpansScoreRange(t *testing.T) {
	// With varied skill coverage the corpus should not collapse into a
	// single bucket.
	samples, err := NewGenerator(42).Generate(200)
	require.NoError(t, err)

	buckets := map[string]int{}
	for _, s := range samples {
		buckets[string(s.Score.Bucket)]++
	}
	assert.GreaterOrEqual(t, len(buckets), 2, "expected multiple buckets, got %v", buckets)
}

func TestGenerate_Zero(t *testing.T) {
	samples, err := NewGenerator(42).Generate(0)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestWriteJSONL(t *testing.T) {
	samples, err := NewGenerator(42).Generate(5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, samples))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	for i, line := range lines {
		var decoded Sample
		require.NoError(t, json.Unmarshal([]byte(line), &decoded))
		assert.Equal(t, samples[i].ID, decoded.ID)
		assert.Equal(t, samples[i].Score.OverallScore, decoded.Score.OverallScore)
	}
}

func TestWriteJSONL_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, nil))
	assert.Zero(t, buf.Len())
}
