package rubric

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsWeighTo100(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, TotalWeight(Rows))
	assert.Len(t, Rows, 8)
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(Rows)+1)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{
		"Flow", "Order: Salutation -> Basic details -> Additional -> Closing", "", "5", "0", "",
	}, records[3])
	assert.Equal(t, "um;uh;like;you know;so;actually;basically;right;i mean;well;kinda;sort of;okay;hmm;ah", records[7][2])
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rubrics.csv")
	require.NoError(t, WriteFile(path, []Row{{Criterion: "X", Weight: 1, MaxWords: 200}}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "criterion,description,keywords,weight,min_words,max_words\nX,,,1,0,200\n", string(b))

	assert.Error(t, WriteFile(filepath.Join(t.TempDir(), "missing", "r.csv"), Rows))
}
