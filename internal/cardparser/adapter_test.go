package cardparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/parsererror"
	"fjacquet/ccstmt-csv/internal/pdfparser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStatementFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n"), 0600))
	return path
}

func TestAdapter_ParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeStatementFile(t, dir, "jan.pdf")
	logger := logging.NewMockLogger()
	extractor := pdfparser.NewMockPDFExtractor(statementPages(), nil)

	a := NewAdapter(logger, extractor)
	purchases, err := a.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, purchases, 6)
	assert.Equal(t, []string{path}, extractor.Calls)

	infos := logger.GetEntriesByLevel("INFO")
	require.Len(t, infos, 1)
	assert.Equal(t, "Parsed statement", infos[0].Message)
	v, _ := infos[0].FieldValue(logging.FieldPurchases)
	assert.Equal(t, 6, v)
	v, _ = infos[0].FieldValue(logging.FieldFile)
	assert.Equal(t, path, v)
	assert.True(t, logger.HasEntry("DEBUG", "Dropped context lines above the first purchase"))
}

func TestAdapter_ParseFile_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeStatementFile(t, dir, "jan.pdf")

	t.Run("missing file", func(t *testing.T) {
		extractor := pdfparser.NewMockPDFExtractor(statementPages(), nil)
		a := NewAdapter(logging.NewMockLogger(), extractor)
		_, err := a.ParseFile(filepath.Join(dir, "nope.pdf"))

		var vErr *parsererror.ValidationError
		assert.True(t, errors.As(err, &vErr))
		assert.Empty(t, extractor.Calls, "extractor must not run for missing files")
	})

	t.Run("extraction failure", func(t *testing.T) {
		cause := errors.New("malformed xref table")
		a := NewAdapter(logging.NewMockLogger(), pdfparser.NewMockPDFExtractor(nil, cause))
		_, err := a.ParseFile(path)

		var fErr *parsererror.InvalidFormatError
		require.True(t, errors.As(err, &fErr))
		assert.Equal(t, path, fErr.FilePath)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("missing header names the file", func(t *testing.T) {
		a := NewAdapter(logging.NewMockLogger(), pdfparser.NewMockPDFExtractor([]string{"01/05 SHOP NY 1.00"}, nil))
		_, err := a.ParseFile(path)

		assert.ErrorIs(t, err, ErrMissingClosingDate)
		var de *parsererror.DataExtractionError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, path, de.FilePath)
	})
}

type pagesByPath map[string][]string

func (m pagesByPath) ExtractPages(path string) ([]string, error) {
	pages, ok := m[path]
	if !ok {
		return nil, errors.New("unexpected path")
	}
	return pages, nil
}

func TestAdapter_ParseFiles(t *testing.T) {
	dir := t.TempDir()
	jan := writeStatementFile(t, dir, "jan.pdf")
	feb := writeStatementFile(t, dir, "feb.pdf")
	bad := writeStatementFile(t, dir, "bad.pdf")

	extractor := pagesByPath{
		jan: statementPages(),
		feb: {"Opening/Closing Date 01/16/2023 - 02/15/2023\n02/01 BOOKS NY 9.99\n02/02 TEA NY 3.50"},
		bad: {"no header here\n02/01 BOOKS NY 9.99"},
	}
	a := NewAdapter(logging.NewMockLogger(), extractor)

	purchases, err := a.ParseFiles([]string{feb, jan})
	require.NoError(t, err)
	require.Len(t, purchases, 8)
	assert.Equal(t, "02/01/2023", purchases[0].Date)
	assert.Equal(t, "02/02/2023", purchases[1].Date)
	assert.Equal(t, "12/18/22", purchases[2].Date)

	_, err = a.ParseFiles([]string{jan, bad, feb})
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
	assert.ErrorIs(t, err, ErrMissingClosingDate)

	purchases, err = a.ParseFiles(nil)
	require.NoError(t, err)
	assert.Empty(t, purchases)
}
