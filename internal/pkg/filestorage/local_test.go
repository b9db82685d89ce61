package filestorage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schoolfm/internal/pkg/apperrors"
)

func newStorage(t *testing.T) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(filepath.Join(t.TempDir(), "conf", "settings.json"))
	require.NoError(t, err)
	return ls
}

func TestReplaceThenRead(t *testing.T) {
	ls := newStorage(t)

	require.NoError(t, ls.ReplaceDocument(json.RawMessage(`{"theme":"dark"}`)))

	doc, err := ls.ReadDocument()
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"dark"}`, string(doc))
}

func TestReplaceKeepsDocumentBytes(t *testing.T) {
	ls := newStorage(t)
	submitted := "{ \"theme\" : \"dark\",\n  \"rows\": [1,2] }"

	require.NoError(t, ls.ReplaceDocument(json.RawMessage(submitted)))

	doc, err := ls.ReadDocument()
	require.NoError(t, err)
	assert.Equal(t, submitted, string(doc))
}

func TestReplaceDoesNotMerge(t *testing.T) {
	ls := newStorage(t)

	require.NoError(t, ls.ReplaceDocument(json.RawMessage(`{"theme":"dark","school":"Hill View"}`)))
	require.NoError(t, ls.ReplaceDocument(json.RawMessage(`{"currency":"INR"}`)))

	doc, err := ls.ReadDocument()
	require.NoError(t, err)
	assert.JSONEq(t, `{"currency":"INR"}`, string(doc))
}

func TestReadMissingDocument(t *testing.T) {
	ls := newStorage(t)

	_, err := ls.ReadDocument()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrStorage))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadCorruptDocument(t *testing.T) {
	ls := newStorage(t)
	require.NoError(t, os.WriteFile(ls.Path(), []byte("{theme"), 0o644))

	_, err := ls.ReadDocument()
	assert.True(t, errors.Is(err, apperrors.ErrStorage))
}

func TestReplaceRejectsInvalidJSON(t *testing.T) {
	ls := newStorage(t)

	err := ls.ReplaceDocument(json.RawMessage(`{"theme":`))
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))

	_, statErr := os.Stat(ls.Path())
	assert.True(t, os.IsNotExist(statErr), "no document should be written")
}

func TestReplaceLeavesNoTempFiles(t *testing.T) {
	ls := newStorage(t)

	require.NoError(t, ls.ReplaceDocument(json.RawMessage(`{"a":1}`)))
	require.NoError(t, ls.ReplaceDocument(json.RawMessage(`{"a":2}`)))

	entries, err := os.ReadDir(filepath.Dir(ls.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "settings.json", entries[0].Name())
}

func TestReplaceFailsWhenDirectoryIsGone(t *testing.T) {
	ls := newStorage(t)
	require.NoError(t, os.RemoveAll(filepath.Dir(ls.Path())))

	err := ls.ReplaceDocument(json.RawMessage(`{"a":1}`))
	assert.True(t, errors.Is(err, apperrors.ErrStorage))
}
