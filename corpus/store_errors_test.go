package corpus

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansvar-systems/belgian-law-mcp/errors"
)

// Driver failures must surface as wrapped errors, never be confused with a
// not-found result. sqlmock stands in for a broken connection.

func TestDocumentQueryErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM legal_documents").
		WillReturnError(errors.New("disk I/O error"))

	store := NewDocumentStore(db, nil)
	_, err = store.Resolve("loi-1994-02-02-1994009284-fr")
	require.Error(t, err)
	assert.False(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvisionQueryErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM legal_provisions").
		WillReturnError(errors.New("database is locked"))

	store := NewProvisionStore(db, nil)
	_, err = store.Get("loi-1994-02-02-1994009284-fr", "art1", "")
	require.Error(t, err)
	assert.False(t, errors.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ResolveExistingID is a best-effort helper; a query failure reads as "no
// match" so callers fall back to the raw identifier.
func TestResolveExistingIDSwallowsQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM legal_documents").
		WillReturnError(errors.New("database is locked"))

	store := NewDocumentStore(db, nil)
	assert.Equal(t, "", store.ResolveExistingID("loi-1994-02-02-1994009284-fr"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
