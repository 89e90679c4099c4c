package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansvar-systems/belgian-law-mcp/corpus"
	"github.com/ansvar-systems/belgian-law-mcp/internal/testutil"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	db := testutil.OpenCorpus(t)
	documents := corpus.NewDocumentStore(db, nil)
	provisions := corpus.NewProvisionStore(db, nil)
	return NewValidator(documents, provisions, nil)
}

func TestValidateByTitleAndArticle(t *testing.T) {
	v := newTestValidator(t)

	result, err := v.Validate("Loi du 2 fevrier 1994, art. 1")
	require.NoError(t, err)

	assert.True(t, result.DocumentExists)
	assert.True(t, result.ProvisionExists)
	assert.Contains(t, result.DocumentTitle, "protection de la jeunesse")
	assert.Empty(t, result.Warnings)
}

func TestValidateByStatuteID(t *testing.T) {
	v := newTestValidator(t)

	result, err := v.Validate("loi-1994-02-02-1994009284-fr, art. 10")
	require.NoError(t, err)

	assert.True(t, result.DocumentExists)
	assert.True(t, result.ProvisionExists)
}

func TestValidateMissingArticle(t *testing.T) {
	v := newTestValidator(t)

	result, err := v.Validate("Loi du 2 fevrier 1994, art. 99")
	require.NoError(t, err)

	assert.True(t, result.DocumentExists)
	assert.False(t, result.ProvisionExists)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Article 99")
}

func TestValidateRepealedStatute(t *testing.T) {
	v := newTestValidator(t)

	result, err := v.Validate("Loi du 10 fevrier 1994, art. 1")
	require.NoError(t, err)

	assert.True(t, result.DocumentExists)
	assert.Equal(t, corpus.StatusRepealed, result.Status)
	assert.Contains(t, result.Warnings, "This statute has been repealed")
	// The repeal note is informational: the provision still resolves.
	assert.True(t, result.ProvisionExists)
}

func TestValidateUnknownDocument(t *testing.T) {
	v := newTestValidator(t)

	result, err := v.Validate("Loi du 1 janvier 1850, art. 1")
	require.NoError(t, err)

	assert.False(t, result.DocumentExists)
	assert.False(t, result.ProvisionExists)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "not found")
}

func TestValidateUnparseableCitation(t *testing.T) {
	v := newTestValidator(t)

	result, err := v.Validate("This is not a citation")
	require.NoError(t, err)

	assert.False(t, result.Citation.Valid)
	assert.False(t, result.DocumentExists)
	assert.False(t, result.ProvisionExists)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Could not parse Belgian citation")
}

func TestValidateEmptyCitation(t *testing.T) {
	v := newTestValidator(t)

	result, err := v.Validate("")
	require.NoError(t, err)

	assert.False(t, result.Citation.Valid)
	assert.False(t, result.DocumentExists)
	assert.False(t, result.ProvisionExists)
	assert.Equal(t, []string{"Empty citation"}, result.Warnings)
}

// The existence check tries the section both verbatim and in its artN
// provision_ref spelling, so corpora keyed either way resolve.
func TestValidateDualKeyVariants(t *testing.T) {
	v := newTestValidator(t)

	bySection, err := v.Validate("loi-1994-02-02-1994009284-fr, art. 10")
	require.NoError(t, err)
	assert.True(t, bySection.ProvisionExists)

	nl, err := v.Validate("Wet van 2 februari 1994, art. 1")
	require.NoError(t, err)
	assert.True(t, nl.DocumentExists)
	assert.True(t, nl.ProvisionExists)
}
