package corpus

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansvar-systems/belgian-law-mcp/internal/testutil"
)

func TestReadMetadata(t *testing.T) {
	meta := ReadMetadata(testutil.OpenCorpus(t))

	assert.Equal(t, SourceAuthority, meta.SourceAuthority)
	assert.Equal(t, "free", meta.Tier)
	assert.Equal(t, "test-fingerprint", meta.Fingerprint)
	assert.Equal(t, "2026-02-16T00:00:00.000Z", meta.BuiltAt)
	assert.Equal(t, "1.0", meta.SchemaVersion)
	assert.Equal(t, 4, meta.Counts["legal_documents"])
	assert.Equal(t, 5, meta.Counts["legal_provisions"])
	assert.Equal(t, 2, meta.Counts["eu_documents"])
	assert.Equal(t, 3, meta.Counts["eu_references"])
}

func TestDetectCapabilities(t *testing.T) {
	caps := DetectCapabilities(testutil.OpenCorpus(t))

	assert.True(t, HasCapability(caps, CapabilityCoreLegislation))
	assert.True(t, HasCapability(caps, CapabilityEUReferences))
	assert.True(t, HasCapability(caps, CapabilityCaseLaw))
	assert.False(t, HasCapability(caps, CapabilityPreparatoryWorks))
}

// Metadata reads never fail, even against an empty database; tier and
// schema version fall back to the free-tier defaults.
func TestReadMetadataToleratesMissingTables(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	meta := ReadMetadata(db)

	assert.Equal(t, SourceAuthority, meta.SourceAuthority)
	assert.Equal(t, "free", meta.Tier)
	assert.Equal(t, "1.0", meta.SchemaVersion)
	assert.Empty(t, meta.Fingerprint)
	assert.Empty(t, meta.Capabilities)
	assert.Zero(t, meta.Counts["legal_documents"])
}

func TestUpgradeMessage(t *testing.T) {
	msg := UpgradeMessage(CapabilityCaseLaw)
	assert.Contains(t, msg, "case_law")
	assert.Contains(t, msg, "professional-tier")
}
