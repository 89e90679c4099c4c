package corpus

import (
	"database/sql"
	"fmt"
)

// SourceAuthority identifies where the corpus text comes from. Attached to
// tool responses so downstream consumers can attribute answers.
const SourceAuthority = "Justel (Belgian official consolidated legislation)"

// Dataset tiers ship with different schema subsets. A capability is present
// when every table backing it exists in the snapshot.
const (
	CapabilityCoreLegislation  = "core_legislation"
	CapabilityEUReferences     = "eu_references"
	CapabilityCaseLaw          = "case_law"
	CapabilityPreparatoryWorks = "preparatory_works"
)

// KnownCapabilities lists every capability a snapshot can carry, in
// reporting order.
var KnownCapabilities = []string{
	CapabilityCoreLegislation,
	CapabilityEUReferences,
	CapabilityCaseLaw,
	CapabilityPreparatoryWorks,
}

var capabilityTables = map[string][]string{
	CapabilityCoreLegislation:  {"legal_documents", "legal_provisions"},
	CapabilityEUReferences:     {"eu_documents", "eu_references"},
	CapabilityCaseLaw:          {"case_law"},
	CapabilityPreparatoryWorks: {"preparatory_works"},
}

// Metadata describes the corpus snapshot being served.
type Metadata struct {
	SourceAuthority string         `json:"source_authority"`
	Tier            string         `json:"tier"`
	Capabilities    []string       `json:"capabilities"`
	Fingerprint     string         `json:"fingerprint,omitempty"`
	BuiltAt         string         `json:"built_at,omitempty"`
	SchemaVersion   string         `json:"schema_version"`
	Counts          map[string]int `json:"counts,omitempty"`
}

// ReadMetadata collects db_metadata entries, detected capabilities, and
// table counts from the snapshot. It is deliberately tolerant: a missing
// db_metadata table or auxiliary table yields defaults rather than an
// error, because dataset metadata is advisory and must never break a
// serving process. Tier defaults to "free" and schema version to "1.0",
// matching what free-tier snapshot builders write.
func ReadMetadata(db *sql.DB) Metadata {
	meta := Metadata{
		SourceAuthority: SourceAuthority,
		Tier:            readMetadataKeyDefault(db, "tier", "free"),
		Capabilities:    DetectCapabilities(db),
		Fingerprint:     readMetadataKey(db, "fingerprint"),
		BuiltAt:         readMetadataKey(db, "built_at"),
		SchemaVersion:   readMetadataKeyDefault(db, "schema_version", "1.0"),
		Counts: map[string]int{
			"legal_documents":  safeCount(db, "SELECT COUNT(*) FROM legal_documents"),
			"legal_provisions": safeCount(db, "SELECT COUNT(*) FROM legal_provisions"),
			"eu_documents":     safeCount(db, "SELECT COUNT(*) FROM eu_documents"),
			"eu_references":    safeCount(db, "SELECT COUNT(*) FROM eu_references"),
		},
	}
	return meta
}

// DetectCapabilities reports which dataset capabilities the snapshot's
// schema carries, in KnownCapabilities order.
func DetectCapabilities(db *sql.DB) []string {
	detected := []string{}
	for _, capability := range KnownCapabilities {
		present := true
		for _, table := range capabilityTables[capability] {
			if !tableExists(db, table) {
				present = false
				break
			}
		}
		if present {
			detected = append(detected, capability)
		}
	}
	return detected
}

// HasCapability reports whether a detected capability list contains one.
func HasCapability(capabilities []string, capability string) bool {
	for _, c := range capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// UpgradeMessage explains how to obtain a capability the snapshot lacks.
func UpgradeMessage(capability string) string {
	return fmt.Sprintf("%s data is not included in this snapshot; professional-tier datasets carry it.", capability)
}

func tableExists(db *sql.DB, name string) bool {
	var one int
	err := db.QueryRow("SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&one)
	return err == nil
}

func readMetadataKey(db *sql.DB, key string) string {
	var value string
	if err := db.QueryRow("SELECT value FROM db_metadata WHERE key = ?", key).Scan(&value); err != nil {
		return ""
	}
	return value
}

func readMetadataKeyDefault(db *sql.DB, key, fallback string) string {
	if value := readMetadataKey(db, key); value != "" {
		return value
	}
	return fallback
}

func safeCount(db *sql.DB, query string) int {
	var count int
	if err := db.QueryRow(query).Scan(&count); err != nil {
		return 0
	}
	return count
}
