package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansvar-systems/belgian-law-mcp/corpus"
	"github.com/ansvar-systems/belgian-law-mcp/internal/testutil"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(testutil.OpenCorpus(t), "belgian-legal-citations", "test", nil)
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

// resultJSON decodes a successful tool result's text payload.
func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	require.False(t, result.IsError, "expected success, got error result: %+v", result.Content)
	require.NotEmpty(t, result.Content)

	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}

func resultErrorText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.True(t, result.IsError, "expected error result")
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestValidateCitationTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleValidateCitation(context.Background(), callRequest(map[string]interface{}{
		"citation": "Loi du 2 fevrier 1994, art. 1",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, true, payload["document_exists"])
	assert.Equal(t, true, payload["provision_exists"])
	assert.Contains(t, payload["document_title"], "protection de la jeunesse")
	assert.NotNil(t, payload["_metadata"])
}

func TestValidateCitationToolMissingArgument(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleValidateCitation(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestFormatCitationTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleFormatCitation(context.Background(), callRequest(map[string]interface{}{
		"citation": "Loi du 2 fevrier 1994, art. 3",
		"style":    "pinpoint",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, true, payload["valid"])
	assert.Equal(t, "art. 3", payload["formatted"])
	assert.Equal(t, "pinpoint", payload["style"])
}

func TestFormatCitationToolUnparseable(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleFormatCitation(context.Background(), callRequest(map[string]interface{}{
		"citation": "random words",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, false, payload["valid"])
	assert.Contains(t, payload["error"], "Could not parse Belgian citation")
}

func TestGetProvisionTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleGetProvision(context.Background(), callRequest(map[string]interface{}{
		"document_id": "loi-1994-02-02-1994009284-fr",
		"provision":   "art1",
		"as_of_date":  "2000-01-01",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Contains(t, payload["content"], "Ancien texte")
	assert.Equal(t, "1994-03-01", payload["valid_from"])
}

func TestGetProvisionToolWholeDocument(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleGetProvision(context.Background(), callRequest(map[string]interface{}{
		"document_id": "Loi du 2 fevrier 1994",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	provisions, ok := payload["provisions"].([]interface{})
	require.True(t, ok)
	assert.Len(t, provisions, 2)
}

func TestGetProvisionToolNotFound(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleGetProvision(context.Background(), callRequest(map[string]interface{}{
		"document_id": "loi-1994-02-02-1994009284-fr",
		"provision":   "art999",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultErrorText(t, result), "not found")
}

func TestCheckCurrencyTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleCheckCurrency(context.Background(), callRequest(map[string]interface{}{
		"document_id": "loi-1994-02-10-1994009323-fr",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, corpus.StatusRepealed, payload["status"])
	assert.Equal(t, false, payload["is_current"])
}

func TestSearchLegislationTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleSearchLegislation(context.Background(), callRequest(map[string]interface{}{
		"query": "jeunesse",
		"limit": 5,
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, "jeunesse", payload["query"])
	assert.NotZero(t, payload["count"])
}

func TestSearchLegislationToolBadDate(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleSearchLegislation(context.Background(), callRequest(map[string]interface{}{
		"query":      "jeunesse",
		"as_of_date": "not-a-date",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultErrorText(t, result), "as_of_date")
}

func TestGetEUBasisTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleGetEUBasis(context.Background(), callRequest(map[string]interface{}{
		"document_id": "loi-1994-02-02-1994009284-fr",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	docs, ok := payload["eu_documents"].([]interface{})
	require.True(t, ok)
	require.Len(t, docs, 1)
}

func TestGetImplementationsTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleGetImplementations(context.Background(), callRequest(map[string]interface{}{
		"eu_document_id": "regulation:2016/679",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	impls, ok := payload["implementations"].([]interface{})
	require.True(t, ok)
	assert.Len(t, impls, 2)
}

func TestValidateEUComplianceTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleValidateEUCompliance(context.Background(), callRequest(map[string]interface{}{
		"document_id": "loi-1994-02-10-1994009323-fr",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, corpus.CompliancePartial, payload["compliance_status"])
}

func TestSearchEUImplementationsTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleSearchEUImplementations(context.Background(), callRequest(map[string]interface{}{
		"type":                       "regulation",
		"has_belgian_implementation": true,
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	results, ok := payload["results"].([]interface{})
	require.True(t, ok)
	require.Len(t, results, 1)

	row, ok := results[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "regulation:2016/679", row["id"])
	assert.Equal(t, float64(1), row["belgian_statute_count"])
}

func TestSearchEUImplementationsToolAbsentFilterKeepsAll(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleSearchEUImplementations(context.Background(), callRequest(map[string]interface{}{}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	results, ok := payload["results"].([]interface{})
	require.True(t, ok)
	assert.Len(t, results, 2)
}

func TestAboutTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleAbout(context.Background(), callRequest(nil))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, corpus.SourceAuthority, payload["source_authority"])
	assert.Equal(t, "test-fingerprint", payload["fingerprint"])
	assert.Equal(t, "free", payload["tier"])

	caps, ok := payload["capabilities"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, caps, corpus.CapabilityCoreLegislation)
	assert.Contains(t, caps, corpus.CapabilityCaseLaw)

	hints, ok := payload["upgrade_hints"].([]interface{})
	require.True(t, ok)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], corpus.CapabilityPreparatoryWorks)
	assert.Contains(t, hints[0], "professional-tier")
}
