package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ansvar-systems/belgian-law-mcp/citation"
	"github.com/ansvar-systems/belgian-law-mcp/corpus"
	"github.com/ansvar-systems/belgian-law-mcp/errors"
)

func (s *Server) handleValidateCitation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("citation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.validator.Validate(text)
	if err != nil {
		return s.toolError(err), nil
	}
	return s.respond(result)
}

func (s *Server) handleFormatCitation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("citation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	style := citation.Style(request.GetString("style", string(citation.StyleFull)))

	// An unparseable citation is a domain miss, reported as data.
	parsed := citation.Parse(text)
	if !parsed.Valid {
		return s.respond(map[string]interface{}{
			"valid": false,
			"error": parsed.Error,
		})
	}

	return s.respond(map[string]interface{}{
		"valid":     true,
		"formatted": citation.Format(parsed, style),
		"style":     string(style),
		"citation":  parsed,
	})
}

func (s *Server) handleGetProvision(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	provisionRef := request.GetString("provision", "")
	asOfDate := request.GetString("as_of_date", "")

	doc, err := s.documents.Resolve(documentID)
	if err != nil {
		return s.toolError(err), nil
	}

	if provisionRef == "" {
		all, err := s.provisions.GetAll(doc.ID, asOfDate)
		if err != nil {
			return s.toolError(err), nil
		}
		return s.respond(map[string]interface{}{
			"document":   doc,
			"provisions": all,
			"as_of_date": asOfDate,
		})
	}

	p, err := s.provisions.Get(doc.ID, provisionRef, asOfDate)
	if err != nil {
		return s.toolError(err), nil
	}
	return s.respond(p)
}

func (s *Server) handleCheckCurrency(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	provisionRef := request.GetString("provision", "")
	asOfDate := request.GetString("as_of_date", "")

	report, err := s.documents.CheckCurrency(s.provisions, documentID, provisionRef, asOfDate)
	if err != nil {
		return s.toolError(err), nil
	}
	return s.respond(report)
}

func (s *Server) handleSearchLegislation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := corpus.SearchParams{
		Query:      query,
		DocumentID: request.GetString("document_id", ""),
		Status:     request.GetString("status", ""),
		AsOfDate:   request.GetString("as_of_date", ""),
		Limit:      request.GetInt("limit", 0),
	}

	results, err := s.provisions.Search(params)
	if err != nil {
		return s.toolError(err), nil
	}
	return s.respond(map[string]interface{}{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

func (s *Server) handleGetEUBasis(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	provisionRef := request.GetString("provision", "")
	includeArticles := request.GetBool("include_articles", false)

	if provisionRef != "" {
		refs, err := s.eu.ProvisionBasis(documentID, provisionRef)
		if err != nil {
			return s.toolError(err), nil
		}
		return s.respond(map[string]interface{}{
			"document_id": documentID,
			"provision":   provisionRef,
			"references":  refs,
		})
	}

	result, err := s.eu.Basis(documentID, includeArticles)
	if err != nil {
		return s.toolError(err), nil
	}
	return s.respond(result)
}

func (s *Server) handleGetImplementations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	euDocumentID, err := request.RequireString("eu_document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.eu.Implementations(euDocumentID)
	if err != nil {
		return s.toolError(err), nil
	}
	return s.respond(result)
}

func (s *Server) handleValidateEUCompliance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	euDocumentID := request.GetString("eu_document_id", "")

	report, err := s.eu.ValidateCompliance(documentID, euDocumentID)
	if err != nil {
		return s.toolError(err), nil
	}
	return s.respond(report)
}

func (s *Server) handleSearchEUImplementations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := corpus.EUSearchParams{
		Query: request.GetString("query", ""),
		Type:  request.GetString("type", ""),
		Limit: request.GetInt("limit", 0),
	}
	// Presence matters: absent means "both", not "false".
	if v, ok := request.GetArguments()["has_belgian_implementation"].(bool); ok {
		params.HasBelgianImplementation = &v
	}

	results, err := s.eu.SearchImplementations(params)
	if err != nil {
		return s.toolError(err), nil
	}
	return s.respond(map[string]interface{}{
		"count":   len(results),
		"results": results,
	})
}

// aboutResponse flattens the snapshot metadata alongside upgrade hints for
// capabilities this snapshot's tier does not carry.
type aboutResponse struct {
	corpus.Metadata
	UpgradeHints []string `json:"upgrade_hints,omitempty"`
}

func (s *Server) handleAbout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hints := []string{}
	for _, capability := range corpus.KnownCapabilities {
		if !corpus.HasCapability(s.metadata.Capabilities, capability) {
			hints = append(hints, corpus.UpgradeMessage(capability))
		}
	}
	return s.respond(aboutResponse{Metadata: s.metadata, UpgradeHints: hints})
}

// respond serializes a payload as indented JSON with the snapshot metadata
// attached under _metadata, mirroring how every tool result is attributed.
func (s *Server) respond(payload interface{}) (*mcp.CallToolResult, error) {
	body, err := attachMetadata(payload, s.metadata)
	if err != nil {
		s.logger.Errorw("Failed to serialize tool result", "error", err)
		return mcp.NewToolResultError("internal error: failed to serialize result"), nil
	}
	return mcp.NewToolResultText(body), nil
}

// toolError maps domain errors onto MCP error results. Domain failures
// (invalid arguments, unknown documents) surface as tool errors with the
// original message; anything else is logged and reported generically so
// driver internals do not leak to clients.
func (s *Server) toolError(err error) *mcp.CallToolResult {
	if errors.IsInvalidRequestError(err) || errors.IsNotFoundError(err) {
		return mcp.NewToolResultError(err.Error())
	}
	s.logger.Errorw("Tool call failed", "error", err)
	return mcp.NewToolResultError(fmt.Sprintf("internal error: %v", err))
}

// attachMetadata round-trips the payload through JSON to merge _metadata at
// the top level when the payload is an object; array and scalar payloads
// are wrapped under "result" instead.
func attachMetadata(payload interface{}, meta corpus.Metadata) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		asMap = map[string]interface{}{"result": json.RawMessage(raw)}
	}
	asMap["_metadata"] = meta

	out, err := json.MarshalIndent(asMap, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
