// Package server exposes the citation engine over the Model Context
// Protocol on stdio. Tool results are JSON documents carrying a _metadata
// block identifying the corpus snapshot, so consumers can attribute and
// cache answers.
package server

import (
	"database/sql"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/ansvar-systems/belgian-law-mcp/citation"
	"github.com/ansvar-systems/belgian-law-mcp/corpus"
)

// Server wraps the corpus stores and exposes them as MCP tools.
type Server struct {
	documents  *corpus.DocumentStore
	provisions *corpus.ProvisionStore
	eu         *corpus.EUStore
	validator  *citation.Validator
	metadata   corpus.Metadata
	logger     *zap.SugaredLogger
	server     *server.MCPServer
}

// New creates an MCP server over an opened corpus database. A nil logger
// is replaced with a no-op logger.
func New(db *sql.DB, name, version string, logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	documents := corpus.NewDocumentStore(db, logger)
	provisions := corpus.NewProvisionStore(db, logger)

	s := &Server{
		documents:  documents,
		provisions: provisions,
		eu:         corpus.NewEUStore(db, documents, logger),
		validator:  citation.NewValidator(documents, provisions, logger),
		metadata:   corpus.ReadMetadata(db),
		logger:     logger,
	}

	s.server = server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	validateTool := mcp.NewTool("validate_citation",
		mcp.WithDescription("Validate a Belgian legal citation against the legislation database: parse it, resolve the statute, and check the cited article exists"),
		mcp.WithString("citation",
			mcp.Required(),
			mcp.Description("Citation text, e.g. 'Loi du 2 fevrier 1994, art. 3' or 'Wet van 2 februari 1994, art. 5'"),
		),
	)
	s.server.AddTool(validateTool, s.handleValidateCitation)

	formatTool := mcp.NewTool("format_citation",
		mcp.WithDescription("Reformat a Belgian legal citation in a given style"),
		mcp.WithString("citation",
			mcp.Required(),
			mcp.Description("Citation text to reformat"),
		),
		mcp.WithString("style",
			mcp.Description("Output style: 'full' (default), 'short', or 'pinpoint'"),
		),
	)
	s.server.AddTool(formatTool, s.handleFormatCitation)

	provisionTool := mcp.NewTool("get_provision",
		mcp.WithDescription("Get the text of a statute provision, optionally the version in force at a past date. Without a provision reference, returns every provision of the statute"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Canonical document id, title fragment, or date expression"),
		),
		mcp.WithString("provision",
			mcp.Description("Article reference, e.g. 'art1' or '1'"),
		),
		mcp.WithString("as_of_date",
			mcp.Description("ISO date (YYYY-MM-DD); returns the text in force at that date"),
		),
	)
	s.server.AddTool(provisionTool, s.handleGetProvision)

	currencyTool := mcp.NewTool("check_currency",
		mcp.WithDescription("Check whether a statute is still in force, optionally at a past date and for a specific provision"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Canonical document id or title fragment"),
		),
		mcp.WithString("provision",
			mcp.Description("Article reference to check for existence"),
		),
		mcp.WithString("as_of_date",
			mcp.Description("ISO date (YYYY-MM-DD) to evaluate the status at"),
		),
	)
	s.server.AddTool(currencyTool, s.handleCheckCurrency)

	searchTool := mcp.NewTool("search_legislation",
		mcp.WithDescription("Full-text search over Belgian statute provisions, optionally restricted to one statute, a document status, or the text in force at a past date"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Keywords to search for; matched as a literal phrase"),
		),
		mcp.WithString("document_id",
			mcp.Description("Restrict to one statute (canonical id)"),
		),
		mcp.WithString("status",
			mcp.Description("Restrict to documents with this status: in_force, amended, repealed, not_yet_in_force"),
		),
		mcp.WithString("as_of_date",
			mcp.Description("ISO date (YYYY-MM-DD); searches historical provision versions valid at that date"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 20)"),
		),
	)
	s.server.AddTool(searchTool, s.handleSearchLegislation)

	euBasisTool := mcp.NewTool("get_eu_basis",
		mcp.WithDescription("Get the EU regulations and directives a Belgian statute references or implements"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Canonical document id or title fragment"),
		),
		mcp.WithString("provision",
			mcp.Description("Restrict to the EU references of one provision"),
		),
		mcp.WithBoolean("include_articles",
			mcp.Description("Include individual references with EU article pinpoints (default: false)"),
		),
	)
	s.server.AddTool(euBasisTool, s.handleGetEUBasis)

	euSearchTool := mcp.NewTool("search_eu_implementations",
		mcp.WithDescription("Search the EU document catalog, with per-act counts of Belgian implementing statutes"),
		mcp.WithString("query",
			mcp.Description("Match against EU document title, short name, or CELEX number"),
		),
		mcp.WithString("type",
			mcp.Description("Restrict to one EU document type: 'regulation' or 'directive'"),
		),
		mcp.WithBoolean("has_belgian_implementation",
			mcp.Description("Keep only EU acts with at least one Belgian implementation (true) or none (false)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 20)"),
		),
	)
	s.server.AddTool(euSearchTool, s.handleSearchEUImplementations)

	implementationsTool := mcp.NewTool("get_belgian_implementations",
		mcp.WithDescription("Find the Belgian statutes that implement or reference an EU act"),
		mcp.WithString("eu_document_id",
			mcp.Required(),
			mcp.Description("EU document id, e.g. 'regulation:2016/679' or 'directive:95/46'"),
		),
	)
	s.server.AddTool(implementationsTool, s.handleGetImplementations)

	complianceTool := mcp.NewTool("validate_eu_compliance",
		mcp.WithDescription("Check a Belgian statute's EU references for repealed acts and missing implementation metadata"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Canonical document id or title fragment"),
		),
		mcp.WithString("eu_document_id",
			mcp.Description("Restrict the check to references of one EU act"),
		),
	)
	s.server.AddTool(complianceTool, s.handleValidateEUCompliance)

	aboutTool := mcp.NewTool("about",
		mcp.WithDescription("Describe the legislation snapshot being served: source authority, build fingerprint, and table counts"),
	)
	s.server.AddTool(aboutTool, s.handleAbout)
}

// Serve runs the MCP server on stdio until the client disconnects.
func (s *Server) Serve() error {
	s.logger.Infow("Serving MCP on stdio",
		"source", corpus.SourceAuthority,
		"fingerprint", s.metadata.Fingerprint,
	)
	return server.ServeStdio(s.server)
}
