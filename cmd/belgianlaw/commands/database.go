package commands

import (
	"database/sql"
	"os"

	"github.com/ansvar-systems/belgian-law-mcp/config"
	"github.com/ansvar-systems/belgian-law-mcp/db"
	"github.com/ansvar-systems/belgian-law-mcp/errors"
	"github.com/ansvar-systems/belgian-law-mcp/logger"
)

// openCorpus loads the configuration and opens the corpus snapshot it
// points at. The snapshot must already exist; this binary never creates
// or migrates databases.
func openCorpus() (*sql.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load configuration")
	}

	if _, err := os.Stat(cfg.Database.Path); err != nil {
		return nil, nil, errors.Newf("corpus database not found at %s (set database.path or BELGIAN_LAW_DATABASE_PATH)", cfg.Database.Path)
	}

	database, err := db.Open(cfg.Database.Path, logger.Logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open corpus database")
	}
	return database, cfg, nil
}
