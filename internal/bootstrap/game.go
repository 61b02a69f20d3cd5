package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/config"
	"github.com/osse101/TextRealm_Go/internal/gate"
)

// LoadGameContent loads the catalog (the embedded default unless
// cfg.CatalogPath is set) and the calendar that defines day boundaries.
func LoadGameContent(cfg *config.Config) (*catalog.Catalog, gate.Calendar, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, gate.Calendar{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	cal, err := gate.LoadCalendar(cfg.Timezone)
	if err != nil {
		return nil, gate.Calendar{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadTimezone, err)
	}

	source := cfg.CatalogPath
	if source == "" {
		source = "embedded"
	}
	slog.Info(LogMsgCatalogLoaded,
		"source", source,
		"zones", len(cat.Zones),
		"timezone", cal.Location().String())
	return cat, cal, nil
}
