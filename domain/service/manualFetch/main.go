package manualFetch

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/external/warehouse"
	"github.com/t-kuni/aspa/domain/model/query"
	"github.com/t-kuni/aspa/domain/model/record"
	"go.uber.org/zap"
)

const contentColumn = "manualcontent"

type ManualFetchService struct {
	client  warehouse.Client
	queries *query.Builder
	logger  *zap.Logger
}

func NewManualFetchService(client warehouse.Client, queries *query.Builder, logger *zap.Logger) *ManualFetchService {
	return &ManualFetchService{
		client:  client,
		queries: queries,
		logger:  logger,
	}
}

// FetchManual returns the manual text for a product. found is false when no
// row matched or the content column is absent; that case is logged, not an error.
// A matching row with NULL content is found with empty text.
func (s *ManualFetchService) FetchManual(ctx context.Context, productCode string) (text string, found bool, err error) {
	q := s.queries.ManualByProduct(productCode)
	table, err := s.client.Query(ctx, q.Text, q.Args...)
	if err != nil {
		return "", false, eris.Wrapf(err, "failed to fetch manual: %s", productCode)
	}

	records, err := record.Shape(table)
	if err != nil {
		return "", false, eris.Wrapf(err, "failed to shape manual: %s", productCode)
	}

	if records.IsEmpty() || !records.Has(contentColumn) {
		s.logger.Warn("No manual found or 'manualcontent' column missing for the product code",
			zap.String("productCode", productCode),
			zap.Strings("columns", records.Columns),
			zap.Int("rows", len(records.Rows)))
		return "", false, nil
	}

	return records.Rows[0].String(contentColumn), true, nil
}
