package issueHistory

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/external/warehouse"
	"github.com/t-kuni/aspa/domain/model/customer"
	"github.com/t-kuni/aspa/domain/model/query"
	"github.com/t-kuni/aspa/domain/model/record"
)

type IssueHistoryService struct {
	client  warehouse.Client
	queries *query.Builder
}

func NewIssueHistoryService(client warehouse.Client, queries *query.Builder) *IssueHistoryService {
	return &IssueHistoryService{
		client:  client,
		queries: queries,
	}
}

// FetchIssueHistory lists a customer's past issues, newest first. An empty
// productCode returns issues for every product.
func (s *IssueHistoryService) FetchIssueHistory(ctx context.Context, customerID string, productCode string) ([]customer.IssueHistoryEntry, error) {
	q := s.queries.IssueHistory(customerID, productCode)
	table, err := s.client.Query(ctx, q.Text, q.Args...)
	if err != nil {
		return nil, eris.Wrap(err, "failed to fetch issue history")
	}

	records, err := record.Shape(table)
	if err != nil {
		return nil, eris.Wrap(err, "failed to shape issue history")
	}

	return customer.NewIssueHistory(records), nil
}
