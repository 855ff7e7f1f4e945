package customerLookup

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/external/warehouse"
	"github.com/t-kuni/aspa/domain/model/customer"
	"github.com/t-kuni/aspa/domain/model/query"
	"github.com/t-kuni/aspa/domain/model/record"
)

type CustomerLookupService struct {
	client  warehouse.Client
	queries *query.Builder
}

func NewCustomerLookupService(client warehouse.Client, queries *query.Builder) *CustomerLookupService {
	return &CustomerLookupService{
		client:  client,
		queries: queries,
	}
}

// LookupByPhone returns the customer owning the phone number and their purchases.
// found is false when no row matched.
func (s *CustomerLookupService) LookupByPhone(ctx context.Context, phoneNumber string) (profile customer.Profile, found bool, err error) {
	q := s.queries.CustomerByPhone(phoneNumber)
	table, err := s.client.Query(ctx, q.Text, q.Args...)
	if err != nil {
		return customer.Profile{}, false, eris.Wrap(err, "failed to look up customer")
	}

	records, err := record.Shape(table)
	if err != nil {
		return customer.Profile{}, false, eris.Wrap(err, "failed to shape customer data")
	}
	if records.IsEmpty() {
		return customer.Profile{}, false, nil
	}

	profile, err = customer.NewProfile(records)
	if err != nil {
		return customer.Profile{}, false, err
	}
	return profile, true, nil
}
