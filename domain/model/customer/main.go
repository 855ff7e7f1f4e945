package customer

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/model/record"
)

type Customer struct {
	ID      string
	Name    string
	Email   string
	Address string
}

type Purchase struct {
	SaleID       string
	ProductCode  string
	ProductName  string
	Description  string
	PurchaseDate string
	Quantity     string
	ManualLink   string
}

type IssueHistoryEntry struct {
	IssueDate   string
	ProductCode string
	ProductName string
	Description string
	Resolution  string
}

// Profile is a customer together with everything they bought.
type Profile struct {
	Customer  Customer
	Purchases []Purchase
}

var profileColumns = []string{"customerid", "customername", "email", "address", "productcode", "productname", "purchasedate"}

// NewProfile builds a profile from shaped lookup rows. The first distinct
// (name, email, address) row is taken as the customer's information.
func NewProfile(records record.Records) (Profile, error) {
	if records.IsEmpty() {
		return Profile{}, eris.New("no rows to build a profile from")
	}
	for _, c := range profileColumns {
		if !records.Has(c) {
			return Profile{}, eris.Errorf("column %s is missing from customer data", c)
		}
	}

	info := records.Distinct("customername", "email", "address").Rows[0]
	profile := Profile{
		Customer: Customer{
			ID:      records.Rows[0].String("customerid"),
			Name:    info.String("customername"),
			Email:   info.String("email"),
			Address: info.String("address"),
		},
	}

	for _, row := range records.Rows {
		profile.Purchases = append(profile.Purchases, Purchase{
			SaleID:       row.String("saleid"),
			ProductCode:  row.String("productcode"),
			ProductName:  row.String("productname"),
			Description:  row.String("description"),
			PurchaseDate: row.String("purchasedate"),
			Quantity:     row.String("quantity"),
			ManualLink:   row.String("manuallink"),
		})
	}

	return profile, nil
}

// FindPurchase looks a product up by name first, then by code, within this
// customer's purchases only. The first matching purchase wins.
func (p Profile) FindPurchase(product string) (Purchase, bool) {
	for _, purchase := range p.Purchases {
		if purchase.ProductName == product {
			return purchase, true
		}
	}
	for _, purchase := range p.Purchases {
		if purchase.ProductCode == product {
			return purchase, true
		}
	}
	return Purchase{}, false
}

func NewIssueHistory(records record.Records) []IssueHistoryEntry {
	entries := make([]IssueHistoryEntry, 0, len(records.Rows))
	for _, row := range records.Rows {
		entries = append(entries, IssueHistoryEntry{
			IssueDate:   row.String("issuedate"),
			ProductCode: row.String("productcode"),
			ProductName: row.String("productname"),
			Description: row.String("issuedescription"),
			Resolution:  row.String("resolution"),
		})
	}
	return entries
}
