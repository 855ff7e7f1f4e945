package query

import "strings"

// Query is a statement with its bind arguments. Caller-supplied values only
// ever travel in Args; Text contains "?" placeholders.
type Query struct {
	Text string
	Args []any
}

type Builder struct {
	prefix string
}

// NewBuilder takes the table qualifier, e.g. "DEMO.ASPA". An empty prefix leaves table names bare.
func NewBuilder(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

func (b *Builder) table(name string) string {
	if b.prefix == "" {
		return name
	}
	return b.prefix + "." + name
}

func (b *Builder) CustomerByPhone(phoneNumber string) Query {
	text := `SELECT
    c.CustomerID, c.CustomerName, c.Email, c.Address,
    s.SaleID, s.ProductCode, s.PurchaseDate, s.Quantity,
    p.ProductName, p.Description, p.ManualLink
FROM ` + b.table("Contact") + ` con
JOIN ` + b.table("Customer") + ` c ON con.CustomerID = c.CustomerID
JOIN ` + b.table("SalesHistory") + ` s ON c.CustomerID = s.CustomerID
JOIN ` + b.table("Product") + ` p ON s.ProductCode = p.ProductCode
WHERE con.PhoneNumber = ?`

	return Query{Text: text, Args: []any{phoneNumber}}
}

func (b *Builder) ManualByProduct(productCode string) Query {
	text := `SELECT ManualContent
FROM ` + b.table("Manuals") + `
WHERE ProductCode = ?`

	return Query{Text: text, Args: []any{productCode}}
}

// IssueHistory filters by product only when productCode is not empty. Newest issues come first.
func (b *Builder) IssueHistory(customerID string, productCode string) Query {
	var sb strings.Builder
	sb.WriteString(`SELECT ih.IssueDate, ih.ProductCode, p.ProductName, ih.IssueDescription, ih.Resolution
FROM ` + b.table("IssueHistory") + ` ih
JOIN ` + b.table("Product") + ` p ON ih.ProductCode = p.ProductCode
WHERE ih.CustomerID = ?`)
	args := []any{customerID}

	if productCode != "" {
		sb.WriteString(" AND ih.ProductCode = ?")
		args = append(args, productCode)
	}

	sb.WriteString(" ORDER BY ih.IssueDate DESC")

	return Query{Text: sb.String(), Args: args}
}
