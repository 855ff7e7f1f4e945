package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/model/customer"
)

const wordWrap = 100

// Renderer writes command output. Markdown is rendered without colours so
// output stays readable when piped.
type Renderer struct {
	out      io.Writer
	markdown *glamour.TermRenderer
}

func NewRenderer(out io.Writer) (*Renderer, error) {
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create markdown renderer")
	}
	return &Renderer{out: out, markdown: md}, nil
}

func (r *Renderer) Title(text string) {
	fmt.Fprintln(r.out, lipgloss.NewStyle().Bold(true).Render(text))
}

func (r *Renderer) Subheader(text string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, lipgloss.NewStyle().Bold(true).Underline(true).Render(text))
}

func (r *Renderer) Line(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(r.out, t.Render())
}

func (r *Renderer) Markdown(text string) error {
	rendered, err := r.markdown.Render(text)
	if err != nil {
		return eris.Wrap(err, "failed to render markdown")
	}
	fmt.Fprint(r.out, rendered)
	return nil
}

func (r *Renderer) CustomerInformation(c customer.Customer) {
	r.Subheader("Customer Information")
	r.Line("Name: %s", c.Name)
	r.Line("Email: %s", c.Email)
	r.Line("Address: %s", c.Address)
}

func (r *Renderer) PurchasedProducts(purchases []customer.Purchase) {
	r.Subheader("Purchased Products")
	rows := make([][]string, len(purchases))
	for i, p := range purchases {
		rows[i] = []string{p.ProductCode, p.ProductName, p.PurchaseDate, p.ManualLink}
	}
	r.Table([]string{"productcode", "productname", "purchasedate", "manuallink"}, rows)
}

func (r *Renderer) IssueHistory(productName string, entries []customer.IssueHistoryEntry) {
	if productName == "" {
		r.Subheader("Issue/Service History")
	} else {
		r.Subheader(fmt.Sprintf("Issue/Service History for %s", productName))
	}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.IssueDate, e.ProductCode, e.ProductName, e.Description, e.Resolution}
	}
	r.Table([]string{"issuedate", "productcode", "productname", "issuedescription", "resolution"}, rows)
}

// TroubleshootingSteps prints the header, then the model's bullet lines as markdown.
func (r *Renderer) TroubleshootingSteps(issueDescription string, steps []string) error {
	r.Subheader("Manual Section")
	r.Line("Troubleshooting Steps for '%s' issue:", issueDescription)
	if len(steps) == 0 {
		r.Line("No troubleshooting steps were returned for this issue.")
		return nil
	}
	return r.Markdown(strings.Join(steps, "\n"))
}
