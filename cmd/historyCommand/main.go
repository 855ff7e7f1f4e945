package historyCommand

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/aspa/cmd/bootstrap"
	"github.com/t-kuni/aspa/infrastructure/view"
)

type HistoryCommand struct {
	CobraCommand *cobra.Command
}

func NewHistoryCommand(bootstrap *bootstrap.Bootstrap) *HistoryCommand {
	var productFlag string

	cmd := &cobra.Command{
		Use:   "history <phone-number>",
		Short: "Show a customer's issue/service history",
		Long: `Show the issue/service history of the customer who owns the phone number, newest first.
With --product only issues for that purchased product are listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phoneNumber := strings.TrimSpace(args[0])
			if phoneNumber == "" {
				return eris.New("phone number is empty")
			}

			rt, err := bootstrap.Prepare()
			if err != nil {
				return err
			}
			defer rt.Close()

			renderer, err := view.NewRenderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			profile, found, err := rt.Desk.CustomerLookup.LookupByPhone(cmd.Context(), phoneNumber)
			if err != nil {
				return eris.Wrap(err, "failed to look up customer")
			}
			if !found {
				renderer.Line("No customer data found for this phone number.")
				return nil
			}

			var productCode, productName string
			if productFlag != "" {
				purchase, ok := profile.FindPurchase(productFlag)
				if !ok {
					return eris.Errorf("product %s is not among this customer's purchases", productFlag)
				}
				productCode, productName = purchase.ProductCode, purchase.ProductName
			}

			entries, err := rt.Desk.IssueHistory.FetchIssueHistory(cmd.Context(), profile.Customer.ID, productCode)
			if err != nil {
				return eris.Wrap(err, "failed to fetch issue history")
			}
			if len(entries) == 0 {
				if productName != "" {
					renderer.Line("No previous issues found for the selected product: %s.", productName)
				} else {
					renderer.Line("No previous issues found for this customer.")
				}
				return nil
			}

			renderer.IssueHistory(productName, entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&productFlag, "product", "", "Product name or code to filter the history by")

	return &HistoryCommand{
		CobraCommand: cmd,
	}
}
