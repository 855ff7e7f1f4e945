package customerCommand

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/aspa/cmd/bootstrap"
	"github.com/t-kuni/aspa/infrastructure/view"
)

type CustomerCommand struct {
	CobraCommand *cobra.Command
}

func NewCustomerCommand(bootstrap *bootstrap.Bootstrap) *CustomerCommand {
	cmd := &cobra.Command{
		Use:   "customer <phone-number>",
		Short: "Show a customer and their purchased products",
		Long:  `Look up the customer who owns the phone number and list every product they purchased.`,
		Args:  cobra.ExactArgs(1),
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

			renderer.CustomerInformation(profile.Customer)
			renderer.PurchasedProducts(profile.Purchases)
			return nil
		},
	}

	return &CustomerCommand{
		CobraCommand: cmd,
	}
}
