package sessionCommand

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/aspa/cmd/bootstrap"
	"github.com/t-kuni/aspa/domain/model/customer"
	"github.com/t-kuni/aspa/infrastructure/view"
)

type SessionCommand struct {
	CobraCommand *cobra.Command
}

func NewSessionCommand(bootstrap *bootstrap.Bootstrap) *SessionCommand {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Walk through a customer service interaction",
		Long: `Interactively look up a customer by phone number, pick the purchased product the issue is about,
optionally review its issue/service history and get troubleshooting steps from its manual.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap.Prepare()
			if err != nil {
				return err
			}
			defer rt.Close()

			renderer, err := view.NewRenderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			s := &session{
				rt:       rt,
				cmd:      cmd,
				renderer: renderer,
				in:       bufio.NewScanner(cmd.InOrStdin()),
				out:      cmd.OutOrStdout(),
			}
			return s.run()
		},
	}

	return &SessionCommand{
		CobraCommand: cmd,
	}
}

type session struct {
	rt       *bootstrap.Runtime
	cmd      *cobra.Command
	renderer *view.Renderer
	in       *bufio.Scanner
	out      io.Writer
}

func (s *session) run() error {
	s.renderer.Title("Customer Service Demo with GPT")
	s.renderer.Line("This app simulates a customer service interaction using data stored in the warehouse and GPT for generating technical solutions.")

	phoneNumber, err := s.ask("Enter customer's phone number: ")
	if err != nil || phoneNumber == "" {
		return err
	}

	ctx := s.cmd.Context()
	profile, found, err := s.rt.Desk.CustomerLookup.LookupByPhone(ctx, phoneNumber)
	if err != nil {
		return eris.Wrap(err, "failed to look up customer")
	}
	if !found {
		s.renderer.Line("No customer data found for this phone number.")
		return nil
	}

	s.renderer.CustomerInformation(profile.Customer)
	s.renderer.PurchasedProducts(profile.Purchases)

	purchase, err := s.selectProduct(profile)
	if err != nil {
		return err
	}

	answer, err := s.ask("Show Issue/Service History? [y/N]: ")
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") {
		if err := s.printIssueHistory(profile.Customer.ID, purchase); err != nil {
			return err
		}
	}

	issueDescription, err := s.ask("Enter the customer's issue description: ")
	if err != nil || issueDescription == "" {
		return err
	}

	manualText, found, err := s.rt.Desk.ManualFetch.FetchManual(ctx, purchase.ProductCode)
	if err != nil {
		return eris.Wrap(err, "failed to fetch manual")
	}
	if !found || strings.TrimSpace(manualText) == "" {
		s.renderer.Line("Manual not found for this product.")
		return nil
	}

	extractor, err := s.rt.Desk.StepExtract()
	if err != nil {
		return err
	}
	result, err := extractor.ExtractSteps(issueDescription, manualText)
	if err != nil {
		return eris.Wrap(err, "failed to extract troubleshooting steps")
	}

	return s.renderer.TroubleshootingSteps(issueDescription, result.Steps)
}

// selectProduct only offers products from this customer's purchases.
func (s *session) selectProduct(profile customer.Profile) (customer.Purchase, error) {
	for {
		fmt.Fprintln(s.out, "Select the product related to the issue:")
		for i, p := range profile.Purchases {
			fmt.Fprintf(s.out, "  %d) %s (%s)\n", i+1, p.ProductName, p.ProductCode)
		}

		answer, err := s.ask("Product number: ")
		if err != nil {
			return customer.Purchase{}, err
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(profile.Purchases) {
			return profile.Purchases[n-1], nil
		}
		if purchase, ok := profile.FindPurchase(answer); ok {
			return purchase, nil
		}
		fmt.Fprintf(s.out, "%q is not one of the listed products.\n", answer)
	}
}

func (s *session) printIssueHistory(customerID string, purchase customer.Purchase) error {
	entries, err := s.rt.Desk.IssueHistory.FetchIssueHistory(s.cmd.Context(), customerID, purchase.ProductCode)
	if err != nil {
		return eris.Wrap(err, "failed to fetch issue history")
	}
	if len(entries) == 0 {
		s.renderer.Line("No previous issues found for the selected product: %s.", purchase.ProductName)
		return nil
	}
	s.renderer.IssueHistory(purchase.ProductName, entries)
	return nil
}

// ask prints the prompt and reads one trimmed line. End of input is reported as an error.
func (s *session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", eris.Wrap(err, "failed to read input")
		}
		return "", eris.New("input ended before the session finished")
	}
	return strings.TrimSpace(s.in.Text()), nil
}
