package troubleshootCommand

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/aspa/cmd/bootstrap"
	"github.com/t-kuni/aspa/domain/service/historySave"
	"github.com/t-kuni/aspa/infrastructure/view"
	"github.com/t-kuni/aspa/util/path"
	"go.uber.org/zap"
)

type TroubleshootCommand struct {
	CobraCommand *cobra.Command
}

func NewTroubleshootCommand(
	bootstrap *bootstrap.Bootstrap,
	historySaveService *historySave.HistorySaveService,
) *TroubleshootCommand {
	var productFlag string
	var issueFlag string
	var promptFlag bool
	var inputFlag bool
	var saveHistoryFlag bool

	cmd := &cobra.Command{
		Use:   "troubleshoot <phone-number>",
		Short: "Extract troubleshooting steps for a customer's issue",
		Long: `Look up the customer, fetch the manual of the selected purchased product and ask the LLM
for the troubleshooting steps in that manual matching the issue description.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phoneNumber := strings.TrimSpace(args[0])
			if phoneNumber == "" {
				return eris.New("phone number is empty")
			}
			if productFlag == "" {
				return eris.New("--product is required")
			}

			issueDescription, err := readIssueDescription(cmd, issueFlag, promptFlag, inputFlag)
			if err != nil {
				return err
			}
			if issueDescription == "" {
				return eris.New("issue description is empty")
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

			purchase, ok := profile.FindPurchase(productFlag)
			if !ok {
				return eris.Errorf("product %s is not among this customer's purchases", productFlag)
			}

			manualText, found, err := rt.Desk.ManualFetch.FetchManual(cmd.Context(), purchase.ProductCode)
			if err != nil {
				return eris.Wrap(err, "failed to fetch manual")
			}
			if !found || strings.TrimSpace(manualText) == "" {
				renderer.Line("Manual not found for this product.")
				return nil
			}

			extractor, err := rt.Desk.StepExtract()
			if err != nil {
				return err
			}

			result, err := extractor.ExtractSteps(issueDescription, manualText)
			if err != nil {
				return eris.Wrap(err, "failed to extract troubleshooting steps")
			}

			if saveHistoryFlag || rt.Config.History.Enabled {
				dir, err := historySaveService.SaveTroubleshooting(rt.RootDir, result.Prompt, result.Completion)
				if err != nil {
					return eris.Wrap(err, "failed to save history")
				}
				rt.Logger.Info("Saved troubleshooting history", zap.String("dir", path.BeforeWrite(dir)))
			}

			return renderer.TroubleshootingSteps(issueDescription, result.Steps)
		},
	}

	cmd.Flags().StringVar(&productFlag, "product", "", "Name or code of the purchased product the issue is about")
	cmd.Flags().StringVar(&issueFlag, "issue", "", "Issue description")
	cmd.Flags().BoolVarP(&promptFlag, "prompt", "p", false, "Open editor to write the issue description")
	cmd.Flags().BoolVarP(&inputFlag, "input", "i", false, "Read the issue description from stdin")
	cmd.Flags().BoolVar(&saveHistoryFlag, "save-history", false, "Save the prompt and the LLM answer under .aspa/history")

	return &TroubleshootCommand{
		CobraCommand: cmd,
	}
}

func readIssueDescription(cmd *cobra.Command, issueFlag string, promptFlag bool, inputFlag bool) (string, error) {
	sources := 0
	for _, set := range []bool{issueFlag != "", promptFlag, inputFlag} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return "", eris.New("only one of --issue, -p and -i can be used")
	}

	switch {
	case promptFlag:
		return getIssueFromEditor()
	case inputFlag:
		return readStdin(cmd.InOrStdin())
	default:
		return strings.TrimSpace(issueFlag), nil
	}
}

func getIssueFromEditor() (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	tempFile, err := os.CreateTemp("", "aspa-issue-*.md")
	if err != nil {
		return "", eris.Wrap(err, "failed to create temporary file")
	}
	defer os.Remove(tempFile.Name())
	tempFile.Close()

	cmd := exec.Command(editor, tempFile.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	if err != nil {
		return "", eris.Wrap(err, "failed to run editor")
	}

	issue, err := os.ReadFile(tempFile.Name())
	if err != nil {
		return "", eris.Wrap(err, "failed to read issue description from temporary file")
	}

	return strings.TrimSpace(string(issue)), nil
}

func readStdin(in io.Reader) (string, error) {
	stdin, err := io.ReadAll(in)
	if err != nil {
		return "", eris.Wrap(err, "failed to read from stdin")
	}
	return strings.TrimSpace(string(stdin)), nil
}

