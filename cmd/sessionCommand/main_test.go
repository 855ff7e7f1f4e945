package sessionCommand_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t-kuni/aspa/cmd/sessionCommand"
	domainAzureOpenAi "github.com/t-kuni/aspa/domain/external/azureOpenAi"
	"github.com/t-kuni/aspa/domain/external/warehouse"
	"github.com/t-kuni/aspa/testUtil"
	"github.com/t-kuni/aspa/testUtil/fakeDesk"
	"go.uber.org/mock/gomock"
)

func TestSessionCommand(t *testing.T) {
	callCommand := func(
		mockCtrl *gomock.Controller,
		dir string,
		input string,
		customizeMocks func(mocks fakeDesk.Mocks),
	) (string, error) {
		boot, mocks := fakeDesk.NewBootstrap(mockCtrl, dir)
		customizeMocks(mocks)

		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(sessionCommand.NewSessionCommand(boot).CobraCommand)

		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetIn(strings.NewReader(input))
		rootCmd.SetArgs([]string{"session"})
		err := rootCmd.Execute()
		return out.String(), err
	}

	tables := fakeDesk.Tables{
		Customers:    map[string]warehouse.Table{"090-1234-5678": fakeDesk.CustomerTable()},
		Manuals:      map[string]warehouse.Table{"P1": fakeDesk.ManualTable("HEATER MANUAL")},
		IssueHistory: map[string]warehouse.Table{"7/P1": fakeDesk.IssueHistoryTable()},
	}

	t.Run("電話番号から手順の表示まで一通り進められること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		input := "090-1234-5678\n1\ny\nno heat\n"
		out, err := callCommand(mockCtrl, space.Dir, input, func(mocks fakeDesk.Mocks) {
			mocks.Serve(tables)
			mocks.LLMClient.EXPECT().SendMessage(gomock.Any(), 1000).
				Return(domainAzureOpenAi.GenerationResult{Content: "1. Check the fuse\n2. Reset the breaker"}, nil)
		})

		require.NoError(t, err)
		assert.Contains(t, out, "Customer Service Demo with GPT")
		assert.Contains(t, out, "Name: Taro Yamada")
		assert.Contains(t, out, "1) Heater (P1)")
		assert.Contains(t, out, "Issue/Service History for Heater")
		assert.Contains(t, out, "Replaced fuse")
		assert.Contains(t, out, "Troubleshooting Steps for 'no heat' issue:")
		assert.Contains(t, out, "Check the fuse")
		assert.Contains(t, out, "Reset the breaker")
	})

	t.Run("一覧にない製品は選び直しになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		input := "090-1234-5678\nToaster\nFan\nn\nnoise\n"
		out, err := callCommand(mockCtrl, space.Dir, input, func(mocks fakeDesk.Mocks) {
			mocks.Serve(tables)
		})

		require.NoError(t, err)
		assert.Contains(t, out, `"Toaster" is not one of the listed products.`)
		assert.NotContains(t, out, "Issue/Service History for")
		assert.Contains(t, out, "Manual not found for this product.")
	})

	t.Run("該当する顧客がいない場合はそこで終了すること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		out, err := callCommand(mockCtrl, space.Dir, "000\n", func(mocks fakeDesk.Mocks) {
			mocks.Serve(tables)
		})

		require.NoError(t, err)
		assert.Contains(t, out, "No customer data found for this phone number.")
	})

	t.Run("入力が途中で終わった場合はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		_, err := callCommand(mockCtrl, space.Dir, "090-1234-5678\n", func(mocks fakeDesk.Mocks) {
			mocks.Serve(tables)
		})

		assert.Error(t, err)
	})
}
