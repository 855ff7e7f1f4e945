package customerCommand_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t-kuni/aspa/cmd/customerCommand"
	"github.com/t-kuni/aspa/domain/external/warehouse"
	"github.com/t-kuni/aspa/testUtil"
	"github.com/t-kuni/aspa/testUtil/fakeDesk"
	"go.uber.org/mock/gomock"
)

func TestCustomerCommand(t *testing.T) {
	callCommand := func(mockCtrl *gomock.Controller, dir string, args []string, tables fakeDesk.Tables) (string, error) {
		boot, mocks := fakeDesk.NewBootstrap(mockCtrl, dir)
		mocks.Serve(tables)

		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(customerCommand.NewCustomerCommand(boot).CobraCommand)

		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}

	t.Run("顧客情報と購入製品が表示されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		out, err := callCommand(mockCtrl, space.Dir, []string{"customer", "090-1234-5678"}, fakeDesk.Tables{
			Customers: map[string]warehouse.Table{"090-1234-5678": fakeDesk.CustomerTable()},
		})

		require.NoError(t, err)
		assert.Contains(t, out, "Customer Information")
		assert.Contains(t, out, "Name: Taro Yamada")
		assert.Contains(t, out, "Email: taro@example.com")
		assert.Contains(t, out, "Address: Tokyo")
		assert.Contains(t, out, "Purchased Products")
		assert.Contains(t, out, "Heater")
		assert.Contains(t, out, "2024-03-09")
		assert.Contains(t, out, "https://example.com/p2")
	})

	t.Run("該当する顧客がいない場合はメッセージが表示されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		out, err := callCommand(mockCtrl, space.Dir, []string{"customer", "000"}, fakeDesk.Tables{})

		require.NoError(t, err)
		assert.Contains(t, out, "No customer data found for this phone number.")
		assert.NotContains(t, out, "Purchased Products")
	})
}
