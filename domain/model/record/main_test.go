package record

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t-kuni/aspa/domain/external/warehouse"
)

func TestShape(t *testing.T) {
	t.Run("列名が小文字化・トリムされ、日付がISO-8601文字列になること", func(t *testing.T) {
		table := warehouse.Table{
			Columns: []string{"CustomerName", " Email ", "PurchaseDate"},
			Rows: [][]any{
				{"Taro", "taro@example.com", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
			},
		}

		records, err := Shape(table)

		require.NoError(t, err)
		assert.Equal(t, []string{"customername", "email", "purchasedate"}, records.Columns)
		assert.Equal(t, Row{
			"customername": "Taro",
			"email":        "taro@example.com",
			"purchasedate": "2024-03-09",
		}, records.Rows[0])
	})

	t.Run("日時は時刻付きで出力されること", func(t *testing.T) {
		table := warehouse.Table{
			Columns: []string{"IssueDate"},
			Rows:    [][]any{{time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC)}},
		}

		records, err := Shape(table)

		require.NoError(t, err)
		assert.Equal(t, "2024-03-09T10:30:00", records.Rows[0]["issuedate"])
	})

	t.Run("バイト列は文字列に変換されること", func(t *testing.T) {
		table := warehouse.Table{
			Columns: []string{"ManualContent"},
			Rows:    [][]any{{[]byte("manual")}},
		}

		records, err := Shape(table)

		require.NoError(t, err)
		assert.Equal(t, "manual", records.Rows[0]["manualcontent"])
	})

	t.Run("未知の型はErrNotSerializableで失敗すること", func(t *testing.T) {
		table := warehouse.Table{
			Columns: []string{"Weird"},
			Rows:    [][]any{{struct{}{}}},
		}

		_, err := Shape(table)

		assert.True(t, errors.Is(err, ErrNotSerializable))
	})

	t.Run("空の結果は空のRecordsになること", func(t *testing.T) {
		records, err := Shape(warehouse.Table{Columns: []string{"ManualContent"}})

		require.NoError(t, err)
		assert.True(t, records.IsEmpty())
		assert.True(t, records.Has("manualcontent"))
	})
}

func TestISODate(t *testing.T) {
	t.Run("日付以外は拒否されること", func(t *testing.T) {
		_, err := ISODate("2024-03-09")
		assert.True(t, errors.Is(err, ErrNotSerializable))
	})

	t.Run("UTC以外はオフセット付きになること", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		actual, err := ISODate(time.Date(2024, 3, 9, 0, 0, 0, 0, jst))
		require.NoError(t, err)
		assert.Equal(t, "2024-03-09T00:00:00+09:00", actual)
	})
}

func TestRecords(t *testing.T) {
	records := Records{
		Columns: []string{"customerid", "customername", "productcode"},
		Rows: []Row{
			{"customerid": int64(1), "customername": "Taro", "productcode": "P1"},
			{"customerid": int64(1), "customername": "Taro", "productcode": "P2"},
		},
	}

	t.Run("Distinctで重複が除かれること", func(t *testing.T) {
		distinct := records.Distinct("customerid", "customername")
		assert.Len(t, distinct.Rows, 1)
		assert.Equal(t, "1", distinct.Rows[0].String("customerid"))
	})

	t.Run("Distinctは最初の行を残すこと", func(t *testing.T) {
		distinct := records.Distinct("customername")
		assert.Equal(t, "P1", distinct.Rows[0].String("productcode"))
	})

	t.Run("存在しない列は空文字になること", func(t *testing.T) {
		assert.Equal(t, "", records.Rows[0].String("email"))
	})
}
