// Package fakeDesk wires a command Bootstrap whose warehouse and LLM are gomock mocks.
package fakeDesk

import (
	"context"
	"strings"
	"time"

	"github.com/t-kuni/aspa/cmd/bootstrap"
	"github.com/t-kuni/aspa/domain/external/azureOpenAi"
	"github.com/t-kuni/aspa/domain/external/warehouse"
	"github.com/t-kuni/aspa/domain/repository/config"
	"github.com/t-kuni/aspa/domain/repository/file"
	"github.com/t-kuni/aspa/domain/service/configFindService"
	"github.com/t-kuni/aspa/domain/service/configLoad"
	"github.com/t-kuni/aspa/domain/service/deskFactory"
	"github.com/t-kuni/aspa/domain/system/env"
	configRepo "github.com/t-kuni/aspa/infrastructure/repository/config"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type Mocks struct {
	FileRepository  *file.MockRepository
	Env             *env.MockIEnv
	WarehouseClient *warehouse.MockClient
	LLMClient       *azureOpenAi.MockClient
}

// NewBootstrap treats dir as the working directory and sees no environment variables.
func NewBootstrap(mockCtrl *gomock.Controller, dir string) (*bootstrap.Bootstrap, Mocks) {
	mocks := Mocks{
		FileRepository:  file.NewMockRepository(mockCtrl),
		Env:             env.NewMockIEnv(mockCtrl),
		WarehouseClient: warehouse.NewMockClient(mockCtrl),
		LLMClient:       azureOpenAi.NewMockClient(mockCtrl),
	}
	mocks.FileRepository.EXPECT().Getwd().Return(dir, nil).AnyTimes()
	mocks.Env.EXPECT().LookupEnv(gomock.Any()).Return("", false).AnyTimes()

	warehouseFactory := warehouse.NewMockClientFactory(mockCtrl)
	warehouseFactory.EXPECT().NewClient(gomock.Any(), gomock.Any()).Return(mocks.WarehouseClient, nil).AnyTimes()
	llmFactory := azureOpenAi.NewMockClientFactory(mockCtrl)
	llmFactory.EXPECT().NewClient(gomock.Any()).Return(mocks.LLMClient, nil).AnyTimes()

	configLoadSvc := configLoad.NewConfigLoadService(
		configFindService.NewConfigFindService(mocks.FileRepository),
		configRepo.NewConfigRepository(),
		mocks.Env,
	)
	boot := bootstrap.NewBootstrap(
		configLoadSvc,
		deskFactory.NewDeskFactory(warehouseFactory, llmFactory),
		func(config.Log) (*zap.Logger, error) { return zap.NewNop(), nil },
	)

	return boot, mocks
}

// Tables is what the fake warehouse answers, keyed by the bound arguments.
type Tables struct {
	Customers    map[string]warehouse.Table
	Manuals      map[string]warehouse.Table
	IssueHistory map[string]warehouse.Table
}

// Serve answers every query from tables. Unknown keys give an empty table.
func (m Mocks) Serve(tables Tables) {
	serve := func(ctx context.Context, q string, args ...any) (warehouse.Table, error) {
		keys := make([]string, len(args))
		for i, a := range args {
			keys[i] = a.(string)
		}
		key := strings.Join(keys, "/")

		switch {
		case strings.Contains(q, "Contact"):
			return tables.Customers[key], nil
		case strings.Contains(q, "Manuals"):
			return tables.Manuals[key], nil
		case strings.Contains(q, "IssueHistory"):
			return tables.IssueHistory[key], nil
		}
		return warehouse.Table{}, nil
	}

	m.WarehouseClient.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(serve).AnyTimes()
	m.WarehouseClient.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(serve).AnyTimes()
}

// CustomerTable is customer 7 with a heater (P1) and a fan (P2).
func CustomerTable() warehouse.Table {
	return warehouse.Table{
		Columns: []string{"CUSTOMERID", "CUSTOMERNAME", "EMAIL", "ADDRESS", "SALEID", "PRODUCTCODE", "PURCHASEDATE", "QUANTITY", "PRODUCTNAME", "DESCRIPTION", "MANUALLINK"},
		Rows: [][]any{
			{"7", "Taro Yamada", "taro@example.com", "Tokyo", int64(1), "P1", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), int64(1), "Heater", "Oil heater", "https://example.com/p1"},
			{"7", "Taro Yamada", "taro@example.com", "Tokyo", int64(2), "P2", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), int64(2), "Fan", "Ceiling fan", "https://example.com/p2"},
		},
	}
}

func ManualTable(text string) warehouse.Table {
	return warehouse.Table{
		Columns: []string{"MANUALCONTENT"},
		Rows:    [][]any{{text}},
	}
}

func IssueHistoryTable() warehouse.Table {
	return warehouse.Table{
		Columns: []string{"ISSUEDATE", "PRODUCTCODE", "PRODUCTNAME", "ISSUEDESCRIPTION", "RESOLUTION"},
		Rows: [][]any{
			{time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "P1", "Heater", "No heat", "Replaced fuse"},
		},
	}
}
