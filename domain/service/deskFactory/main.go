package deskFactory

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/external/azureOpenAi"
	"github.com/t-kuni/aspa/domain/external/warehouse"
	"github.com/t-kuni/aspa/domain/model/query"
	"github.com/t-kuni/aspa/domain/repository/config"
	"github.com/t-kuni/aspa/domain/service/customerLookup"
	"github.com/t-kuni/aspa/domain/service/issueHistory"
	"github.com/t-kuni/aspa/domain/service/manualFetch"
	"github.com/t-kuni/aspa/domain/service/stepExtract"
	"go.uber.org/zap"
)

// Desk bundles the services one interaction needs, all built from the same config.
type Desk struct {
	CustomerLookup *customerLookup.CustomerLookupService
	IssueHistory   *issueHistory.IssueHistoryService
	ManualFetch    *manualFetch.ManualFetchService

	llmFactory azureOpenAi.ClientFactory
	llmConfig  config.LLM
}

// StepExtract creates the model client on first use so lookups work without LLM credentials.
func (d *Desk) StepExtract() (*stepExtract.StepExtractService, error) {
	client, err := d.llmFactory.NewClient(d.llmConfig)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create LLM client")
	}
	return stepExtract.NewStepExtractService(client, d.llmConfig.MaxTokens), nil
}

type DeskFactory struct {
	warehouseFactory warehouse.ClientFactory
	llmFactory       azureOpenAi.ClientFactory
}

func NewDeskFactory(warehouseFactory warehouse.ClientFactory, llmFactory azureOpenAi.ClientFactory) *DeskFactory {
	return &DeskFactory{
		warehouseFactory: warehouseFactory,
		llmFactory:       llmFactory,
	}
}

func (f *DeskFactory) Make(cfg *config.Config, logger *zap.Logger) (*Desk, error) {
	client, err := f.warehouseFactory.NewClient(cfg.Warehouse, logger)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create warehouse client")
	}

	queries := query.NewBuilder(cfg.Warehouse.TablePrefix())

	return &Desk{
		CustomerLookup: customerLookup.NewCustomerLookupService(client, queries),
		IssueHistory:   issueHistory.NewIssueHistoryService(client, queries),
		ManualFetch:    manualFetch.NewManualFetchService(client, queries, logger),
		llmFactory:     f.llmFactory,
		llmConfig:      cfg.LLM,
	}, nil
}
