package servicenow

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	sndomain "github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/domain"
	"github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/servicenowclient"
	"github.com/rabie02/servicenow-gateway/internal/config"
	"github.com/rabie02/servicenow-gateway/internal/domain"
)

// Interfaces segregadas por contexto de uso; os usecases dependem apenas do
// recorte que consomem.

type QuoteIntegrator interface {
	ListQuotes(ctx context.Context, page, limit int, q string) (*domain.QuoteList, error)
	GetQuote(ctx context.Context, sysID string) (*domain.Quote, error)
	CreateQuoteFromOpportunity(ctx context.Context, opportunitySysID string) (*domain.Quote, error)
	UpdateQuote(ctx context.Context, sysID string, fields map[string]any) (*domain.Quote, error)
	DeleteQuote(ctx context.Context, sysID string) error
}

type ContractIntegrator interface {
	GenerateContract(ctx context.Context, quoteSysID string) (*domain.Contract, error)
	DownloadContract(ctx context.Context, contractSysID string) (*domain.ContractDocument, error)
}

type CatalogIntegrator interface {
	ListProductOfferings(ctx context.Context, limit, offset int) ([]*domain.ProductOffering, error)
	ListProductOfferingsBySpec(ctx context.Context, specSysID string) ([]*domain.ProductOffering, error)
	ListProductSpecifications(ctx context.Context, limit int) ([]*domain.ProductSpecification, error)
	ListCategories(ctx context.Context, limit, offset int) ([]*domain.Category, error)
	ListCatalogs(ctx context.Context, limit int) ([]*domain.Catalog, error)
}

type OpportunityIntegrator interface {
	ListOpportunities(ctx context.Context, limit int) ([]*domain.Opportunity, error)
}

type Integrator interface {
	QuoteIntegrator
	ContractIntegrator
	CatalogIntegrator
	OpportunityIntegrator
}

type SNIntegrator struct {
	cfg    *config.Config
	client servicenowclient.Client
}

func New(cfg *config.Config, client servicenowclient.Client) *SNIntegrator {
	return &SNIntegrator{
		cfg:    cfg,
		client: client,
	}
}

func (i *SNIntegrator) ListQuotes(ctx context.Context, page, limit int, q string) (*domain.QuoteList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	records, total, err := i.client.ListQuotes(ctx, page, limit, q)
	if err != nil {
		return nil, err
	}

	quotes := make([]*domain.Quote, 0, len(records))
	for idx := range records {
		quotes = append(quotes, mapQuote(&records[idx]))
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &domain.QuoteList{
		Data:       quotes,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

// GetQuote busca o registro e as linhas da cotação. As referências de
// contratos gerados são preenchidas pela camada de usecase a partir do log
// local.
func (i *SNIntegrator) GetQuote(ctx context.Context, sysID string) (*domain.Quote, error) {
	record, err := i.client.GetQuote(ctx, sysID)
	if err != nil {
		return nil, err
	}

	quote := mapQuote(record)

	lines, err := i.client.ListQuoteLines(ctx, sysID)
	if err != nil {
		return nil, err
	}

	quote.QuoteLines = make([]domain.QuoteLine, 0, len(lines))
	for idx := range lines {
		quote.QuoteLines = append(quote.QuoteLines, mapQuoteLine(&lines[idx]))
	}

	return quote, nil
}

func (i *SNIntegrator) CreateQuoteFromOpportunity(ctx context.Context, opportunitySysID string) (*domain.Quote, error) {
	record, err := i.client.CreateQuoteFromOpportunity(ctx, opportunitySysID)
	if err != nil {
		return nil, err
	}
	return mapQuote(record), nil
}

func (i *SNIntegrator) UpdateQuote(ctx context.Context, sysID string, fields map[string]any) (*domain.Quote, error) {
	record, err := i.client.UpdateQuote(ctx, sysID, fields)
	if err != nil {
		return nil, err
	}
	return mapQuote(record), nil
}

func (i *SNIntegrator) DeleteQuote(ctx context.Context, sysID string) error {
	return i.client.DeleteQuote(ctx, sysID)
}

func (i *SNIntegrator) GenerateContract(ctx context.Context, quoteSysID string) (*domain.Contract, error) {
	record, err := i.client.GenerateContract(ctx, quoteSysID)
	if err != nil {
		return nil, err
	}

	contract := &domain.Contract{
		SysID:      record.SysID,
		Number:     record.Number,
		QuoteSysID: record.Quote,
		State:      record.State,
	}
	if createdAt := parseDateTime(record.CreatedOn); createdAt != nil {
		contract.CreatedAt = *createdAt
	}

	return contract, nil
}

func (i *SNIntegrator) DownloadContract(ctx context.Context, contractSysID string) (*domain.ContractDocument, error) {
	attachment, err := i.client.DownloadContract(ctx, contractSysID)
	if err != nil {
		return nil, err
	}

	return &domain.ContractDocument{
		Content:            attachment.Content,
		ContentType:        attachment.ContentType,
		ContentDisposition: attachment.ContentDisposition,
	}, nil
}

func (i *SNIntegrator) ListProductOfferings(ctx context.Context, limit, offset int) ([]*domain.ProductOffering, error) {
	records, err := i.client.ListProductOfferings(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	offerings := make([]*domain.ProductOffering, 0, len(records))
	for idx := range records {
		offerings = append(offerings, mapOffering(&records[idx]))
	}
	return offerings, nil
}

func (i *SNIntegrator) ListProductOfferingsBySpec(ctx context.Context, specSysID string) ([]*domain.ProductOffering, error) {
	records, err := i.client.ListProductOfferingsBySpec(ctx, specSysID)
	if err != nil {
		return nil, err
	}

	offerings := make([]*domain.ProductOffering, 0, len(records))
	for idx := range records {
		offerings = append(offerings, mapOffering(&records[idx]))
	}
	return offerings, nil
}

func (i *SNIntegrator) ListProductSpecifications(ctx context.Context, limit int) ([]*domain.ProductSpecification, error) {
	records, err := i.client.ListProductSpecifications(ctx, limit)
	if err != nil {
		return nil, err
	}

	specs := make([]*domain.ProductSpecification, 0, len(records))
	for _, record := range records {
		specs = append(specs, &domain.ProductSpecification{
			SysID:       record.SysID,
			Name:        record.Name,
			DisplayName: record.DisplayName,
			Status:      record.Status,
		})
	}
	return specs, nil
}

func (i *SNIntegrator) ListCategories(ctx context.Context, limit, offset int) ([]*domain.Category, error) {
	records, err := i.client.ListCategories(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(records))
	for _, record := range records {
		categories = append(categories, &domain.Category{
			SysID:   record.SysID,
			Name:    record.Name,
			Code:    record.Code,
			Status:  record.Status,
			Catalog: record.Catalog,
		})
	}
	return categories, nil
}

func (i *SNIntegrator) ListCatalogs(ctx context.Context, limit int) ([]*domain.Catalog, error) {
	records, err := i.client.ListCatalogs(ctx, limit)
	if err != nil {
		return nil, err
	}

	catalogs := make([]*domain.Catalog, 0, len(records))
	for _, record := range records {
		catalogs = append(catalogs, &domain.Catalog{
			SysID:  record.SysID,
			Name:   record.Name,
			Code:   record.Code,
			Status: record.Status,
		})
	}
	return catalogs, nil
}

func (i *SNIntegrator) ListOpportunities(ctx context.Context, limit int) ([]*domain.Opportunity, error) {
	records, err := i.client.ListOpportunities(ctx, limit)
	if err != nil {
		return nil, err
	}

	opportunities := make([]*domain.Opportunity, 0, len(records))
	for _, record := range records {
		opportunities = append(opportunities, &domain.Opportunity{
			SysID:       record.SysID,
			Number:      record.Number,
			ShortDesc:   record.ShortDescription,
			Account:     record.Account,
			Stage:       record.Stage,
			SalesCycle:  record.SalesCycleType,
			CloseDate:   parseDateTime(record.CloseDate),
			Probability: record.Probability,
		})
	}
	return opportunities, nil
}

func mapQuote(record *sndomain.QuoteRecord) *domain.Quote {
	state, err := domain.ParseQuoteState(record.State)
	if err != nil {
		// A instância é a fonte da verdade: exibimos o valor cru em vez de
		// rejeitar o registro inteiro.
		logrus.WithField("quote", record.Number).Warnf("Estado fora da enumeração: %q", record.State)
		state = domain.QuoteState(record.State)
	}

	return &domain.Quote{
		SysID:                 record.SysID,
		Number:                record.Number,
		State:                 state,
		Version:               record.Version,
		Currency:              record.Currency,
		Account:               record.Account,
		Total:                 parseMoney(record.Total),
		SubscriptionStartDate: parseDateTime(record.SubscriptionStartDate),
		SubscriptionEndDate:   parseDateTime(record.SubscriptionEndDate),
		ExpirationDate:        parseDateTime(record.ExpirationDate),
	}
}

func mapQuoteLine(record *sndomain.QuoteLineRecord) domain.QuoteLine {
	quantity, _ := strconv.Atoi(record.Quantity)
	termMonth, _ := strconv.Atoi(record.TermMonth)

	return domain.QuoteLine{
		SysID:           record.SysID,
		ProductOffering: record.ProductOffering,
		Quantity:        quantity,
		UnitPrice:       parseMoney(record.UnitPrice),
		TermMonth:       termMonth,
		State:           record.State,
	}
}

func mapOffering(record *sndomain.ProductOfferingRecord) *domain.ProductOffering {
	return &domain.ProductOffering{
		SysID:                record.SysID,
		Name:                 record.Name,
		Code:                 record.Code,
		Status:               record.Status,
		ProductSpecification: record.ProductSpecification,
		Category:             record.Category,
		Price:                record.Price,
		RecurringPrice:       record.RecurringPrice,
	}
}

func parseMoney(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		logrus.Warnf("Valor monetário inválido vindo da instância: %q", raw)
		return decimal.Zero
	}
	return value
}

// parseDateTime aceita os dois formatos que a Table API devolve com display
// value: data-hora e data simples.
func parseDateTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed
		}
	}

	logrus.Warnf("Data em formato inesperado vinda da instância: %q", raw)
	return nil
}
