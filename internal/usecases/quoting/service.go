package quoting

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow"
	"github.com/rabie02/servicenow-gateway/infrastructure/repository"
	"github.com/rabie02/servicenow-gateway/internal/domain"
	"github.com/rabie02/servicenow-gateway/pkg/apiErrors"
)

type Quoter interface {
	ListQuotes(ctx context.Context, page, limit int, q string) (*domain.QuoteList, error)
	GetQuote(ctx context.Context, sysID string) (*domain.Quote, error)
	CreateQuote(ctx context.Context, opportunitySysID string) (*domain.Quote, error)
	UpdateQuote(ctx context.Context, sysID string, fields map[string]any) (*domain.Quote, error)
	UpdateQuoteState(ctx context.Context, sysID string, targetState string) (*domain.Quote, error)
	DeleteQuote(ctx context.Context, sysID string) error
}

type Service struct {
	integrator      servicenow.QuoteIntegrator
	contractLogRepo repository.ContractLogRepository
	guard           *inflightGuard
}

func NewService(
	integrator servicenow.QuoteIntegrator,
	contractLogRepo repository.ContractLogRepository,
) Quoter {
	return &Service{
		integrator:      integrator,
		contractLogRepo: contractLogRepo,
		guard:           newInflightGuard(),
	}
}

func (s *Service) ListQuotes(ctx context.Context, page, limit int, q string) (*domain.QuoteList, error) {
	return s.integrator.ListQuotes(ctx, page, limit, q)
}

func (s *Service) GetQuote(ctx context.Context, sysID string) (*domain.Quote, error) {
	if sysID == "" {
		return nil, NewQuoteError(ErrQuoteIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da cotação ausente")
	}

	quote, err := s.integrator.GetQuote(ctx, sysID)
	if err != nil {
		return nil, err
	}

	quote.Contracts = s.contractReferences(sysID)

	return quote, nil
}

func (s *Service) CreateQuote(ctx context.Context, opportunitySysID string) (*domain.Quote, error) {
	if opportunitySysID == "" {
		return nil, NewQuoteError(ErrOpportunityIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da oportunidade ausente")
	}

	return s.integrator.CreateQuoteFromOpportunity(ctx, opportunitySysID)
}

// UpdateQuote repassa uma edição genérica de campos. O número da cotação é
// atribuído pela instância e nunca editável pelo gateway.
func (s *Service) UpdateQuote(ctx context.Context, sysID string, fields map[string]any) (*domain.Quote, error) {
	if sysID == "" {
		return nil, NewQuoteError(ErrQuoteIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da cotação ausente")
	}

	delete(fields, "number")
	delete(fields, "sys_id")

	if len(fields) == 0 {
		return nil, NewQuoteErrorWithID(ErrNoFieldsToUpdate, apiErrors.ErrInvalidRequest, sysID, "Nenhum campo editável informado")
	}

	if !s.guard.Acquire(sysID) {
		return nil, NewQuoteErrorWithID(ErrQuoteMutationInFlight, apiErrors.ErrMutationInFlight, sysID, "Já existe uma mutação em andamento para esta cotação")
	}
	defer s.guard.Release(sysID)

	return s.integrator.UpdateQuote(ctx, sysID, fields)
}

// UpdateQuoteState valida a transição contra o estado atual da instância
// antes de repassar a mutação. A resposta é o eco do servidor, nunca uma
// projeção local do estado alvo.
func (s *Service) UpdateQuoteState(ctx context.Context, sysID string, targetState string) (*domain.Quote, error) {
	if sysID == "" {
		return nil, NewQuoteError(ErrQuoteIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da cotação ausente")
	}

	target, err := domain.ParseQuoteState(targetState)
	if err != nil {
		return nil, NewQuoteErrorWithID(ErrUnknownState, apiErrors.ErrInvalidFormat, sysID, "Estado de cotação desconhecido: "+targetState)
	}

	if !s.guard.Acquire(sysID) {
		return nil, NewQuoteErrorWithID(ErrQuoteMutationInFlight, apiErrors.ErrMutationInFlight, sysID, "Já existe uma mutação em andamento para esta cotação")
	}
	defer s.guard.Release(sysID)

	current, err := s.integrator.GetQuote(ctx, sysID)
	if err != nil {
		return nil, err
	}

	if !current.State.CanTransitionTo(target) {
		logrus.WithFields(logrus.Fields{
			"quote": current.Number,
			"from":  current.State,
			"to":    target,
		}).Warn("Transição de estado rejeitada")

		return nil, NewQuoteErrorWithID(
			ErrTransitionNotAllowed,
			apiErrors.ErrInvalidTransition,
			sysID,
			"Transição de "+string(current.State)+" para "+string(target)+" não permitida",
		)
	}

	updated, err := s.integrator.UpdateQuote(ctx, sysID, map[string]any{"state": string(target)})
	if err != nil {
		return nil, err
	}

	updated.Contracts = s.contractReferences(sysID)

	return updated, nil
}

func (s *Service) DeleteQuote(ctx context.Context, sysID string) error {
	if sysID == "" {
		return NewQuoteError(ErrQuoteIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da cotação ausente")
	}

	if !s.guard.Acquire(sysID) {
		return NewQuoteErrorWithID(ErrQuoteMutationInFlight, apiErrors.ErrMutationInFlight, sysID, "Já existe uma mutação em andamento para esta cotação")
	}
	defer s.guard.Release(sysID)

	return s.integrator.DeleteQuote(ctx, sysID)
}

// contractReferences monta as referências de contrato a partir do log local.
// Falha de leitura não derruba a cotação, apenas omite as referências.
func (s *Service) contractReferences(quoteSysID string) []domain.ContractReference {
	entries, err := s.contractLogRepo.ListByQuote(quoteSysID)
	if err != nil {
		logrus.WithField("quote", quoteSysID).Error("Erro ao consultar log de contratos:", err)
		return nil
	}

	references := make([]domain.ContractReference, 0, len(entries))
	for _, entry := range entries {
		references = append(references, domain.ContractReference{
			SysID:  entry.ContractSysID,
			Number: entry.ContractNumber,
		})
	}

	return references
}
