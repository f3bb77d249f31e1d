package quoting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	snmocks "github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/mocks"
	repomocks "github.com/rabie02/servicenow-gateway/infrastructure/repository/mocks"
	"github.com/rabie02/servicenow-gateway/internal/domain"
	"github.com/rabie02/servicenow-gateway/pkg/apiErrors"
)

func TestUpdateQuoteState(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		sysID       string
		targetState string
		setup       func(integrator *snmocks.MockQuoteIntegrator, logRepo *repomocks.MockContractLogRepository)
		validate    func(t *testing.T, quote *domain.Quote, err error)
	}{
		{
			name:        "Deve aprovar cotação em rascunho e devolver o eco do servidor",
			sysID:       "abc123",
			targetState: "approved",
			setup: func(integrator *snmocks.MockQuoteIntegrator, logRepo *repomocks.MockContractLogRepository) {
				integrator.EXPECT().
					GetQuote(gomock.Any(), "abc123").
					Return(&domain.Quote{SysID: "abc123", Number: "Q-1001", State: domain.QuoteStateDraft}, nil)

				integrator.EXPECT().
					UpdateQuote(gomock.Any(), "abc123", map[string]any{"state": "approved"}).
					Return(&domain.Quote{SysID: "abc123", Number: "Q-1001", State: domain.QuoteStateApproved}, nil)

				logRepo.EXPECT().
					ListByQuote("abc123").
					Return([]*domain.ContractLogEntry{
						{ContractSysID: "ct001", ContractNumber: "CNTR-77"},
					}, nil)
			},
			validate: func(t *testing.T, quote *domain.Quote, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.QuoteStateApproved, quote.State)
				assert.Len(t, quote.Contracts, 1)
				assert.Equal(t, "CNTR-77", quote.Contracts[0].Number)
			},
		},
		{
			name:        "Deve rejeitar transição ilegal sem disparar a mutação",
			sysID:       "abc123",
			targetState: "approved",
			setup: func(integrator *snmocks.MockQuoteIntegrator, logRepo *repomocks.MockContractLogRepository) {
				integrator.EXPECT().
					GetQuote(gomock.Any(), "abc123").
					Return(&domain.Quote{SysID: "abc123", Number: "Q-1001", State: domain.QuoteStateRejected}, nil)
				// Nenhuma chamada a UpdateQuote é esperada.
			},
			validate: func(t *testing.T, quote *domain.Quote, err error) {
				assert.Nil(t, quote)
				assert.ErrorIs(t, err, ErrTransitionNotAllowed)

				var quoteErr *QuoteError
				assert.ErrorAs(t, err, &quoteErr)
				assert.Equal(t, apiErrors.ErrInvalidTransition, quoteErr.Code)
			},
		},
		{
			name:        "Deve rejeitar estado fora da enumeração antes de consultar a instância",
			sysID:       "abc123",
			targetState: "cancelled",
			setup: func(integrator *snmocks.MockQuoteIntegrator, logRepo *repomocks.MockContractLogRepository) {
				// Nenhuma chamada à instância é esperada.
			},
			validate: func(t *testing.T, quote *domain.Quote, err error) {
				assert.Nil(t, quote)
				assert.ErrorIs(t, err, ErrUnknownState)

				var quoteErr *QuoteError
				assert.ErrorAs(t, err, &quoteErr)
				assert.Equal(t, apiErrors.ErrInvalidFormat, quoteErr.Code)
			},
		},
		{
			name:        "Deve exigir o identificador da cotação",
			sysID:       "",
			targetState: "approved",
			setup:       func(integrator *snmocks.MockQuoteIntegrator, logRepo *repomocks.MockContractLogRepository) {},
			validate: func(t *testing.T, quote *domain.Quote, err error) {
				assert.Nil(t, quote)
				assert.ErrorIs(t, err, ErrQuoteIDRequired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := snmocks.NewMockQuoteIntegrator(ctrl)
			logRepo := repomocks.NewMockContractLogRepository(ctrl)
			tt.setup(integrator, logRepo)

			service := NewService(integrator, logRepo)

			quote, err := service.UpdateQuoteState(ctx, tt.sysID, tt.targetState)
			tt.validate(t, quote, err)
		})
	}
}

func TestUpdateQuoteStateInFlightConflict(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := snmocks.NewMockQuoteIntegrator(ctrl)
	logRepo := repomocks.NewMockContractLogRepository(ctrl)

	service := &Service{
		integrator:      integrator,
		contractLogRepo: logRepo,
		guard:           newInflightGuard(),
	}

	// Simula uma mutação em andamento para a mesma cotação.
	assert.True(t, service.guard.Acquire("abc123"))
	defer service.guard.Release("abc123")

	quote, err := service.UpdateQuoteState(ctx, "abc123", "approved")

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, ErrQuoteMutationInFlight)

	var quoteErr *QuoteError
	assert.ErrorAs(t, err, &quoteErr)
	assert.Equal(t, apiErrors.ErrMutationInFlight, quoteErr.Code)
}

func TestUpdateQuote(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		sysID    string
		fields   map[string]any
		setup    func(integrator *snmocks.MockQuoteIntegrator)
		validate func(t *testing.T, quote *domain.Quote, err error)
	}{
		{
			name:   "Deve repassar edição de campos e descartar campos imutáveis",
			sysID:  "abc123",
			fields: map[string]any{"currency": "BRL", "number": "Q-9999", "sys_id": "outro"},
			setup: func(integrator *snmocks.MockQuoteIntegrator) {
				integrator.EXPECT().
					UpdateQuote(gomock.Any(), "abc123", map[string]any{"currency": "BRL"}).
					Return(&domain.Quote{SysID: "abc123", Currency: "BRL"}, nil)
			},
			validate: func(t *testing.T, quote *domain.Quote, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "BRL", quote.Currency)
			},
		},
		{
			name:   "Deve rejeitar edição sem campos editáveis",
			sysID:  "abc123",
			fields: map[string]any{"number": "Q-9999"},
			setup:  func(integrator *snmocks.MockQuoteIntegrator) {},
			validate: func(t *testing.T, quote *domain.Quote, err error) {
				assert.Nil(t, quote)
				assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := snmocks.NewMockQuoteIntegrator(ctrl)
			tt.setup(integrator)

			service := NewService(integrator, repomocks.NewMockContractLogRepository(ctrl))

			quote, err := service.UpdateQuote(ctx, tt.sysID, tt.fields)
			tt.validate(t, quote, err)
		})
	}
}

func TestGetQuoteToleratesContractLogFailure(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := snmocks.NewMockQuoteIntegrator(ctrl)
	logRepo := repomocks.NewMockContractLogRepository(ctrl)

	integrator.EXPECT().
		GetQuote(gomock.Any(), "abc123").
		Return(&domain.Quote{SysID: "abc123", Number: "Q-1001", State: domain.QuoteStateDraft}, nil)

	logRepo.EXPECT().
		ListByQuote("abc123").
		Return(nil, assert.AnError)

	service := NewService(integrator, logRepo)

	quote, err := service.GetQuote(ctx, "abc123")

	assert.NoError(t, err)
	assert.Equal(t, "Q-1001", quote.Number)
	assert.Empty(t, quote.Contracts)
}
