package contracting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	snmocks "github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/mocks"
	repomocks "github.com/rabie02/servicenow-gateway/infrastructure/repository/mocks"
	"github.com/rabie02/servicenow-gateway/internal/domain"
	"github.com/rabie02/servicenow-gateway/pkg/apiErrors"
)

func TestGenerateContract(t *testing.T) {
	ctx := context.Background()
	loggedAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		quoteSysID     string
		idempotencyKey string
		setup          func(integrator *snmocks.MockContractIntegrator, logRepo *repomocks.MockContractLogRepository)
		validate       func(t *testing.T, contract *domain.Contract, err error)
	}{
		{
			name:           "Deve gerar contrato e registrar no log local",
			quoteSysID:     "abc123",
			idempotencyKey: "key-1",
			setup: func(integrator *snmocks.MockContractIntegrator, logRepo *repomocks.MockContractLogRepository) {
				logRepo.EXPECT().
					GetByIdempotencyKey("key-1").
					Return(nil, nil)

				integrator.EXPECT().
					GenerateContract(gomock.Any(), "abc123").
					Return(&domain.Contract{
						SysID:      "ct001",
						Number:     "CNTR-77",
						QuoteSysID: "abc123",
						CreatedAt:  loggedAt,
					}, nil)

				logRepo.EXPECT().
					Insert(gomock.Any()).
					DoAndReturn(func(entry *domain.ContractLogEntry) error {
						assert.NotEmpty(t, entry.ID)
						assert.Equal(t, "ct001", entry.ContractSysID)
						assert.Equal(t, "CNTR-77", entry.ContractNumber)
						assert.Equal(t, "abc123", entry.QuoteSysID)
						assert.Equal(t, "ana@bpm.local", entry.RequestedBy)
						assert.Equal(t, "key-1", entry.IdempotencyKey)
						return nil
					})
			},
			validate: func(t *testing.T, contract *domain.Contract, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "ct001", contract.SysID)
				assert.Equal(t, "CNTR-77", contract.Number)
			},
		},
		{
			name:           "Deve atender reenvio com a mesma chave pelo log, sem segunda geração",
			quoteSysID:     "abc123",
			idempotencyKey: "key-1",
			setup: func(integrator *snmocks.MockContractIntegrator, logRepo *repomocks.MockContractLogRepository) {
				logRepo.EXPECT().
					GetByIdempotencyKey("key-1").
					Return(&domain.ContractLogEntry{
						ID:             "log001",
						ContractSysID:  "ct001",
						ContractNumber: "CNTR-77",
						QuoteSysID:     "abc123",
						IdempotencyKey: "key-1",
						CreatedAt:      loggedAt,
					}, nil)
				// Nenhuma chamada à instância é esperada.
			},
			validate: func(t *testing.T, contract *domain.Contract, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "ct001", contract.SysID)
				assert.Equal(t, "CNTR-77", contract.Number)
				assert.Equal(t, loggedAt, contract.CreatedAt)
			},
		},
		{
			name:           "Deve falhar quando a consulta de idempotência falha",
			quoteSysID:     "abc123",
			idempotencyKey: "key-1",
			setup: func(integrator *snmocks.MockContractIntegrator, logRepo *repomocks.MockContractLogRepository) {
				logRepo.EXPECT().
					GetByIdempotencyKey("key-1").
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, contract *domain.Contract, err error) {
				assert.Nil(t, contract)
				assert.ErrorIs(t, err, ErrContractLogLookup)

				var contractErr *ContractError
				assert.ErrorAs(t, err, &contractErr)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, contractErr.Code)
			},
		},
		{
			name:       "Deve gerar sem consultar o log quando não há chave",
			quoteSysID: "abc123",
			setup: func(integrator *snmocks.MockContractIntegrator, logRepo *repomocks.MockContractLogRepository) {
				integrator.EXPECT().
					GenerateContract(gomock.Any(), "abc123").
					Return(&domain.Contract{SysID: "ct002", QuoteSysID: "abc123"}, nil)

				logRepo.EXPECT().
					Insert(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, contract *domain.Contract, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "ct002", contract.SysID)
			},
		},
		{
			name:     "Deve exigir o identificador da cotação",
			setup:    func(integrator *snmocks.MockContractIntegrator, logRepo *repomocks.MockContractLogRepository) {},
			validate: func(t *testing.T, contract *domain.Contract, err error) {
				assert.Nil(t, contract)
				assert.ErrorIs(t, err, ErrQuoteIDRequired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := snmocks.NewMockContractIntegrator(ctrl)
			logRepo := repomocks.NewMockContractLogRepository(ctrl)
			tt.setup(integrator, logRepo)

			service := NewService(integrator, logRepo)

			contract, err := service.GenerateContract(ctx, tt.quoteSysID, "ana@bpm.local", tt.idempotencyKey)
			tt.validate(t, contract, err)
		})
	}
}

func TestGenerateContractToleratesLogInsertFailure(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := snmocks.NewMockContractIntegrator(ctrl)
	logRepo := repomocks.NewMockContractLogRepository(ctrl)

	integrator.EXPECT().
		GenerateContract(gomock.Any(), "abc123").
		Return(&domain.Contract{SysID: "ct001", QuoteSysID: "abc123"}, nil)

	logRepo.EXPECT().
		Insert(gomock.Any()).
		Return(assert.AnError)

	service := NewService(integrator, logRepo)

	contract, err := service.GenerateContract(ctx, "abc123", "ana@bpm.local", "")

	assert.NoError(t, err)
	assert.Equal(t, "ct001", contract.SysID)
}

func TestDownloadContract(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := snmocks.NewMockContractIntegrator(ctrl)
	logRepo := repomocks.NewMockContractLogRepository(ctrl)

	integrator.EXPECT().
		DownloadContract(gomock.Any(), "ct001").
		Return(&domain.ContractDocument{
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4"),
		}, nil)

	service := NewService(integrator, logRepo)

	document, err := service.DownloadContract(ctx, "ct001")

	assert.NoError(t, err)
	assert.Equal(t, "application/pdf", document.ContentType)
	assert.NotEmpty(t, document.Content)

	_, err = service.DownloadContract(ctx, "")
	assert.ErrorIs(t, err, ErrContractIDRequired)
}
