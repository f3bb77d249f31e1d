package contracting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow"
	"github.com/rabie02/servicenow-gateway/infrastructure/repository"
	"github.com/rabie02/servicenow-gateway/internal/domain"
	"github.com/rabie02/servicenow-gateway/pkg/apiErrors"
	"github.com/rabie02/servicenow-gateway/pkg/utils"
)

type Contractor interface {
	GenerateContract(ctx context.Context, quoteSysID, requestedBy, idempotencyKey string) (*domain.Contract, error)
	DownloadContract(ctx context.Context, contractSysID string) (*domain.ContractDocument, error)
}

type Service struct {
	integrator      servicenow.ContractIntegrator
	contractLogRepo repository.ContractLogRepository

	// generations colapsa chamadas concorrentes de geração para a mesma
	// cotação em uma única requisição à instância.
	generations singleflight.Group
}

func NewService(
	integrator servicenow.ContractIntegrator,
	contractLogRepo repository.ContractLogRepository,
) Contractor {
	return &Service{
		integrator:      integrator,
		contractLogRepo: contractLogRepo,
	}
}

// GenerateContract dispara a geração na instância. Reenvios com a mesma
// chave de idempotência devolvem o contrato já registrado, sem segunda
// geração.
func (s *Service) GenerateContract(ctx context.Context, quoteSysID, requestedBy, idempotencyKey string) (*domain.Contract, error) {
	if quoteSysID == "" {
		return nil, NewContractError(ErrQuoteIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da cotação ausente")
	}

	if idempotencyKey != "" {
		entry, err := s.contractLogRepo.GetByIdempotencyKey(idempotencyKey)
		if err != nil {
			logrus.WithField("quote", quoteSysID).Error("Erro ao consultar chave de idempotência:", err)
			return nil, NewContractErrorWithQuote(ErrContractLogLookup, apiErrors.ErrDatabaseOperation, quoteSysID, "Falha ao consultar o log de contratos")
		}

		if entry != nil {
			logrus.WithFields(logrus.Fields{
				"quote":    quoteSysID,
				"contract": entry.ContractSysID,
			}).Info("Reenvio de geração de contrato atendido pelo log")

			return &domain.Contract{
				SysID:      entry.ContractSysID,
				Number:     entry.ContractNumber,
				QuoteSysID: entry.QuoteSysID,
				CreatedAt:  entry.CreatedAt,
			}, nil
		}
	}

	result, err, _ := s.generations.Do(quoteSysID, func() (any, error) {
		contract, err := s.integrator.GenerateContract(ctx, quoteSysID)
		if err != nil {
			return nil, err
		}

		s.logGeneration(contract, requestedBy, idempotencyKey)

		return contract, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.Contract), nil
}

func (s *Service) DownloadContract(ctx context.Context, contractSysID string) (*domain.ContractDocument, error) {
	if contractSysID == "" {
		return nil, NewContractError(ErrContractIDRequired, apiErrors.ErrMissingRequiredData, "Identificador do contrato ausente")
	}

	return s.integrator.DownloadContract(ctx, contractSysID)
}

// logGeneration grava a linha local do contrato gerado. O registro
// autoritativo é o da instância; falha aqui vira apenas log de erro.
func (s *Service) logGeneration(contract *domain.Contract, requestedBy, idempotencyKey string) {
	entryID, err := utils.GenerateID()
	if err != nil {
		logrus.Error("Erro ao gerar identificador do log de contrato:", err)
		return
	}

	createdAt := contract.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err = s.contractLogRepo.Insert(&domain.ContractLogEntry{
		ID:             entryID,
		ContractSysID:  contract.SysID,
		ContractNumber: contract.Number,
		QuoteSysID:     contract.QuoteSysID,
		RequestedBy:    requestedBy,
		IdempotencyKey: idempotencyKey,
		CreatedAt:      createdAt,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"quote":    contract.QuoteSysID,
			"contract": contract.SysID,
		}).Error("Erro ao gravar log de contrato:", err)
	}
}
