package gatewayclient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rabie02/servicenow-gateway/internal/domain"
)

func seedStore() *QuoteStore {
	store := NewQuoteStore()
	store.SetList(&domain.QuoteList{
		Data: []*domain.Quote{
			{SysID: "q1", Number: "Q-1001", State: domain.QuoteStateDraft},
			{SysID: "q2", Number: "Q-1002", State: domain.QuoteStateApproved},
			{SysID: "q3", Number: "Q-1003", State: domain.QuoteStateDraft},
		},
		Total: 3,
	})
	return store
}

func TestQuoteStoreApplyUpdate(t *testing.T) {
	store := seedStore()
	store.SetDetail(&domain.Quote{SysID: "q1", Number: "Q-1001", State: domain.QuoteStateDraft})

	echo := &domain.Quote{SysID: "q1", Number: "Q-1001", State: domain.QuoteStateApproved}
	store.ApplyUpdate(echo)

	list := store.List()
	assert.Len(t, list, 3)
	assert.Equal(t, domain.QuoteStateApproved, list[0].State, "a entrada da lista é o eco do servidor")
	assert.Equal(t, domain.QuoteStateApproved, store.Detail().State, "o detalhe aberto acompanha a mutação")

	// Atualização de outra cotação não toca o detalhe.
	store.ApplyUpdate(&domain.Quote{SysID: "q2", Number: "Q-1002", State: domain.QuoteStateExpired})
	assert.Equal(t, "q1", store.Detail().SysID)
}

func TestQuoteStoreApplyDelete(t *testing.T) {
	store := seedStore()
	store.SetDetail(&domain.Quote{SysID: "q2", Number: "Q-1002"})

	store.ApplyDelete("q2")

	list := store.List()
	assert.Len(t, list, 2, "exatamente uma entrada sai da lista")
	assert.Equal(t, "q1", list[0].SysID)
	assert.Equal(t, "q3", list[1].SysID)
	assert.Equal(t, 2, store.Total())
	assert.Nil(t, store.Detail(), "o detalhe da cotação excluída é limpo")
}

func TestQuoteStoreApplyDeletePreservesOtherDetail(t *testing.T) {
	store := seedStore()
	store.SetDetail(&domain.Quote{SysID: "q1", Number: "Q-1001"})

	store.ApplyDelete("q3")

	assert.Len(t, store.List(), 2)
	assert.NotNil(t, store.Detail(), "o detalhe de outra cotação permanece aberto")
	assert.Equal(t, "q1", store.Detail().SysID)
}

func TestQuoteStoreApplyCreate(t *testing.T) {
	store := seedStore()

	store.ApplyCreate(&domain.Quote{SysID: "q4", Number: "Q-1004", State: domain.QuoteStateDraft})

	list := store.List()
	assert.Len(t, list, 4)
	assert.Equal(t, "q4", list[0].SysID, "a cotação criada entra no topo")
	assert.Equal(t, 4, store.Total())
}

func TestQuoteStoreSetListReplacesSnapshot(t *testing.T) {
	store := seedStore()

	store.SetList(&domain.QuoteList{
		Data:  []*domain.Quote{{SysID: "q9", Number: "Q-2001"}},
		Total: 1,
	})

	list := store.List()
	assert.Len(t, list, 1)
	assert.Equal(t, "q9", list[0].SysID)
	assert.Equal(t, 1, store.Total())

	store.SetList(nil)
	assert.Empty(t, store.List())
	assert.Zero(t, store.Total())
}

func TestQuoteStoreListReturnsCopy(t *testing.T) {
	store := seedStore()

	list := store.List()
	list[0] = &domain.Quote{SysID: "intruso"}

	assert.Equal(t, "q1", store.List()[0].SysID)
}
