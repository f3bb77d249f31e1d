package gatewayclient

import (
	"sync"

	"github.com/rabie02/servicenow-gateway/internal/domain"
)

// QuoteStore é o estado em memória das cotações no cliente: a lista buscada,
// o total reportado pelo gateway e o detalhe aberto. Toda mutação substitui o
// estado local pelo eco do servidor; nada aqui é autoritativo.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes []*domain.Quote
	total  int
	detail *domain.Quote
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{}
}

// SetList substitui o conjunto local pelo snapshot recém-buscado.
func (s *QuoteStore) SetList(list *domain.QuoteList) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list == nil {
		s.quotes = nil
		s.total = 0
		return
	}

	s.quotes = make([]*domain.Quote, len(list.Data))
	copy(s.quotes, list.Data)
	s.total = list.Total
}

func (s *QuoteStore) SetDetail(quote *domain.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = quote
}

// List devolve uma cópia do conjunto atual.
func (s *QuoteStore) List() []*domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quotes := make([]*domain.Quote, len(s.quotes))
	copy(quotes, s.quotes)
	return quotes
}

func (s *QuoteStore) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

func (s *QuoteStore) Detail() *domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detail
}

// ApplyCreate insere a cotação criada no topo da lista e incrementa o total.
func (s *QuoteStore) ApplyCreate(created *domain.Quote) {
	if created == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.quotes = append([]*domain.Quote{created}, s.quotes...)
	s.total++
}

// ApplyUpdate substitui a entrada da lista pelo eco do servidor e, quando o
// detalhe aberto é a mesma cotação, substitui o detalhe também.
func (s *QuoteStore) ApplyUpdate(updated *domain.Quote) {
	if updated == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, quote := range s.quotes {
		if quote.SysID == updated.SysID {
			s.quotes[i] = updated
			break
		}
	}

	if s.detail != nil && s.detail.SysID == updated.SysID {
		s.detail = updated
	}
}

// ApplyDelete remove exatamente a entrada com o sys_id dado e limpa o
// detalhe apenas se ele segurava a mesma cotação.
func (s *QuoteStore) ApplyDelete(quoteID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, quote := range s.quotes {
		if quote.SysID == quoteID {
			s.quotes = append(s.quotes[:i], s.quotes[i+1:]...)
			if s.total > 0 {
				s.total--
			}
			break
		}
	}

	if s.detail != nil && s.detail.SysID == quoteID {
		s.detail = nil
	}
}
