package gatewayclient

import (
	"time"

	"github.com/rabie02/servicenow-gateway/internal/domain"
	"github.com/rabie02/servicenow-gateway/pkg/listview"
	"github.com/rabie02/servicenow-gateway/pkg/utils"
)

// Filtros prontos para refinar o snapshot local de cotações. Os filtros são
// conjuntivos e nunca modificam o conjunto buscado; limpar os filtros é
// voltar a ler o snapshot inteiro do QuoteStore.

// FilterByNumber filtra por substring do número da cotação, sem diferenciar
// maiúsculas.
func FilterByNumber(term string) listview.Predicate[*domain.Quote] {
	return listview.Substring(term, func(q *domain.Quote) string { return q.Number })
}

// FilterByAccount filtra por substring do nome da conta.
func FilterByAccount(term string) listview.Predicate[*domain.Quote] {
	return listview.Substring(term, func(q *domain.Quote) string { return q.Account })
}

// FilterByState filtra por igualdade exata de estado. Estado vazio aceita
// qualquer cotação.
func FilterByState(state string) listview.Predicate[*domain.Quote] {
	return listview.Equals(state, func(q *domain.Quote) string { return string(q.State) })
}

// FilterByExpiration filtra por intervalo inclusivo de data de expiração.
// As datas chegam no formato 2006-01-02; string vazia não restringe a ponta.
func FilterByExpiration(from, to string) (listview.Predicate[*domain.Quote], error) {
	fromDate, err := utils.ParseDate(from)
	if err != nil {
		return nil, err
	}

	toDate, err := utils.ParseDate(to)
	if err != nil {
		return nil, err
	}

	return listview.DateRange(fromDate, toDate, func(q *domain.Quote) *time.Time { return q.ExpirationDate }), nil
}

// SortQuotesByNumber ordena o conjunto filtrado pelo número da cotação.
func SortQuotesByNumber(quotes []*domain.Quote, descending bool) []*domain.Quote {
	return listview.SortBy(quotes, func(a, b *domain.Quote) int {
		return listview.CompareStrings(a.Number, b.Number)
	}, descending)
}

// SortQuotesByExpiration ordena pelo vencimento; cotações sem data vêm
// primeiro.
func SortQuotesByExpiration(quotes []*domain.Quote, descending bool) []*domain.Quote {
	return listview.SortBy(quotes, func(a, b *domain.Quote) int {
		return listview.CompareTimes(a.ExpirationDate, b.ExpirationDate)
	}, descending)
}

// PageQuotes devolve a página pedida do conjunto refinado.
func PageQuotes(quotes []*domain.Quote, page, limit int) []*domain.Quote {
	return listview.Paginate(quotes, page, limit)
}
