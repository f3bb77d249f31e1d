// Package listview implementa o refinamento de listas que o dashboard aplica
// sobre o snapshot retornado pelo gateway: filtros conjuntivos, ordenação por
// uma chave e paginação de tamanho fixo. O refinamento nunca toca o conjunto
// original; cada aplicação parte da lista buscada.
package listview

import (
	"sort"
	"strings"
	"time"
)

// Predicate decide se um item permanece na lista filtrada.
type Predicate[T any] func(item T) bool

// Substring filtra por substring sem diferenciar maiúsculas. Termo vazio
// aceita qualquer item.
func Substring[T any](term string, field func(T) string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(item T) bool {
		if term == "" {
			return true
		}
		return strings.Contains(strings.ToLower(field(item)), term)
	}
}

// Equals filtra por igualdade exata. Valor vazio aceita qualquer item.
func Equals[T any](value string, field func(T) string) Predicate[T] {
	return func(item T) bool {
		if value == "" {
			return true
		}
		return field(item) == value
	}
}

// DateRange filtra por intervalo de datas inclusivo nas duas pontas. Limites
// nulos não restringem; item sem data só passa quando não há limites.
func DateRange[T any](from, to *time.Time, field func(T) *time.Time) Predicate[T] {
	return func(item T) bool {
		if from == nil && to == nil {
			return true
		}

		date := field(item)
		if date == nil {
			return false
		}

		if from != nil && date.Before(*from) {
			return false
		}
		if to != nil && date.After(*to) {
			return false
		}
		return true
	}
}

// Apply retorna os itens que satisfazem todos os predicados, preservando a
// ordem de entrada. Sem predicados, devolve uma cópia do conjunto inteiro.
func Apply[T any](items []T, predicates ...Predicate[T]) []T {
	filtered := make([]T, 0, len(items))

	for _, item := range items {
		keep := true
		for _, predicate := range predicates {
			if !predicate(item) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// SortBy ordena por uma única chave usando o comparador de três vias. A
// ordenação é estável e não modifica a lista de entrada.
func SortBy[T any](items []T, compare func(a, b T) int, descending bool) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		result := compare(sorted[i], sorted[j])
		if descending {
			return result > 0
		}
		return result < 0
	})

	return sorted
}

// CompareStrings é o comparador de três vias para chaves textuais, sem
// diferenciar maiúsculas.
func CompareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// CompareTimes é o comparador de três vias para datas; nulos ordenam antes
// de qualquer data.
func CompareTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	}
	return 0
}

// Paginate devolve a página pedida com no máximo limit itens. Página além do
// fim devolve fatia vazia, nunca erro. Páginas começam em 1.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return []T{}
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
