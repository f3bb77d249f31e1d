package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type quoteRow struct {
	Number  string
	State   string
	Expires *time.Time
}

func date(value string) *time.Time {
	parsed, _ := time.Parse("2006-01-02", value)
	return &parsed
}

func sampleRows() []quoteRow {
	return []quoteRow{
		{Number: "Q-1001", State: "draft", Expires: date("2026-01-10")},
		{Number: "Q-1002", State: "approved", Expires: date("2026-02-20")},
		{Number: "Q-1003", State: "draft", Expires: nil},
		{Number: "q-2001", State: "rejected", Expires: date("2026-03-05")},
	}
}

func TestApplyConjunctiveFilters(t *testing.T) {
	rows := sampleRows()

	filtered := Apply(rows,
		Substring("q-1", func(r quoteRow) string { return r.Number }),
		Equals("draft", func(r quoteRow) string { return r.State }),
	)

	assert.Len(t, filtered, 2)
	assert.Equal(t, "Q-1001", filtered[0].Number)
	assert.Equal(t, "Q-1003", filtered[1].Number)
}

func TestApplyClearFiltersRestoresFullSet(t *testing.T) {
	rows := sampleRows()

	filtered := Apply(rows, Equals("approved", func(r quoteRow) string { return r.State }))
	assert.Len(t, filtered, 1)

	// Sem predicados, a aplicação devolve o conjunto inteiro na ordem original.
	restored := Apply(rows)
	assert.Equal(t, rows, restored)
	assert.Len(t, rows, 4, "a lista original não pode ser modificada")
}

func TestSubstringIsCaseInsensitive(t *testing.T) {
	rows := sampleRows()

	filtered := Apply(rows, Substring("Q-2001", func(r quoteRow) string { return r.Number }))

	assert.Len(t, filtered, 1)
	assert.Equal(t, "q-2001", filtered[0].Number)
}

func TestDateRange(t *testing.T) {
	rows := sampleRows()

	tests := []struct {
		name     string
		from     *time.Time
		to       *time.Time
		expected []string
	}{
		{
			name:     "Sem limites aceita todos, inclusive sem data",
			expected: []string{"Q-1001", "Q-1002", "Q-1003", "q-2001"},
		},
		{
			name:     "Limite inferior inclusivo",
			from:     date("2026-02-20"),
			expected: []string{"Q-1002", "q-2001"},
		},
		{
			name:     "Limite superior inclusivo",
			to:       date("2026-02-20"),
			expected: []string{"Q-1001", "Q-1002"},
		},
		{
			name:     "Intervalo fechado",
			from:     date("2026-01-10"),
			to:       date("2026-02-20"),
			expected: []string{"Q-1001", "Q-1002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Apply(rows, DateRange(tt.from, tt.to, func(r quoteRow) *time.Time { return r.Expires }))

			numbers := make([]string, 0, len(filtered))
			for _, r := range filtered {
				numbers = append(numbers, r.Number)
			}
			assert.Equal(t, tt.expected, numbers)
		})
	}
}

func TestSortBy(t *testing.T) {
	rows := sampleRows()

	ascending := SortBy(rows, func(a, b quoteRow) int { return CompareStrings(a.Number, b.Number) }, false)
	assert.Equal(t, "Q-1001", ascending[0].Number)
	assert.Equal(t, "q-2001", ascending[3].Number)

	descending := SortBy(rows, func(a, b quoteRow) int { return CompareStrings(a.Number, b.Number) }, true)
	assert.Equal(t, "q-2001", descending[0].Number)

	// A lista original permanece na ordem de busca.
	assert.Equal(t, "Q-1001", rows[0].Number)
}

func TestSortByTimesWithNil(t *testing.T) {
	rows := sampleRows()

	sorted := SortBy(rows, func(a, b quoteRow) int { return CompareTimes(a.Expires, b.Expires) }, false)

	// Datas nulas ordenam antes de qualquer data.
	assert.Equal(t, "Q-1003", sorted[0].Number)
	assert.Equal(t, "q-2001", sorted[3].Number)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name     string
		page     int
		limit    int
		expected []int
	}{
		{
			name:     "Primeira página completa",
			page:     1,
			limit:    3,
			expected: []int{1, 2, 3},
		},
		{
			name:     "Última página parcial nunca excede o limite",
			page:     3,
			limit:    3,
			expected: []int{7},
		},
		{
			name:     "Página além do fim devolve vazio",
			page:     4,
			limit:    3,
			expected: []int{},
		},
		{
			name:     "Página inválida cai para a primeira",
			page:     0,
			limit:    3,
			expected: []int{1, 2, 3},
		},
		{
			name:     "Limite inválido devolve vazio",
			page:     1,
			limit:    0,
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pageItems := Paginate(items, tt.page, tt.limit)

			assert.Equal(t, tt.expected, pageItems)
			assert.LessOrEqual(t, len(pageItems), tt.limit)
		})
	}
}
