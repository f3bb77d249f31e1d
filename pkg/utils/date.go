package utils

import "time"

// ParseDate converte uma data no formato 2006-01-02 vinda da query string.
// String vazia devolve nil, que os filtros de data tratam como sem limite.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
