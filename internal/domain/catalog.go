package domain

import "time"

// Entidades de catálogo são espelhos somente leitura do ServiceNow. Ofertas
// e categorias também são persistidas no banco local pelo agendador de
// sincronização, com o carimbo SyncedAt.

type ProductOffering struct {
	SysID                string     `json:"sys_id"`
	Name                 string     `json:"name"`
	Code                 string     `json:"code"`
	Status               string     `json:"status"`
	ProductSpecification string     `json:"product_specification"`
	Category             string     `json:"category"`
	Price                string     `json:"price"`
	RecurringPrice       string     `json:"recurring_price"`
	SyncedAt             *time.Time `json:"synced_at,omitempty"`
}

type ProductSpecification struct {
	SysID       string `json:"sys_id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Status      string `json:"status"`
}

type Category struct {
	SysID    string     `json:"sys_id"`
	Name     string     `json:"name"`
	Code     string     `json:"code"`
	Status   string     `json:"status"`
	Catalog  string     `json:"catalog"`
	SyncedAt *time.Time `json:"synced_at,omitempty"`
}

type Catalog struct {
	SysID  string `json:"sys_id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Status string `json:"status"`
}

type Opportunity struct {
	SysID       string     `json:"sys_id"`
	Number      string     `json:"number"`
	ShortDesc   string     `json:"short_description"`
	Account     string     `json:"account"`
	Stage       string     `json:"stage"`
	SalesCycle  string     `json:"sales_cycle_type"`
	CloseDate   *time.Time `json:"close_date"`
	Probability string     `json:"probability"`
}
