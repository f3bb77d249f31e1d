package domain

// Registros crus da Table API, com sysparm_display_value=true todos os
// campos de referência chegam como o display value em texto.

type QuoteRecord struct {
	SysID                 string `json:"sys_id"`
	Number                string `json:"number"`
	State                 string `json:"state"`
	Version               string `json:"version"`
	Currency              string `json:"currency"`
	Account               string `json:"account"`
	Total                 string `json:"total"`
	SubscriptionStartDate string `json:"subscription_start_date"`
	SubscriptionEndDate   string `json:"subscription_end_date"`
	ExpirationDate        string `json:"expiration_date"`
}

type QuoteLineRecord struct {
	SysID           string `json:"sys_id"`
	Quote           string `json:"quote"`
	ProductOffering string `json:"product_offering"`
	Quantity        string `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	TermMonth       string `json:"term_month"`
	State           string `json:"state"`
}

type ContractRecord struct {
	SysID     string `json:"sys_id"`
	Number    string `json:"number"`
	Quote     string `json:"quote"`
	State     string `json:"state"`
	CreatedOn string `json:"sys_created_on"`
}

type ProductOfferingRecord struct {
	SysID                string `json:"sys_id"`
	Name                 string `json:"name"`
	Code                 string `json:"code"`
	Status               string `json:"status"`
	ProductSpecification string `json:"product_specification"`
	Category             string `json:"category"`
	Price                string `json:"price"`
	RecurringPrice       string `json:"recurring_price"`
}

type ProductSpecificationRecord struct {
	SysID       string `json:"sys_id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Status      string `json:"status"`
}

type CategoryRecord struct {
	SysID   string `json:"sys_id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Status  string `json:"status"`
	Catalog string `json:"catalog"`
}

type CatalogRecord struct {
	SysID  string `json:"sys_id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Status string `json:"status"`
}

type OpportunityRecord struct {
	SysID            string `json:"sys_id"`
	Number           string `json:"number"`
	ShortDescription string `json:"short_description"`
	Account          string `json:"account"`
	Stage            string `json:"stage"`
	SalesCycleType   string `json:"sales_cycle_type"`
	CloseDate        string `json:"close_date"`
	Probability      string `json:"probability"`
}

// Attachment é o binário devolvido pela Attachment API com os cabeçalhos
// que o cliente precisa repassar.
type Attachment struct {
	Content            []byte
	ContentType        string
	ContentDisposition string
}
