package domain

import "time"

// ContractReference é a referência que a cotação carrega para cada contrato
// já gerado a partir dela.
type ContractReference struct {
	SysID  string `json:"sys_id"`
	Number string `json:"number"`
}

// Contract é o registro devolvido pelo ServiceNow após a geração. Imutável
// depois de criado; o PDF é buscado sob demanda pelo download.
type Contract struct {
	SysID      string    `json:"sys_id"`
	Number     string    `json:"number"`
	QuoteSysID string    `json:"quote_sys_id"`
	State      string    `json:"state"`
	CreatedAt  time.Time `json:"created_at"`
}

// ContractDocument é o binário repassado no download, com os cabeçalhos do
// upstream preservados para que o cliente derive o nome do arquivo.
type ContractDocument struct {
	Content            []byte
	ContentType        string
	ContentDisposition string
}

// ContractLogEntry é a linha local gravada a cada geração de contrato.
type ContractLogEntry struct {
	ID             string    `json:"id"`
	ContractSysID  string    `json:"contract_sys_id"`
	ContractNumber string    `json:"contract_number"`
	QuoteSysID     string    `json:"quote_sys_id"`
	RequestedBy    string    `json:"requested_by"`
	IdempotencyKey string    `json:"idempotency_key"`
	CreatedAt      time.Time `json:"created_at"`
}
