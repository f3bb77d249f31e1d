package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// successData é o envelope de sucesso das consultas: o dashboard espera o
// payload sob "data".
type successData struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// successResult é o envelope de sucesso das mutações: o payload vem sob
// "result", ecoando o que a instância devolveu.
type successResult struct {
	Success bool `json:"success"`
	Result  any  `json:"result"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(successData{Success: true, Data: data})
}

func writeResult(w http.ResponseWriter, status int, result any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(successResult{Success: true, Result: result})
}
