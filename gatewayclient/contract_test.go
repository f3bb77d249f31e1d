package gatewayclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFilename(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 5, 0, time.UTC)

	tests := []struct {
		name        string
		quoteNumber string
		expected    string
	}{
		{
			name:        "Número simples",
			quoteNumber: "Q-1001",
			expected:    "Q-1001_20260310T143005Z.pdf",
		},
		{
			name:        "Caracteres fora de palavra viram um hífen por sequência",
			quoteNumber: "Q-123/ABC",
			expected:    "Q-123-ABC_20260310T143005Z.pdf",
		},
		{
			name:        "Espaços e pontuação consecutivos colapsam",
			quoteNumber: "Q 123 .. x",
			expected:    "Q-123-x_20260310T143005Z.pdf",
		},
		{
			name:        "Número vazio cai no nome padrão",
			quoteNumber: "",
			expected:    "contrato_20260310T143005Z.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveFilename(tt.quoteNumber, now))
		})
	}
}

func TestDownloadContractUsesDispositionFilename(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/contracts/ct001/download", r.URL.Path)

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="CNTR-77.pdf"`)
		w.Write([]byte("%PDF-1.4 conteudo"))
	}))
	defer server.Close()

	client := New(server.URL, "token-abc")
	dir := t.TempDir()

	path, err := client.DownloadContract(context.Background(), DownloadOptions{
		ContractID:  "ct001",
		QuoteNumber: "Q-1001",
		Dir:         dir,
	})

	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "CNTR-77.pdf"), path, "o nome do Content-Disposition prevalece")

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 conteudo", string(content))
}

func TestDownloadContractDerivesFilenameWithoutDisposition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	client := New(server.URL, "token-abc")
	dir := t.TempDir()

	path, err := client.DownloadContract(context.Background(), DownloadOptions{
		ContractID:  "ct001",
		QuoteNumber: "Q-123/ABC",
		Dir:         dir,
	})

	assert.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	filename := filepath.Base(path)
	assert.Regexp(t, `^Q-123-ABC_\d{8}T\d{6}Z\.pdf$`, filename)
}

func TestDownloadContractPropagatesGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"code":"SRV_003","message":"Contrato não encontrado"}`))
	}))
	defer server.Close()

	client := New(server.URL, "token-abc")

	_, err := client.DownloadContract(context.Background(), DownloadOptions{
		ContractID: "ct404",
		Dir:        t.TempDir(),
	})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Contrato não encontrado", apiErr.Message)
}

func TestGenerateContract(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/quotes/abc123/contracts", r.URL.Path)
		gotKey = r.Header.Get("Idempotency-Key")

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"result":{"sys_id":"ct001","number":"CNTR-77","quote_sys_id":"abc123"}}`))
	}))
	defer server.Close()

	client := New(server.URL, "token-abc")

	contract, err := client.GenerateContract(context.Background(), "abc123")

	assert.NoError(t, err)
	assert.NotEmpty(t, gotKey)
	assert.Equal(t, "ct001", contract.SysID)
	assert.Equal(t, "CNTR-77", contract.Number)
}
