package gatewayclient

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/rabie02/servicenow-gateway/internal/domain"
)

type contractResultEnvelope struct {
	Success bool             `json:"success"`
	Result  *domain.Contract `json:"result"`
}

// nonWordRuns casa as sequências de caracteres fora de palavra no número da
// cotação; cada sequência vira um único hífen no nome do arquivo.
var nonWordRuns = regexp.MustCompile(`[^\w]+`)

// DownloadOptions parametriza o download do PDF do contrato.
type DownloadOptions struct {
	ContractID  string
	QuoteNumber string
	Dir         string
}

func (c *Client) GenerateContract(ctx context.Context, quoteID string) (*domain.Contract, error) {
	if err := c.acquireMutation(quoteID); err != nil {
		return nil, err
	}
	defer c.releaseMutation(quoteID)

	req, err := c.mutationRequest(ctx, http.MethodPost, "/v1/quotes/"+quoteID+"/contracts", nil)
	if err != nil {
		return nil, err
	}

	var envelope contractResultEnvelope
	if err := c.do(req, &envelope); err != nil {
		return nil, err
	}

	return envelope.Result, nil
}

// DownloadContract baixa o PDF e grava no diretório indicado, devolvendo o
// caminho do arquivo escrito. O nome vem do Content-Disposition do gateway
// quando presente; caso contrário é derivado do número da cotação.
func (c *Client) DownloadContract(ctx context.Context, opts DownloadOptions) (string, error) {
	if opts.ContractID == "" {
		return "", fmt.Errorf("identificador do contrato não informado")
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/contracts/"+opts.ContractID+"/download", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro de comunicação com o gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return "", extractError(resp.StatusCode, body)
	}

	filename := filenameFromDisposition(resp.Header.Get("Content-Disposition"))
	if filename == "" {
		filename = DeriveFilename(opts.QuoteNumber, time.Now().UTC())
	}

	path := filepath.Join(opts.Dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("erro ao criar arquivo do contrato: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("erro ao gravar arquivo do contrato: %w", err)
	}

	return path, nil
}

// DeriveFilename monta o nome padrão do PDF: número da cotação saneado mais
// o carimbo UTC do momento do download.
func DeriveFilename(quoteNumber string, now time.Time) string {
	sanitized := nonWordRuns.ReplaceAllString(quoteNumber, "-")
	if sanitized == "" {
		sanitized = "contrato"
	}

	return fmt.Sprintf("%s_%s.pdf", sanitized, now.Format("20060102T150405Z"))
}

// filenameFromDisposition extrai o nome do arquivo do Content-Disposition,
// quando o cabeçalho veio estruturado.
func filenameFromDisposition(disposition string) string {
	if disposition == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}

	return params["filename"]
}
