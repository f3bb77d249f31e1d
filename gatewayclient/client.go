// Package gatewayclient é o consumidor Go do gateway: um método por
// intenção, validação de transição no cliente e proteção contra mutações
// concorrentes da mesma cotação.
package gatewayclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultRequestTimeout = 30 * time.Second

// APIError é a falha devolvida pelo gateway, com o status HTTP e a mensagem
// que o chamador exibe diretamente.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("gateway retornou status %d", e.StatusCode)
}

// errorEnvelope é o corpo de falha do gateway.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	mu       sync.Mutex
	inflight map[string]struct{}
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		inflight: make(map[string]struct{}),
	}
}

// SetToken troca o token de sessão após um novo login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// acquireMutation reserva a cotação para uma mutação. Segunda mutação da
// mesma cotação com a primeira ainda em voo é rejeitada, não enfileirada.
func (c *Client) acquireMutation(quoteID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inflight[quoteID]; busy {
		return fmt.Errorf("mutação em andamento para a cotação %s", quoteID)
	}

	c.inflight[quoteID] = struct{}{}
	return nil
}

func (c *Client) releaseMutation(quoteID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.inflight, quoteID)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// mutationRequest monta uma requisição de mutação com chave de idempotência.
func (c *Client) mutationRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Idempotency-Key", uuid.NewString())
	return req, nil
}

// do executa a requisição e decodifica o payload de sucesso em out. A
// extração de erro segue a prioridade: mensagem estruturada do gateway,
// mensagem genérica com o status, erro de transporte.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro de comunicação com o gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta do gateway: %w", err)
	}

	if resp.StatusCode >= 400 {
		return extractError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("resposta do gateway em formato inesperado: %w", err)
	}

	return nil
}

func extractError(status int, body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return &APIError{
			StatusCode: status,
			Code:       envelope.Code,
			Message:    envelope.Message,
		}
	}

	return &APIError{StatusCode: status}
}
