package servicenowclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenResponse é a resposta de /oauth_token.do da instância.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// RefreshAccessToken troca o refresh token por um novo token de acesso
// usando o grant refresh_token do OAuth da instância.
func RefreshAccessToken(instanceURL, clientID, clientSecret, refreshToken string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)
	form.Set("refresh_token", refreshToken)

	endpoint := fmt.Sprintf("%s/oauth_token.do", instanceURL)

	resp, err := http.Post(endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar o endpoint de token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("renovação de token falhou com status %s: %s", resp.Status, string(body))
	}

	var tokenResponse TokenResponse
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de token: %w", err)
	}

	if tokenResponse.AccessToken == "" {
		return nil, fmt.Errorf("resposta de token sem access_token")
	}

	return &tokenResponse, nil
}

// CalculateTokenExpiration desconta uma margem do expires_in para renovar
// antes do token realmente vencer.
func CalculateTokenExpiration(expiresIn int) time.Time {
	margin := expiresIn / 10
	if margin < 30 {
		margin = 30
	}
	return time.Now().Add(time.Duration(expiresIn-margin) * time.Second)
}
