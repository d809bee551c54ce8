package ibge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"
)

const DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1"

// Client consulta a API de localidades do IBGE. O proxy evita CORS no
// front e mantém a origem dos dados num lugar só.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Cities devolve os municípios de uma UF, ordenados por nome.
func (c *Client) Cities(ctx context.Context, uf string) ([]string, error) {
	url := fmt.Sprintf("%s/localidades/estados/%s/municipios", c.baseURL, uf)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request IBGE: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("IBGE indisponível (status %d)", resp.StatusCode)
	}

	var municipios []municipio
	if err := json.NewDecoder(resp.Body).Decode(&municipios); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do IBGE: %w", err)
	}

	cities := make([]string, 0, len(municipios))
	for _, m := range municipios {
		cities = append(cities, m.Nome)
	}
	sort.Strings(cities)
	return cities, nil
}
