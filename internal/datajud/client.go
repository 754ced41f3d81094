package datajud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"jurisflow/internal/config"
	"jurisflow/internal/domain"
	"jurisflow/internal/llm"
)

const serviceName = "datajud"

// Free-text keywords are matched against these source fields.
var keywordFields = []string{"movimentos.nome", "classe.nome", "assuntos.nome"}

// Client implements port.PrecedentSearcher against the DataJud public API.
type Client struct {
	baseURL  string
	apiKey   string
	username string
	password string
	client   *http.Client
}

// NewClient creates a DataJud client from config.
func NewClient(cfg *config.DataJudConfig) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		username: cfg.Username,
		password: cfg.Password,
		client:   &http.Client{Timeout: cfg.Timeout()},
	}
}

// BuildQuery returns the search body for q. Every present filter adds one
// conjunctive must clause; results are ordered newest first.
func BuildQuery(q domain.PrecedentQuery) map[string]interface{} {
	must := []map[string]interface{}{}

	if q.ClassCode != nil {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"classe.codigo": q.ClassCode.Query()},
		})
	}
	if q.JudgingBodyCode != nil {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"orgaoJulgador.codigo": q.JudgingBodyCode.Query()},
		})
	}
	if q.Keywords != nil {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  *q.Keywords,
				"fields": keywordFields,
			},
		})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"must": must},
		},
		"size": q.Size,
		"sort": []map[string]interface{}{
			{"@timestamp": map[string]interface{}{"order": "desc"}},
		},
	}
}

// Endpoint returns the search URL for a court index.
func (c *Client) Endpoint(court string) string {
	return fmt.Sprintf("%s/api_publica_%s/_search", c.baseURL, court)
}

func (c *Client) Search(ctx context.Context, q domain.PrecedentQuery) (*domain.PrecedentResult, error) {
	bodyBytes, err := json.Marshal(BuildQuery(q))
	if err != nil {
		return nil, fmt.Errorf("marshaling query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(q.Court), bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	switch {
	case c.apiKey != "":
		req.Header.Set("Authorization", "APIKey "+c.apiKey)
	case c.username != "":
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, fmt.Errorf("calling datajud API: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewUpstreamStatusError(serviceName, resp.StatusCode, string(respBody))
	}

	return ParseResponse(respBody, q.Court)
}

// searchResponse models the subset of the Elasticsearch response we read.
type searchResponse struct {
	Hits struct {
		Total *struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			Index  string          `json:"_index"`
			ID     string          `json:"_id"`
			Score  *float64        `json:"_score"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// processSource is the subset of a DataJud process record shown in summaries.
type processSource struct {
	CaseNumber string `json:"numeroProcesso"`
	Class      struct {
		Code domain.Code `json:"codigo"`
		Name string      `json:"nome"`
	} `json:"classe"`
	JudgingBody struct {
		Code domain.Code `json:"codigo"`
		Name string      `json:"nome"`
	} `json:"orgaoJulgador"`
	FiledAt   string `json:"dataAjuizamento"`
	Timestamp string `json:"@timestamp"`
}

// ParseResponse converts a raw search response. A missing hits.total yields zero.
func ParseResponse(body []byte, court string) (*domain.PrecedentResult, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewUpstreamError(serviceName,
			fmt.Errorf("unmarshaling response: %w (raw: %s)", err, llm.Truncate(string(body), 500)))
	}

	result := &domain.PrecedentResult{
		Court:      court,
		Precedents: make([]domain.Precedent, 0, len(resp.Hits.Hits)),
	}
	if resp.Hits.Total != nil {
		result.Total = resp.Hits.Total.Value
	}

	for _, hit := range resp.Hits.Hits {
		p := domain.Precedent{
			ID:     hit.ID,
			Index:  hit.Index,
			Score:  hit.Score,
			Source: hit.Source,
		}
		var src processSource
		// Summary fields are best-effort; the raw source is always kept.
		if len(hit.Source) > 0 && json.Unmarshal(hit.Source, &src) == nil {
			p.CaseNumber = src.CaseNumber
			p.ClassCode = string(src.Class.Code)
			p.ClassName = src.Class.Name
			p.JudgingBodyCode = string(src.JudgingBody.Code)
			p.JudgingBody = src.JudgingBody.Name
			p.FiledAt = src.FiledAt
			p.UpdatedAt = src.Timestamp
		}
		result.Precedents = append(result.Precedents, p)
	}

	return result, nil
}
