package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ridemate/internal/shared/config"
	"ridemate/internal/shared/logger"
)

// Строки-заглушки показываются в форме вместо ошибки
const (
	fallbackNotConfigured = "AI service is not configured. Please add your own description."
	fallbackUnavailable   = "Could not generate AI description. Please write your own."
)

// Describer вызывает generateContent REST API.
// Любой сбой — транспортный, декодирования, пустой ответ — дает
// заглушку; form-слой никогда не видит ошибку внешнего сервиса.
type Describer struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	log     *logger.Logger
}

// NewDescriber создает новый клиент генерации описаний
func NewDescriber(cfg config.DescriberConfig, log *logger.Logger) *Describer {
	return &Describer{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Describe генерирует короткое дружелюбное описание поездки
func (d *Describer) Describe(ctx context.Context, origin, destination string) string {
	if d.apiKey == "" {
		return fallbackNotConfigured
	}

	prompt := fmt.Sprintf(
		`Generate a friendly and short carpool ride description for a trip from %q to %q in Pune. `+
			`Mention it's a great way to commute for MIT-WPU students. Keep it under 200 characters.`,
		origin, destination,
	)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return fallbackUnavailable
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", d.baseURL, d.model, d.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fallbackUnavailable
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logFailure(err)
		return fallbackUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		d.logFailure(fmt.Errorf("generate description: %s", resp.Status))
		return fallbackUnavailable
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		d.logFailure(err)
		return fallbackUnavailable
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return fallbackUnavailable
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return fallbackUnavailable
	}
	return text
}

func (d *Describer) logFailure(err error) {
	d.log.Error(logger.Entry{
		Action:  "generate_description_failed",
		Message: err.Error(),
		Error:   &logger.ErrObj{Msg: err.Error()},
	})
}
