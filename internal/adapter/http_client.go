package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/internal/utils"
	"github.com/MKhiriev/go-humans/models"
)

type httpHumansAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPHumansAPI constructs an HTTP/REST implementation of [HumansAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPHumansAPI(adapterCfg config.ClientAdapter, logger *logger.Logger) (HumansAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpHumansAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [HumansAPI]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpHumansAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [HumansAPI].
func (h *httpHumansAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [HumansAPI]. Credentials are sent as an HTML form, the
// same way browser-based OAuth2 password flows submit them.
func (h *httpHumansAPI) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": credentials.Username,
			"password": credentials.Password,
		}).
		Post("/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	var tokenResp models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return models.Token{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(tokenResp.Token)
	h.logger.Debug().Str("username", credentials.Username).Msg("logged in")

	return models.Token{SignedString: tokenResp.Token, Username: credentials.Username}, nil
}

// Greeting implements [HumansAPI].
func (h *httpHumansAPI) Greeting(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/")
	if err != nil {
		return "", fmt.Errorf("greeting request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var greeting string
	if err = json.Unmarshal(resp.Body(), &greeting); err != nil {
		return "", fmt.Errorf("decode greeting response: %w", err)
	}
	return greeting, nil
}

// ListHumans implements [HumansAPI].
func (h *httpHumansAPI) ListHumans(ctx context.Context) ([]models.Human, error) {
	resp, err := h.authedRequest(ctx).Get("/humans")
	if err != nil {
		return nil, fmt.Errorf("list humans request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	humans := []models.Human{}
	if err = json.Unmarshal(resp.Body(), &humans); err != nil {
		return nil, fmt.Errorf("decode list humans response: %w", err)
	}
	if humans == nil {
		humans = []models.Human{}
	}
	return humans, nil
}

// GetHuman implements [HumansAPI].
func (h *httpHumansAPI) GetHuman(ctx context.Context, id int64) (models.Human, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/humans/{id}")
	if err != nil {
		return models.Human{}, fmt.Errorf("get human request: %w", err)
	}

	return decodeHuman(resp)
}

// CreateHuman implements [HumansAPI].
func (h *httpHumansAPI) CreateHuman(ctx context.Context, input models.HumanInput) (models.Human, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/humans")
	if err != nil {
		return models.Human{}, fmt.Errorf("create human request: %w", err)
	}

	return decodeHuman(resp)
}

// UpdateHuman implements [HumansAPI].
func (h *httpHumansAPI) UpdateHuman(ctx context.Context, id int64, input models.HumanInput) (models.Human, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(input).
		Put("/humans/{id}")
	if err != nil {
		return models.Human{}, fmt.Errorf("update human request: %w", err)
	}

	return decodeHuman(resp)
}

// DeleteHuman implements [HumansAPI].
func (h *httpHumansAPI) DeleteHuman(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/humans/{id}")
	if err != nil {
		return fmt.Errorf("delete human request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [HumansAPI]. The version endpoint answers in plain text.
func (h *httpHumansAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpHumansAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func decodeHuman(resp *resty.Response) (models.Human, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Human{}, err
	}

	var human models.Human
	if err := json.Unmarshal(resp.Body(), &human); err != nil {
		return models.Human{}, fmt.Errorf("decode human response: %w", err)
	}
	return human, nil
}
