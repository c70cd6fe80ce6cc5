package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/backend-mobile/internal/config"
	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/internal/utils"
	"github.com/MKhiriev/backend-mobile/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// envelope is the response shape shared by every JSON endpoint.
type envelope[T any] struct {
	Code    int    `json:"code"`
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// NewHTTPServerAdapter builds a resty-backed [ServerAdapter] for the base URL
// in adapterCfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	h := &httpServerAdapter{client: client, logger: logger}
	h.SetToken(adapterCfg.Token)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Registrasi(ctx context.Context, req models.RegistrasiRequest) error {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/member/registrasi")
	if err != nil {
		return fmt.Errorf("registrasi request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/member/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}

	result, err := decodeData[models.LoginResult](resp)
	if err != nil {
		return models.LoginResult{}, err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Int64("member_id", result.User.ID).Msg("logged in")
	return result, nil
}

func (h *httpServerAdapter) CreateProduk(ctx context.Context, req models.CreateProdukRequest) (models.Produk, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/produk")
	if err != nil {
		return models.Produk{}, fmt.Errorf("create produk request: %w", err)
	}

	return decodeData[models.Produk](resp)
}

func (h *httpServerAdapter) ListProduk(ctx context.Context) ([]models.Produk, error) {
	resp, err := h.request(ctx).Get("/produk")
	if err != nil {
		return nil, fmt.Errorf("list produk request: %w", err)
	}

	return decodeData[[]models.Produk](resp)
}

func (h *httpServerAdapter) GetProduk(ctx context.Context, id int64) (models.Produk, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/produk/{id}")
	if err != nil {
		return models.Produk{}, fmt.Errorf("get produk request: %w", err)
	}

	return decodeData[models.Produk](resp)
}

func (h *httpServerAdapter) UpdateProduk(ctx context.Context, id int64, req models.UpdateProdukRequest) (models.Produk, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		Put("/produk/{id}/update")
	if err != nil {
		return models.Produk{}, fmt.Errorf("update produk request: %w", err)
	}

	return decodeData[models.Produk](resp)
}

func (h *httpServerAdapter) DeleteProduk(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/produk/{id}")
	if err != nil {
		return fmt.Errorf("delete produk request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
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

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

// request starts a request carrying the bearer token, if one is set.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decodeData maps error statuses and unwraps the envelope of a 2xx response.
func decodeData[T any](resp *resty.Response) (T, error) {
	var zero T
	if err := mapHTTPError(resp); err != nil {
		return zero, err
	}

	var env envelope[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if !env.Status {
		return zero, fmt.Errorf("%w: %s", ErrUnexpectedResponse, env.Message)
	}

	return env.Data, nil
}
