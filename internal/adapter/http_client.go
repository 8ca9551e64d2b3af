package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/models"
)

// HTTPClientConfig carries the connection settings for the REST
// client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAccountsClient struct {
	client *resty.Client
	logger *logger.Logger
}

func NewHTTPAccountsClient(cfg HTTPClientConfig, log *logger.Logger) AccountsClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAccountsClient{client: cli, logger: log}
}

func (h *httpAccountsClient) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountsClient) ServiceInfo(ctx context.Context) (models.ServiceInfoResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return models.ServiceInfoResponse{}, fmt.Errorf("service info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServiceInfoResponse{}, err
	}

	var info models.ServiceInfoResponse
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.ServiceInfoResponse{}, fmt.Errorf("service info decode: %w", err)
	}

	return info, nil
}

func (h *httpAccountsClient) Create(ctx context.Context, account models.Account) (models.Account, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(account).
		Post("/accounts")
	if err != nil {
		return models.Account{}, fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	var created models.Account
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Account{}, fmt.Errorf("create account decode: %w", err)
	}

	return created, nil
}

func (h *httpAccountsClient) Get(ctx context.Context, id int64) (models.Account, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/accounts/%d", id))
	if err != nil {
		return models.Account{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	var found models.Account
	if err = json.Unmarshal(resp.Body(), &found); err != nil {
		return models.Account{}, fmt.Errorf("get account decode: %w", err)
	}

	return found, nil
}

func (h *httpAccountsClient) List(ctx context.Context, filter models.AccountFilter) ([]models.Account, error) {
	req := h.client.R().SetContext(ctx)
	if filter.Name != "" {
		req.SetQueryParam("name", filter.Name)
	}
	if filter.Email != "" {
		req.SetQueryParam("email", filter.Email)
	}

	resp, err := req.Get("/accounts")
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var accounts []models.Account
	if err = json.Unmarshal(resp.Body(), &accounts); err != nil {
		return nil, fmt.Errorf("list accounts decode: %w", err)
	}

	return accounts, nil
}

func (h *httpAccountsClient) Update(ctx context.Context, account models.Account) (models.Account, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(account).
		Put(fmt.Sprintf("/accounts/%d", account.ID))
	if err != nil {
		return models.Account{}, fmt.Errorf("update account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	var updated models.Account
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Account{}, fmt.Errorf("update account decode: %w", err)
	}

	return updated, nil
}

func (h *httpAccountsClient) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/accounts/%d", id))
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}
