package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type httpBackendAdapter struct {
	client *utils.HTTPClient
	signer *utils.Signer

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. A zero timeout leaves calls
// unbounded.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpBackendAdapter{
		client: client,
		signer: utils.NewSigner(appCfg.HashKey),
		logger: logger,
	}, nil
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

type decodeRequest struct {
	URI string `json:"uri"`
}

type createAccountRequest struct {
	Name      string           `json:"name"`
	Secret    string           `json:"secret"`
	Digits    int              `json:"digits"`
	Step      int              `json:"step"`
	Algorithm models.Algorithm `json:"algorithm"`
}

type editAccountRequest struct {
	Name      string           `json:"name"`
	Digits    int              `json:"digits"`
	Step      int              `json:"step"`
	Algorithm models.Algorithm `json:"algorithm"`
}

type syncCredentialRequest struct {
	Host     string `json:"host"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// DecodeOTPURI implements [BackendAdapter]. It POSTs the URI to
// POST /api/otp/decode. The body must be a JSON object; an object carrying an
// "Error" key is a rejection.
func (h *httpBackendAdapter) DecodeOTPURI(ctx context.Context, uri string) (models.DraftAccount, error) {
	req, err := h.jsonRequest(ctx, decodeRequest{URI: uri})
	if err != nil {
		return models.DraftAccount{}, err
	}

	resp, err := req.Post("/api/otp/decode")
	if err != nil {
		return models.DraftAccount{}, fmt.Errorf("decode uri request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DraftAccount{}, err
	}

	var draft models.DraftAccount
	if err = decodeRejectableObject(resp.Body(), &draft, ErrDecodeRejected); err != nil {
		return models.DraftAccount{}, err
	}

	h.logger.Debug().
		Str("func", "httpBackendAdapter.DecodeOTPURI").
		Str("secret_fp", utils.Fingerprint(draft.Secret)).
		Str("algorithm", draft.Algorithm.Label()).
		Msg("uri decoded")

	return draft, nil
}

// CreateAccount implements [BackendAdapter]. It POSTs the draft to
// POST /api/accounts and returns the JSON string the backend answers with.
func (h *httpBackendAdapter) CreateAccount(ctx context.Context, draft models.DraftAccount) (string, error) {
	body := createAccountRequest{
		Name:      draft.Name,
		Secret:    draft.Secret,
		Digits:    draft.OTPDigits,
		Step:      draft.TOTPStep,
		Algorithm: draft.Algorithm,
	}

	req, err := h.jsonRequest(ctx, body)
	if err != nil {
		return "", err
	}

	resp, err := req.Post("/api/accounts")
	if err != nil {
		return "", fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	answer, ok := decodeJSONString(resp.Body())
	if !ok {
		return "", fmt.Errorf("%w: create account response is not a string", ErrMalformedResponse)
	}
	return answer, nil
}

// GetAccount implements [BackendAdapter] via GET /api/accounts/{id}.
func (h *httpBackendAdapter) GetAccount(ctx context.Context, accountID int64) (models.EditableAccount, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(accountID, 10)).
		Get("/api/accounts/{id}")
	if err != nil {
		return models.EditableAccount{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EditableAccount{}, err
	}

	var account models.EditableAccount
	if err = decodeRejectableObject(resp.Body(), &account, ErrAccountRejected); err != nil {
		return models.EditableAccount{}, err
	}
	return account, nil
}

// EditAccount implements [BackendAdapter] via PUT /api/accounts/{id}. The
// secret is not part of the request.
func (h *httpBackendAdapter) EditAccount(ctx context.Context, account models.EditableAccount) (string, error) {
	body := editAccountRequest{
		Name:      account.Name,
		Digits:    account.OTPDigits,
		Step:      account.TOTPStep,
		Algorithm: account.Algorithm,
	}

	req, err := h.jsonRequest(ctx, body)
	if err != nil {
		return "", err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(account.ID, 10)).
		Put("/api/accounts/{id}")
	if err != nil {
		return "", fmt.Errorf("edit account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	answer, ok := decodeJSONString(resp.Body())
	if !ok {
		return "", fmt.Errorf("%w: edit account response is not a string", ErrMalformedResponse)
	}
	return answer, nil
}

// DeleteAccount implements [BackendAdapter] via DELETE /api/accounts/{id}.
func (h *httpBackendAdapter) DeleteAccount(ctx context.Context, accountID int64) (string, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(accountID, 10)).
		Delete("/api/accounts/{id}")
	if err != nil {
		return "", fmt.Errorf("delete account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	answer, ok := decodeJSONString(resp.Body())
	if !ok {
		return "", fmt.Errorf("%w: delete account response is not a string", ErrMalformedResponse)
	}
	return answer, nil
}

// GetSyncCredential implements [BackendAdapter] via GET /api/sync/account.
func (h *httpBackendAdapter) GetSyncCredential(ctx context.Context) (models.SyncCredential, error) {
	resp, err := h.request(ctx).Get("/api/sync/account")
	if err != nil {
		return models.SyncCredential{}, fmt.Errorf("get sync credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncCredential{}, err
	}

	return decodeSyncCredential(resp.Body())
}

// ValidateSyncCredential implements [BackendAdapter] via
// POST /api/sync/validate. When the returned token is a JWT its expiry is
// logged; the token is never verified or stored.
func (h *httpBackendAdapter) ValidateSyncCredential(ctx context.Context, host, username, password string) (string, error) {
	body := syncCredentialRequest{Host: host, Username: username, Password: password}

	req, err := h.jsonRequest(ctx, body)
	if err != nil {
		return "", err
	}

	resp, err := req.Post("/api/sync/validate")
	if err != nil {
		return "", fmt.Errorf("validate sync credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, ok := decodeJSONString(resp.Body())
	if !ok {
		token = strings.TrimSpace(string(resp.Body()))
	}

	if exp, expErr := utils.TokenExpiry(token); expErr == nil {
		h.logger.Info().
			Str("func", "httpBackendAdapter.ValidateSyncCredential").
			Str("host", host).
			Time("session_expires_at", exp).
			Msg("sync credential validated")
	}

	return token, nil
}

// SaveSyncCredential implements [BackendAdapter] via PUT /api/sync/account.
func (h *httpBackendAdapter) SaveSyncCredential(ctx context.Context, host, username, password string) (models.SyncCredential, error) {
	body := syncCredentialRequest{Host: host, Username: username, Password: password}

	req, err := h.jsonRequest(ctx, body)
	if err != nil {
		return models.SyncCredential{}, err
	}

	resp, err := req.Put("/api/sync/account")
	if err != nil {
		return models.SyncCredential{}, fmt.Errorf("save sync credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncCredential{}, err
	}

	return decodeSyncCredential(resp.Body())
}

// ListAccounts implements [BackendAdapter] via GET /api/accounts?filter=.
func (h *httpBackendAdapter) ListAccounts(ctx context.Context, filter string) ([]models.Account, error) {
	resp, err := h.request(ctx).
		SetQueryParam("filter", filter).
		Get("/api/accounts")
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var accounts []models.Account
	if err = decodeJSONArray(resp.Body(), &accounts); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// OneTimePassword implements [BackendAdapter] via
// GET /api/accounts/{id}/otp.
func (h *httpBackendAdapter) OneTimePassword(ctx context.Context, accountID int64) (string, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(accountID, 10)).
		Get("/api/accounts/{id}/otp")
	if err != nil {
		return "", fmt.Errorf("one-time password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	code, ok := decodeJSONString(resp.Body())
	if !ok {
		return "", fmt.Errorf("%w: one-time password is not a string", ErrMalformedResponse)
	}
	return code, nil
}

// ExportAccounts implements [BackendAdapter] via GET /api/accounts/export.
func (h *httpBackendAdapter) ExportAccounts(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/accounts/export")
	if err != nil {
		return "", fmt.Errorf("export accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	uris, ok := decodeJSONString(resp.Body())
	if !ok {
		return "", fmt.Errorf("%w: export is not a string", ErrMalformedResponse)
	}
	return uris, nil
}

// SyncLogs implements [BackendAdapter] via GET /api/sync/logs.
func (h *httpBackendAdapter) SyncLogs(ctx context.Context) ([]models.SyncLog, error) {
	resp, err := h.request(ctx).Get("/api/sync/logs")
	if err != nil {
		return nil, fmt.Errorf("sync logs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var logs []models.SyncLog
	if err = decodeJSONArray(resp.Body(), &logs); err != nil {
		return nil, fmt.Errorf("sync logs: %w", err)
	}
	return logs, nil
}

// AttemptSync implements [BackendAdapter] via POST /api/sync/attempt.
func (h *httpBackendAdapter) AttemptSync(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/api/sync/attempt")
	if err != nil {
		return fmt.Errorf("attempt sync request: %w", err)
	}
	return mapHTTPError(resp)
}

// request prepares a request bound to ctx, forwarding the correlation id
// when one is attached.
func (h *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if id, ok := utils.GetRequestIDFromContext(ctx); ok {
		req.SetHeader(requestIDHeader, id)
	}
	return req
}

// jsonRequest encodes body itself: the integrity header must cover exactly
// the bytes sent.
func (h *httpBackendAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.signer.Enabled() {
		req.SetHeader(utils.HashHeader, h.signer.Sign(payload))
	}
	return req, nil
}

// decodeRejectableObject decodes a JSON object into dst. An object carrying
// an "Error" key is returned as rejected wrapped with the backend's reason.
func decodeRejectableObject(body []byte, dst any, rejected error) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return fmt.Errorf("%w: response is not an object", ErrMalformedResponse)
	}
	if reason, ok := fields["Error"]; ok {
		msg, isString := decodeJSONString(reason)
		if !isString {
			msg = string(reason)
		}
		return fmt.Errorf("%w: %s", rejected, msg)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func decodeSyncCredential(body []byte) (models.SyncCredential, error) {
	var cred models.SyncCredential
	if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		return models.SyncCredential{}, fmt.Errorf("%w: sync credential is not an object", ErrMalformedResponse)
	}
	if err := json.Unmarshal(body, &cred); err != nil {
		return models.SyncCredential{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return cred, nil
}

func decodeJSONArray(body []byte, dst any) error {
	if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("[")) {
		return fmt.Errorf("%w: expected an array", ErrMalformedResponse)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func decodeJSONString(body []byte) (string, bool) {
	var s string
	if err := json.Unmarshal(bytes.TrimSpace(body), &s); err != nil {
		return "", false
	}
	return s, true
}
