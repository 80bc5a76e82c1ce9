// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

// newTestAdapter создаёт httpBackendAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpBackendAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPBackendAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

// newFakeBackend поднимает chi-роутер с переданными маршрутами.
func newFakeBackend(t *testing.T, routes func(r chi.Router)) *httpBackendAdapter {
	t.Helper()
	r := chi.NewRouter()
	routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return newTestAdapter(t, srv.URL)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func int64Ptr(v int64) *int64 { return &v }

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPBackendAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPBackendAdapter(config.ClientAdapter{HTTPAddress: "  "}, config.ClientApp{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://otp.example.com/", want: "https://otp.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── DecodeOTPURI ────────────────────────────────────────────────────────────

func TestDecodeOTPURI_Success(t *testing.T) {
	const uri = "otpauth://totp/ACME:alice?secret=JBSWY3DPEHPK3PXP&period=30"

	a := newFakeBackend(t, func(r chi.Router) {
		r.Post("/api/otp/decode", func(w http.ResponseWriter, r *http.Request) {
			var req decodeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, uri, req.URI)

			writeJSON(w, http.StatusOK, map[string]any{
				"name": "alice", "secret": "JBSWY3DPEHPK3PXP",
				"totp_step": 30, "otp_digits": 6, "algorithm": "SHA256",
			})
		})
	})

	got, err := a.DecodeOTPURI(context.Background(), uri)

	require.NoError(t, err)
	assert.Equal(t, models.DraftAccount{
		Name: "alice", Secret: "JBSWY3DPEHPK3PXP", TOTPStep: 30, OTPDigits: 6,
		Algorithm: models.AlgorithmSHA256,
	}, got)
}

func TestDecodeOTPURI_NullAlgorithmIsAutodetect(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Post("/api/otp/decode", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"name": "n", "secret": "s", "algorithm": nil})
		})
	})

	got, err := a.DecodeOTPURI(context.Background(), "otpauth://totp/n?secret=s")

	require.NoError(t, err)
	assert.Equal(t, models.AlgorithmAutodetect, got.Algorithm)
}

func TestDecodeOTPURI_ErrorObject(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Post("/api/otp/decode", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"Error": "Invalid secret"})
		})
	})

	_, err := a.DecodeOTPURI(context.Background(), "otpauth://totp/n?secret=s")

	require.ErrorIs(t, err, ErrDecodeRejected)
	assert.Contains(t, err.Error(), "Invalid secret")
}

func TestDecodeOTPURI_NonObject(t *testing.T) {
	for _, body := range []string{`"just a string"`, `[1,2]`, `null`, `not json`} {
		t.Run(body, func(t *testing.T) {
			a := newFakeBackend(t, func(r chi.Router) {
				r.Post("/api/otp/decode", func(w http.ResponseWriter, r *http.Request) {
					_, _ = io.WriteString(w, body)
				})
			})

			_, err := a.DecodeOTPURI(context.Background(), "otpauth://totp/n?secret=s")

			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestDecodeOTPURI_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.DecodeOTPURI(context.Background(), "otpauth://totp/n?secret=s")

	require.Error(t, err)
	var respErr *ResponseError
	assert.False(t, errors.As(err, &respErr))
}

// ── CreateAccount ───────────────────────────────────────────────────────────

func TestCreateAccount_SendsWireFieldsAndSignature(t *testing.T) {
	draft := models.DraftAccount{
		Import: true, Name: "alice", Secret: "S3CR3T", TOTPStep: 60, OTPDigits: 8,
		Algorithm: models.AlgorithmSHA512,
	}

	a := newFakeBackend(t, func(r chi.Router) {
		r.Post("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			assert.Equal(t, utils.HashString(raw, []byte(testHashKey)), r.Header.Get(utils.HashHeader))
			assert.JSONEq(t, `{"name":"alice","secret":"S3CR3T","digits":8,"step":60,"algorithm":"SHA512"}`, string(raw))

			writeJSON(w, http.StatusOK, "Account created")
		})
	})

	got, err := a.CreateAccount(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, "Account created", got)
}

func TestCreateAccount_AutodetectSentAsEmptyName(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Post("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "", body["algorithm"])
			writeJSON(w, http.StatusOK, "ok")
		})
	})

	_, err := a.CreateAccount(context.Background(), models.DraftAccount{Name: "n", Secret: "s"})
	require.NoError(t, err)
}

func TestCreateAccount_NonStringAnswer(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Post("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]int{"id": 1})
		})
	})

	_, err := a.CreateAccount(context.Background(), models.DraftAccount{Name: "n"})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCreateAccount_BadRequest(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Post("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, "Invalid secret provided")
		})
	})

	_, err := a.CreateAccount(context.Background(), models.DraftAccount{Name: "n"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Invalid secret provided", err.Error())
}

func TestRequest_WithoutHashKeyHasNoSignature(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(utils.HashHeader))
		writeJSON(w, http.StatusOK, "ok")
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, err := NewHTTPBackendAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)

	_, err = a.CreateAccount(context.Background(), models.DraftAccount{Name: "n"})
	require.NoError(t, err)
}

func TestRequest_ForwardsRequestID(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Post("/api/sync/attempt", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "run-42", r.Header.Get(requestIDHeader))
			w.WriteHeader(http.StatusNoContent)
		})
	})

	require.NoError(t, a.AttemptSync(utils.WithRequestID(context.Background(), "run-42")))
}

// ── sync credential ─────────────────────────────────────────────────────────

func TestGetSyncCredential_Success(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Get("/api/sync/account", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"id": 1, "username": "test", "password": "password", "url": "https://test.com",
			})
		})
	})

	got, err := a.GetSyncCredential(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.SyncCredential{
		ID: int64Ptr(1), Username: "test", Password: "password", URL: "https://test.com",
	}, got)
}

func TestGetSyncCredential_DoesNotExist(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Get("/api/sync/account", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, "Sync Account does not exist")
		})
	})

	_, err := a.GetSyncCredential(context.Background())

	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Sync Account does not exist", err.Error())
}

func TestValidateSyncCredential_VerbatimFailure(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Post("/api/sync/validate", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "404 Could not be found")
		})
	})

	_, err := a.ValidateSyncCredential(context.Background(), "https://invalid.com", "test", "password")

	require.ErrorIs(t, err, ErrBadGateway)
	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusBadGateway, respErr.StatusCode)
	assert.Equal(t, "404 Could not be found", err.Error())
}

func TestValidateSyncCredential_OpaqueAndJWTTokens(t *testing.T) {
	jwtToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("remote"))
	require.NoError(t, err)

	for _, token := range []string{"28uwiofdjger3q9wfdghs", jwtToken} {
		a := newFakeBackend(t, func(r chi.Router) {
			r.Post("/api/sync/validate", func(w http.ResponseWriter, r *http.Request) {
				var req syncCredentialRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, syncCredentialRequest{Host: "https://valid.com", Username: "test", Password: "password"}, req)
				writeJSON(w, http.StatusOK, token)
			})
		})

		got, err := a.ValidateSyncCredential(context.Background(), "https://valid.com", "test", "password")

		require.NoError(t, err)
		assert.Equal(t, token, got)
	}
}

func TestSaveSyncCredential_Success(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Put("/api/sync/account", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"id": 7, "username": "test", "password": "password", "url": "https://valid.com",
			})
		})
	})

	got, err := a.SaveSyncCredential(context.Background(), "https://valid.com", "test", "password")

	require.NoError(t, err)
	require.NotNil(t, got.ID)
	assert.Equal(t, int64(7), *got.ID)
	assert.Equal(t, "https://valid.com", got.URL)
}

func TestSaveSyncCredential_NotAnObject(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Put("/api/sync/account", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, "saved")
		})
	})

	_, err := a.SaveSyncCredential(context.Background(), "h", "u", "p")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── accounts ────────────────────────────────────────────────────────────────

func TestListAccounts_PassesFilter(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Get("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "git", r.URL.Query().Get("filter"))
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 1, "name": "github", "colour": "#ff0000"},
				{"id": 2, "name": "gitlab", "colour": "", "totp_step": 60},
			})
		})
	})

	got, err := a.ListAccounts(context.Background(), "git")

	require.NoError(t, err)
	assert.Equal(t, []models.Account{
		{ID: 1, Name: "github", Colour: "#ff0000"},
		{ID: 2, Name: "gitlab", TOTPStep: 60},
	}, got)
}

func TestListAccounts_NonArray(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Get("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, "nope")
		})
	})

	_, err := a.ListAccounts(context.Background(), "")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestOneTimePassword(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Get("/api/accounts/{id}/otp", func(w http.ResponseWriter, r *http.Request) {
			if chi.URLParam(r, "id") != "12" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, "123456")
		})
	})

	got, err := a.OneTimePassword(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "123456", got)

	_, err = a.OneTimePassword(context.Background(), 13)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOneTimePassword_NonString(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Get("/api/accounts/{id}/otp", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, 123456)
		})
	})

	_, err := a.OneTimePassword(context.Background(), 1)

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestExportAccounts(t *testing.T) {
	const uris = "otpauth://totp/a?secret=A\notpauth://totp/b?secret=B"
	a := newFakeBackend(t, func(r chi.Router) {
		r.Get("/api/accounts/export", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, uris)
		})
	})

	got, err := a.ExportAccounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uris, got)
}

// ── GetAccount / EditAccount / DeleteAccount ────────────────────────────────

func TestGetAccount_Success(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Get("/api/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "1", chi.URLParam(r, "id"))
			// секрет в ответе игнорируется
			writeJSON(w, http.StatusOK, map[string]any{
				"id": 1, "name": "Hello World", "secret": "encrypted",
				"otp_digits": 6, "totp_step": 60, "algorithm": "SHA512",
			})
		})
	})

	got, err := a.GetAccount(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, models.EditableAccount{
		ID: 1, Name: "Hello World", OTPDigits: 6, TOTPStep: 60, Algorithm: models.AlgorithmSHA512,
	}, got)
}

func TestGetAccount_ErrorObject(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Get("/api/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"Error": "Invalid account id"})
		})
	})

	_, err := a.GetAccount(context.Background(), 99)

	require.ErrorIs(t, err, ErrAccountRejected)
	assert.Contains(t, err.Error(), "Invalid account id")
}

func TestEditAccount_SendsFieldsWithoutSecret(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Put("/api/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "1", chi.URLParam(r, "id"))
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			assert.Equal(t, utils.HashString(raw, []byte(testHashKey)), r.Header.Get(utils.HashHeader))
			assert.JSONEq(t, `{"name":"Hello World Edit","digits":6,"step":60,"algorithm":"SHA512"}`, string(raw))

			writeJSON(w, http.StatusOK, "Updated Account")
		})
	})

	got, err := a.EditAccount(context.Background(), models.EditableAccount{
		ID: 1, Name: "Hello World Edit", OTPDigits: 6, TOTPStep: 60, Algorithm: models.AlgorithmSHA512,
	})

	require.NoError(t, err)
	assert.Equal(t, "Updated Account", got)
}

func TestDeleteAccount(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Delete("/api/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
			if chi.URLParam(r, "id") == "12" {
				writeJSON(w, http.StatusOK, "Success")
				return
			}
			writeJSON(w, http.StatusOK, "Failure")
		})
	})

	got, err := a.DeleteAccount(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "Success", got)

	got, err = a.DeleteAccount(context.Background(), 13)
	require.NoError(t, err)
	assert.Equal(t, "Failure", got)
}

func TestDeleteAccount_NonString(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Delete("/api/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, true)
		})
	})

	_, err := a.DeleteAccount(context.Background(), 1)

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── sync logs / attempt ─────────────────────────────────────────────────────

func TestSyncLogs(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Get("/api/sync/logs", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 1, "log": "Connection refused", "log_type": "ERROR", "timestamp": 1700000000},
			})
		})
	})

	got, err := a.SyncLogs(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.SyncLogError, got[0].Type)
	assert.Equal(t, "Connection refused", got[0].Log)
}

func TestAttemptSync_Failure(t *testing.T) {
	a := newFakeBackend(t, func(r chi.Router) {
		r.Post("/api/sync/attempt", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})

	err := a.AttemptSync(context.Background())

	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, http.StatusText(http.StatusTeapot), err.Error())
}
