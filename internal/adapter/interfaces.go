// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a transport-layer client for the Account
// REST API.
//
// The primary abstraction is [AccountsClient], which decouples callers
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAccountsClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/account-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/accounts_client_mock.go -package=mock

// AccountsClient defines transport-agnostic communication with the
// Account service. Implementations are responsible for serialisation
// and for mapping transport-level errors to the sentinel values
// defined in this package.
type AccountsClient interface {
	// Health reports whether the service answers its liveness probe.
	Health(ctx context.Context) error

	// ServiceInfo returns the service's name and version as reported
	// by the API root.
	ServiceInfo(ctx context.Context) (models.ServiceInfoResponse, error)

	// Create registers a new account and returns the stored record,
	// including the server-assigned ID.
	Create(ctx context.Context, account models.Account) (models.Account, error)

	// Get returns the account matching id. Returns [ErrNotFound]
	// (wrapped) if no such account exists.
	Get(ctx context.Context, id int64) (models.Account, error)

	// List returns all accounts, narrowed by the optional name and
	// email filters.
	List(ctx context.Context, filter models.AccountFilter) ([]models.Account, error)

	// Update replaces the stored record identified by account.ID.
	// Returns [ErrNotFound] (wrapped) if no such account exists.
	Update(ctx context.Context, account models.Account) (models.Account, error)

	// Delete removes the account matching id. Returns [ErrNotFound]
	// (wrapped) if no such account exists.
	Delete(ctx context.Context, id int64) error
}
