// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no transport
// address is provided in the server configuration, so no handlers are
// initialized. This is a fatal misconfiguration that fails startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
