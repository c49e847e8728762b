// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address is
// configured. The adapter has no other inbound transport, so this is a fatal
// misconfiguration at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
