// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/utils"
	"github.com/MKhiriev/go-airs-adapter/models"
)

// maxScanRequestBody bounds the request body; it leaves room for a batch of
// several async-sized items.
const maxScanRequestBody = 64 << 20

type scanRequest struct {
	Items []models.Item `json:"items"`

	// ContinueOnFail overrides the configured policy when set.
	ContinueOnFail *bool `json:"continue_on_fail,omitempty"`
}

type scanResponse struct {
	Records []models.Record `json:"records"`

	// Error is set when the run stopped at a failing item; Records then holds
	// what was produced before it.
	Error string `json:"error,omitempty"`
}

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req scanRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScanRequestBody)).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidJSON.Error(), statusFromError(ErrInvalidJSON))
		return
	}
	if len(req.Items) == 0 {
		log.Err(ErrNoItems).Send()
		utils.WriteJSONError(w, ErrNoItems.Error(), statusFromError(ErrNoItems))
		return
	}

	continueOnFail := h.continueOnFail
	if req.ContinueOnFail != nil {
		continueOnFail = *req.ContinueOnFail
	}

	caller, _ := utils.GetCallerFromContext(ctx)
	log.Debug().
		Int("items", len(req.Items)).
		Bool("continue_on_fail", continueOnFail).
		Str("caller", caller).
		Msg("scan run started")

	records, err := h.services.ScanService.Run(ctx, req.Items, continueOnFail)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("scan run aborted")
		if _, wErr := utils.WriteJSON(w, scanResponse{Records: records, Error: err.Error()}, status); wErr != nil {
			log.Err(wErr).Msg("failed to write response")
		}
		return
	}

	if _, err = utils.WriteJSON(w, scanResponse{Records: records}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}
