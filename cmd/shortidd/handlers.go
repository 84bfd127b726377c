// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/xmidt-org/shortid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// requestedSize returns the byte count for a single request. The
// optional "bytes" query parameter overrides the configured default.
func requestedSize(request *http.Request, fallback int) (int, error) {
	raw := request.URL.Query().Get("bytes")
	if raw == "" {
		return fallback, nil
	}

	size, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", shortid.ErrInvalidLength, raw)
	}

	return size, nil
}

// writeID renders a generated identifier, or the appropriate error
// status when generation failed.
func writeID(logger *zap.Logger, response http.ResponseWriter, id string, err error) {
	switch {
	case err == nil:
		response.Header().Set("Content-Type", "text/plain;charset=utf-8")
		response.Write([]byte(id))

	case errors.Is(err, shortid.ErrInvalidLength):
		http.Error(response, err.Error(), http.StatusBadRequest)

	default:
		logger.Error("unable to generate identifier", zap.Error(err))
		http.Error(response, err.Error(), http.StatusInternalServerError)
	}
}

// IDHandler serves random identifiers as plain text.
type IDHandler struct {
	logger    *zap.Logger
	generator *shortid.Generator
	size      int
}

func NewIDHandler(l *zap.Logger, g *shortid.Generator, cli CLI) *IDHandler {
	return &IDHandler{
		logger:    l,
		generator: g,
		size:      cli.Bytes,
	}
}

func (ih *IDHandler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	var id string
	size, err := requestedSize(request, ih.size)
	if err == nil {
		id, err = ih.generator.Generate(size)
	}

	writeID(ih.logger, response, id, err)
}

// OrderedIDHandler serves time-ordered identifiers as plain text.
type OrderedIDHandler struct {
	logger    *zap.Logger
	generator *shortid.Generator
	size      int
}

func NewOrderedIDHandler(l *zap.Logger, g *shortid.Generator, cli CLI) *OrderedIDHandler {
	return &OrderedIDHandler{
		logger:    l,
		generator: g,
		size:      cli.Bytes,
	}
}

func (oh *OrderedIDHandler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	var id string
	size, err := requestedSize(request, oh.size)
	if err == nil {
		id, err = oh.generator.GenerateOrdered(size)
	}

	writeID(oh.logger, response, id, err)
}

func ProvideHandlers() fx.Option {
	return fx.Provide(
		NewIDHandler,
		NewOrderedIDHandler,
	)
}
