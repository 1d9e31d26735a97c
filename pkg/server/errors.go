// Copyright (c) 2025, Cookbook Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"net/http"
	"time"

	cberrors "github.com/devdonalds/cookbook/pkg/errors"
	"github.com/devdonalds/cookbook/pkg/serializer"
	"github.com/google/uuid"
)

// Error codes as constants
const (
	ErrCodeRateLimitExceeded = string(cberrors.ErrCodeRateLimitExceeded)
	ErrCodeInternalError     = string(cberrors.ErrCodeInternal)
	ErrCodeInvalidRequest    = string(cberrors.ErrCodeInvalidRequest)
	ErrCodeMethodNotAllowed  = string(cberrors.ErrCodeMethodNotAllowed)
)

// ErrorResponse represents the error envelope returned to clients.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteStructuredError maps a StructuredError (or any error) to the
// appropriate status code and error envelope.
func WriteStructuredError(w http.ResponseWriter, r *http.Request, err error) {
	code := cberrors.CodeOf(err)
	WriteError(w, r, HTTPStatusFromCode(code), string(code), messageOf(err),
		RetryableFromCode(code), nil)
}

func messageOf(err error) string {
	var se *cberrors.StructuredError
	if errors.As(err, &se) {
		return se.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// HTTPStatusFromCode maps an error code to an HTTP status code.
// All cookbook validation, resolution, and summary failures are client
// errors; only unknown codes surface as 500.
func HTTPStatusFromCode(code cberrors.ErrorCode) int {
	switch code {
	case cberrors.ErrCodeInvalidRequest,
		cberrors.ErrCodeInvalidType,
		cberrors.ErrCodeInvalidName,
		cberrors.ErrCodeInvalidCookTime,
		cberrors.ErrCodeDuplicateName,
		cberrors.ErrCodeInvalidRequiredItems,
		cberrors.ErrCodeInvalidRequiredItem,
		cberrors.ErrCodeDuplicateRequiredItemName,
		cberrors.ErrCodeRecipeNotFound,
		cberrors.ErrCodeNotARecipe,
		cberrors.ErrCodeUnknownReference,
		cberrors.ErrCodeCyclicReference,
		cberrors.ErrCodeIngredientResolutionFailed:
		return http.StatusBadRequest
	case cberrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cberrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cberrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cberrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case cberrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RetryableFromCode reports whether a request failing with the given code
// may succeed on retry without modification.
func RetryableFromCode(code cberrors.ErrorCode) bool {
	switch code {
	case cberrors.ErrCodeRateLimitExceeded,
		cberrors.ErrCodeTimeout,
		cberrors.ErrCodeUnavailable,
		cberrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}
