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

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

// Transport-level error codes.
const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeRateLimitExceeded indicates the client exceeded an enforced request limit.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeMethodNotAllowed indicates the HTTP method is not allowed for the resource.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeTimeout indicates an operation exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeUnavailable indicates a service or resource is temporarily unavailable.
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// Entry validation error codes. The validator rejects with the first failing
// check, so a payload with several problems reports only one code.
const (
	// ErrCodeInvalidType indicates an entry type other than ingredient or recipe.
	ErrCodeInvalidType ErrorCode = "INVALID_TYPE"
	// ErrCodeInvalidName indicates a missing or non-string entry name.
	ErrCodeInvalidName ErrorCode = "INVALID_NAME"
	// ErrCodeInvalidCookTime indicates a missing, non-integer, or negative cook time.
	ErrCodeInvalidCookTime ErrorCode = "INVALID_COOK_TIME"
	// ErrCodeDuplicateName indicates the entry name already exists in the cookbook.
	ErrCodeDuplicateName ErrorCode = "DUPLICATE_NAME"
	// ErrCodeInvalidRequiredItems indicates a missing or non-list requiredItems field.
	ErrCodeInvalidRequiredItems ErrorCode = "INVALID_REQUIRED_ITEMS"
	// ErrCodeInvalidRequiredItem indicates a required item with a bad name or quantity.
	ErrCodeInvalidRequiredItem ErrorCode = "INVALID_REQUIRED_ITEM"
	// ErrCodeDuplicateRequiredItemName indicates two required items sharing a name.
	ErrCodeDuplicateRequiredItemName ErrorCode = "DUPLICATE_REQUIRED_ITEM_NAME"
)

// Resolution and summary error codes.
const (
	// ErrCodeUnknownReference indicates a required item name that does not
	// exist in the cookbook, at any depth of the expansion.
	ErrCodeUnknownReference ErrorCode = "UNKNOWN_REFERENCE"
	// ErrCodeCyclicReference indicates a recipe that directly or indirectly
	// requires itself.
	ErrCodeCyclicReference ErrorCode = "CYCLIC_REFERENCE"
	// ErrCodeRecipeNotFound indicates a summary request for a name not in the cookbook.
	ErrCodeRecipeNotFound ErrorCode = "RECIPE_NOT_FOUND"
	// ErrCodeNotARecipe indicates a summary request for an ingredient entry.
	ErrCodeNotARecipe ErrorCode = "NOT_A_RECIPE"
	// ErrCodeIngredientResolutionFailed indicates the resolver failed while
	// expanding the recipe. All resolver failures collapse to this single
	// user-facing reason.
	ErrCodeIngredientResolutionFailed ErrorCode = "INGREDIENT_RESOLUTION_FAILED"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the ErrorCode carried by err, or ErrCodeInternal when err is
// not a StructuredError. A nil err returns an empty code.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}
