// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package api

// Error codes used in API responses. NO_DATASET maps to HTTP 409: the
// engine is Unloaded and queries cannot be served until a load
// succeeds.
const (
	codeNoDataset       = "NO_DATASET"
	codeLoadFailed      = "LOAD_FAILED"
	codeValidationError = "VALIDATION_ERROR"
	codeInternalError   = "INTERNAL_ERROR"
)
