// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package validation

import (
	"strings"
	"testing"
)

type rankingRequest struct {
	Limit int `validate:"min=1,max=100"`
}

type recordLike struct {
	VideoID        string  `validate:"required"`
	DurationSec    int     `validate:"gt=0"`
	CompletionRate float64 `validate:"min=0,max=1"`
}

func TestValidateStructPasses(t *testing.T) {
	if err := ValidateStruct(&rankingRequest{Limit: 10}); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidateStructFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		field string
	}{
		{"limit too small", &rankingRequest{Limit: 0}, "Limit"},
		{"limit too large", &rankingRequest{Limit: 500}, "Limit"},
		{"missing video id", &recordLike{DurationSec: 60, CompletionRate: 0.5}, "VideoID"},
		{"zero duration", &recordLike{VideoID: "V1", CompletionRate: 0.5}, "DurationSec"},
		{"completion above one", &recordLike{VideoID: "V1", DurationSec: 60, CompletionRate: 1.5}, "CompletionRate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if len(err.Errors()) == 0 {
				t.Fatal("expected at least one field error")
			}
			if err.Errors()[0].Field() != tt.field {
				t.Errorf("expected failing field %s, got %s", tt.field, err.Errors()[0].Field())
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	err := ValidateStruct(&rankingRequest{Limit: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}
	if _, ok := apiErr.Details["Limit"]; !ok {
		t.Errorf("expected Limit in details, got %v", apiErr.Details)
	}
	if !strings.Contains(apiErr.Message, "Limit") {
		t.Errorf("expected field name in message, got %q", apiErr.Message)
	}
}
