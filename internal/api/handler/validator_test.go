package handler

import (
	"strings"
	"testing"

	"github.com/dentalflow/clinic-system/internal/core/domain"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{
		Username: "amy",
		Email:    "amy@dentalflow.com",
		Role:     domain.RoleDoctor,
	})
	if err == nil {
		t.Fatalf("expected validation error for missing full_name")
	}
	if !strings.Contains(err.Error(), "full_name is required") {
		t.Fatalf("expected wire field name in message, got %q", err.Error())
	}
}

func TestValidator_EmailFormat(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{
		Username: "amy",
		Email:    "not-an-email",
		FullName: "Amy Lee",
		Role:     domain.RoleDoctor,
	})
	if err == nil {
		t.Fatalf("expected validation error for malformed email")
	}
	if !strings.Contains(err.Error(), "email must be a valid email") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestValidator_ValidStruct(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&loginRequest{Identifier: "admin", Password: "x"}); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}
