package users

import (
	"testing"

	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

func TestCreateUserDTODefaults(t *testing.T) {
	m := CreateUserDTO{Email: "owner@sidestreet.coffee", Username: "sidestreet"}.ToModel()

	if !m.IsActive {
		t.Fatal("expected new users to default to active")
	}
	if m.UserType != enums.UserTypeMember {
		t.Fatalf("expected default user type %q, got %q", enums.UserTypeMember, m.UserType)
	}
}

func TestCreateUserDTOExplicitValues(t *testing.T) {
	inactive := false
	m := CreateUserDTO{
		Email:    "vendor@sidestreet.coffee",
		Username: "sidestreet-vendor",
		UserType: enums.UserTypeVendor,
		IsActive: &inactive,
	}.ToModel()

	if m.IsActive {
		t.Fatal("expected explicit inactive flag to be honored")
	}
	if m.UserType != enums.UserTypeVendor {
		t.Fatalf("expected vendor user type, got %q", m.UserType)
	}
}

func TestFromModelNil(t *testing.T) {
	if got := FromModel(nil); got != nil {
		t.Fatalf("expected nil DTO for nil model, got %+v", got)
	}
}
