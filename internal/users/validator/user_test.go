package validator

import (
	"testing"

	"resortly/pkg/logger"
	"resortly/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func TestValidate_User(t *testing.T) {
	v := NewUserValidator(testLogger())

	tests := []struct {
		name    string
		user    model.User
		wantErr bool
	}{
		{
			name:    "valid minimal user",
			user:    model.User{Name: "Dana Levi", Email: "dana@example.com"},
			wantErr: false,
		},
		{
			name:    "missing name",
			user:    model.User{Email: "dana@example.com"},
			wantErr: true,
		},
		{
			name:    "missing email",
			user:    model.User{Name: "Dana Levi"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			user:    model.User{Name: "Dana Levi", Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "age below minimum",
			user:    model.User{Name: "Dana Levi", Email: "dana@example.com", Age: 12},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.user)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRoleUpdate(t *testing.T) {
	v := NewUserValidator(testLogger())
	isAdmin := true

	if err := v.ValidateRoleUpdate(&model.UserRoleUpdate{Email: "dana@example.com", IsAdmin: &isAdmin}); err != nil {
		t.Errorf("expected valid role update, got %v", err)
	}

	if err := v.ValidateRoleUpdate(&model.UserRoleUpdate{Email: "dana@example.com"}); err == nil {
		t.Error("expected error when isAdmin is absent")
	}

	if err := v.ValidateRoleUpdate(&model.UserRoleUpdate{IsAdmin: &isAdmin}); err == nil {
		t.Error("expected error when email is absent")
	}
}

func TestValidateInfoUpdate_RequiresAtLeastOneField(t *testing.T) {
	v := NewUserValidator(testLogger())

	err := v.ValidateInfoUpdate(&model.UserInfoUpdate{Email: "dana@example.com"})
	if err == nil {
		t.Fatal("expected error for an empty info update")
	}

	age := 30
	if err := v.ValidateInfoUpdate(&model.UserInfoUpdate{Email: "dana@example.com", Age: &age}); err != nil {
		t.Errorf("expected valid info update, got %v", err)
	}
}
