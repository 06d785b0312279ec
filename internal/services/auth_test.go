package services

import (
	"errors"
	"testing"

	"github.com/localmart/community-backend/internal/models"
)

func TestSignupAssignsBaseRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", nil, "http://localhost")

	resp, err := svc.Signup(SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if resp.Token.AccessToken == "" || resp.Token.RefreshToken == "" {
		t.Error("expected a token pair on signup")
	}

	if !svc.HasRole(resp.User.ID, "user") {
		t.Error("new user should hold the base user role")
	}
	if svc.HasRole(resp.User.ID, "admin") {
		t.Error("new user should not hold the admin role")
	}
}

func TestSignupRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", nil, "http://localhost")

	if _, err := svc.Signup(SignupRequest{Username: "bob", Email: "bob@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := svc.Signup(SignupRequest{Username: "bob", Email: "other@example.com", Password: "supersecret"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("duplicate username: got %v, want validation error", err)
	}

	_, err = svc.Signup(SignupRequest{Username: "other", Email: "bob@example.com", Password: "supersecret"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("duplicate email: got %v, want validation error", err)
	}
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", nil, "http://localhost")

	if _, err := svc.Signup(SignupRequest{Username: "carol", Email: "carol@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	tests := []struct {
		name    string
		login   string
		pass    string
		wantErr bool
	}{
		{"by username", "carol", "supersecret", false},
		{"by email", "carol@example.com", "supersecret", false},
		{"wrong password", "carol", "nope-nope-nope", true},
		{"unknown user", "mallory", "supersecret", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(LoginRequest{Login: tt.login, Password: tt.pass})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestLoginImmediatelyAfterSignup(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", nil, "http://localhost")

	// Signup and login land within the same second; each must still store
	// its own refresh token under the unique token column.
	signup, err := svc.Signup(SignupRequest{Username: "erin", Email: "erin@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	login, err := svc.Login(LoginRequest{Login: "erin", Password: "supersecret"})
	if err != nil {
		t.Fatalf("login right after signup failed: %v", err)
	}
	if login.Token.RefreshToken == signup.Token.RefreshToken {
		t.Error("login reissued the signup refresh token")
	}

	var count int64
	db.Model(&models.RefreshToken{}).Where("user_id = ?", signup.User.ID).Count(&count)
	if count != 2 {
		t.Errorf("stored refresh tokens = %d, want 2", count)
	}
	db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND is_revoked = ?", signup.User.ID, false).Count(&count)
	if count != 1 {
		t.Errorf("unrevoked refresh tokens = %d, want 1", count)
	}
}

func TestSignupRollsBackOnTokenStoreFailure(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", nil, "http://localhost")

	// Force the final write of the signup transaction to fail.
	if err := db.Migrator().DropTable(&models.RefreshToken{}); err != nil {
		t.Fatalf("drop table failed: %v", err)
	}

	if _, err := svc.Signup(SignupRequest{Username: "ghost", Email: "ghost@example.com", Password: "supersecret"}); err == nil {
		t.Fatal("signup succeeded without a refresh token store")
	}

	var users int64
	db.Model(&models.User{}).Where("username = ?", "ghost").Count(&users)
	if users != 0 {
		t.Errorf("user row survived a failed signup; want full rollback")
	}
	var grants int64
	db.Table("user_roles").Count(&grants)
	if grants != 0 {
		t.Errorf("role grants = %d after failed signup, want 0", grants)
	}
}

func TestHasRoleCapabilityCheck(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", nil, "http://localhost")

	plain := createTestUser(t, db, "plain")
	admin := createTestUser(t, db, "boss")
	grantRole(t, db, admin, "admin")

	if svc.HasRole(plain.ID, "admin") {
		t.Error("user with no roles must fail the admin capability check")
	}
	if !svc.HasRole(admin.ID, "admin") {
		t.Error("user holding the admin role must pass the admin capability check")
	}
	if svc.HasRole(admin.ID, "superadmin") {
		t.Error("capability check must match the exact role name")
	}
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", nil, "http://localhost")

	user := createTestUser(t, db, "dave")

	err := svc.ChangePassword(user.ID, ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "newpassword",
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("wrong current password: got %v, want validation error", err)
	}

	if err := svc.ChangePassword(user.ID, ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword",
	}); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if _, err := svc.Login(LoginRequest{Login: "dave", Password: "newpassword"}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
}
