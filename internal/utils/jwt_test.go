package utils

import "testing"

func TestTokenPairRoundTrip(t *testing.T) {
	const secret = "test-secret"

	pair, err := GenerateTokenPair(7, "alice", secret)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ValidateToken(pair.AccessToken, secret)
	if err != nil {
		t.Fatalf("validate access token failed: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "alice" {
		t.Errorf("claims = (%d, %q), want (7, alice)", claims.UserID, claims.Username)
	}
	if claims.Type != string(AccessToken) {
		t.Errorf("type = %q, want access", claims.Type)
	}

	refreshClaims, err := ValidateToken(pair.RefreshToken, secret)
	if err != nil {
		t.Fatalf("validate refresh token failed: %v", err)
	}
	if refreshClaims.Type != string(RefreshToken) {
		t.Errorf("type = %q, want refresh", refreshClaims.Type)
	}
}

func TestTokenPairsAreUnique(t *testing.T) {
	const secret = "test-secret"

	// Issued back to back within the same second; the jti claim must keep
	// them distinct or the refresh token's unique column rejects the second.
	first, err := GenerateTokenPair(7, "alice", secret)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	second, err := GenerateTokenPair(7, "alice", secret)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if first.RefreshToken == second.RefreshToken {
		t.Error("consecutive refresh tokens are identical")
	}
	if first.AccessToken == second.AccessToken {
		t.Error("consecutive access tokens are identical")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	pair, err := GenerateTokenPair(7, "alice", "secret-one")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ValidateToken(pair.AccessToken, "secret-two"); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}
