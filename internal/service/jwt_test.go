package service

import (
	"strings"
	"testing"
)

func TestPlayerTokenRoundTrip(t *testing.T) {
	InitJWTWithSecret("test-secret")

	token, err := GeneratePlayerToken("abc123", "XYZ789")
	if err != nil {
		t.Fatalf("GeneratePlayerToken: %v", err)
	}

	playerID, gameCode, err := ParsePlayerToken(token)
	if err != nil {
		t.Fatalf("ParsePlayerToken: %v", err)
	}
	if playerID != "abc123" || gameCode != "XYZ789" {
		t.Fatalf("claims = (%s, %s); want (abc123, XYZ789)", playerID, gameCode)
	}
}

func TestPlayerTokenRejectsTampering(t *testing.T) {
	InitJWTWithSecret("test-secret")
	token, err := GeneratePlayerToken("abc123", "XYZ789")
	if err != nil {
		t.Fatalf("GeneratePlayerToken: %v", err)
	}

	// flip a character in the signature segment
	tampered := token[:len(token)-2] + "xx"
	if _, _, err := ParsePlayerToken(tampered); err == nil {
		t.Fatal("tampered token accepted")
	}

	if _, _, err := ParsePlayerToken("not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestPlayerTokenRejectsWrongSecret(t *testing.T) {
	InitJWTWithSecret("secret-one")
	token, err := GeneratePlayerToken("abc123", "XYZ789")
	if err != nil {
		t.Fatalf("GeneratePlayerToken: %v", err)
	}

	InitJWTWithSecret("secret-two")
	if _, _, err := ParsePlayerToken(token); err == nil {
		t.Fatal("token signed with a different secret accepted")
	}

	if !strings.Contains(token, ".") {
		t.Fatal("token is not a JWT")
	}
}
