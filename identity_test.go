package main

import "testing"

func TestIdentityJWTRoundTrip(t *testing.T) {
	identity := NewIdentityJWT("test-secret")
	token, err := identity.GenerateIdentityJWT("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subject := identity.GetSubjectFromIdentityJWT(token)
	if subject != "alice" {
		t.Errorf("wrong subject expected: %v got: %v", "alice", subject)
	}
}

func TestIdentityJWTWrongSecret(t *testing.T) {
	token, _ := NewIdentityJWT("one-secret").GenerateIdentityJWT("alice")
	subject := NewIdentityJWT("another-secret").GetSubjectFromIdentityJWT(token)
	if subject != "" {
		t.Errorf("token signed with another secret should not verify, got subject: %v", subject)
	}
}

func TestIdentityJWTGarbageToken(t *testing.T) {
	subject := NewIdentityJWT("test-secret").GetSubjectFromIdentityJWT("not-a-jwt")
	if subject != "" {
		t.Errorf("garbage token should not verify, got subject: %v", subject)
	}
}
