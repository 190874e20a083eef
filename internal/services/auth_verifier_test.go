package services

import "testing"

func TestStaticCredentialVerifier(t *testing.T) {
	verifier, err := NewStaticCredentialVerifierFromPassword("admin", "admin123")
	if err != nil {
		t.Fatalf("build verifier: %v", err)
	}

	if !verifier.Verify("admin", "admin123") {
		t.Fatal("expected valid credentials to pass")
	}
	if !verifier.Verify("  admin  ", "admin123") {
		t.Fatal("expected surrounding whitespace on the username to be ignored")
	}
	if verifier.Verify("admin", "wrong") {
		t.Fatal("expected wrong password to fail")
	}
	if verifier.Verify("someone", "admin123") {
		t.Fatal("expected wrong username to fail")
	}
	if verifier.Verify("", "") {
		t.Fatal("expected empty credentials to fail")
	}
}

func TestStaticCredentialVerifierEmptyConfiguration(t *testing.T) {
	verifier := NewStaticCredentialVerifier("", "")
	if verifier.Verify("admin", "admin123") {
		t.Fatal("unconfigured verifier must reject everything")
	}
}
