package validate

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{"joao@empresa.com.br", "a@b.co", "first.last@host.org"}
	invalid := []string{"", "no-at-sign", "two@@host.com", "spaces in@host.com", "missing@tld"}

	for _, e := range valid {
		if !Email(e) {
			t.Errorf("Email(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if Email(e) {
			t.Errorf("Email(%q) = true, want false", e)
		}
	}
}

func TestPhoneNumber(t *testing.T) {
	valid := []string{"11987654321", "1187654321", "+5511987654321", "(11)987654321"}
	invalid := []string{"", "123", "11.98765.4321", "abc87654321"}

	for _, p := range valid {
		if !PhoneNumber(p) {
			t.Errorf("PhoneNumber(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if PhoneNumber(p) {
			t.Errorf("PhoneNumber(%q) = true, want false", p)
		}
	}
}

func TestCpf(t *testing.T) {
	valid := []string{"52998224725", "529.982.247-25"}
	invalid := []string{
		"",
		"52998224724",     // wrong second check digit
		"52998224735",     // wrong first check digit
		"5299822472",      // too short
		"529982247255",    // too long
		"5299822472a",     // letter
		"529 982 247 25",  // unexpected separator
	}

	for _, c := range valid {
		if !Cpf(c) {
			t.Errorf("Cpf(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if Cpf(c) {
			t.Errorf("Cpf(%q) = true, want false", c)
		}
	}
}

func TestPassword(t *testing.T) {
	valid := []string{"abc123", "senha9", "123456789012"}
	invalid := []string{"", "ab1", "nodigits", "waytoolongpassword1"}

	for _, p := range valid {
		if !Password(p) {
			t.Errorf("Password(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if Password(p) {
			t.Errorf("Password(%q) = true, want false", p)
		}
	}
}

func TestOnlyDigits(t *testing.T) {
	if !OnlyDigits("0123456789") {
		t.Error("expected true for digit string")
	}
	if OnlyDigits("") || OnlyDigits("12a4") {
		t.Error("expected false for empty or mixed strings")
	}
}
