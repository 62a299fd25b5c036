package domain_test

import (
	"testing"

	"github.com/loadstone/loadstone/internal/core/domain"
)

func TestCleanName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Unofficial Skyrim Special Edition Patch.esp", "unofficial skyrim special edition patch"},
		{"Dawnguard.esm", "dawnguard"},
		{"QuickLight.esl", "quicklight"},
		{"  Padded Name.esp  ", "padded name"},
		{"NoExtension", "noextension"},
		{"double.esp.esp", "double.esp"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := domain.CleanName(tc.in); got != tc.want {
			t.Errorf("CleanName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanName_Idempotent(t *testing.T) {
	names := []string{"Skyrim.esm", "some MOD.esp", "weird [name].esl"}
	for _, name := range names {
		once := domain.CleanName(name)
		if twice := domain.CleanName(once); twice != once {
			t.Errorf("CleanName not idempotent for %q: %q != %q", name, once, twice)
		}
	}
}

func TestCompactName(t *testing.T) {
	if got := domain.CompactName("Skyrim - Utilities!"); got != "skyrimutilities" {
		t.Errorf("CompactName = %q, want %q", got, "skyrimutilities")
	}
	if got := domain.CompactName("---"); got != "" {
		t.Errorf("CompactName of punctuation = %q, want empty", got)
	}
}
