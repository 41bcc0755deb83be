package utils

import (
	"strings"
	"testing"
)

func isUpperAlnum(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func TestGeneratePNRFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		pnr := GeneratePNR()
		if len(pnr) < 8 || len(pnr) > 10 {
			t.Fatalf("PNR %q has length %d, want 8-10", pnr, len(pnr))
		}
		if !isUpperAlnum(pnr) {
			t.Fatalf("PNR %q contains characters outside A-Z0-9", pnr)
		}
	}
}

func TestGenerateBookingIDFormat(t *testing.T) {
	id := GenerateBookingID()
	if !strings.HasPrefix(id, "BK") {
		t.Fatalf("booking id %q missing BK prefix", id)
	}
	if !isUpperAlnum(id[2:]) {
		t.Fatalf("booking id %q contains characters outside A-Z0-9", id)
	}
}

func TestGeneratePNRIsNotConstant(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[GeneratePNR()] = true
	}
	if len(seen) < 2 {
		t.Fatalf("100 PNRs produced %d distinct values", len(seen))
	}
}
