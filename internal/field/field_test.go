package field

import "testing"

func TestAll_Order(t *testing.T) {
	want := []Region{BankCode, BankName, BranchCode, BranchName}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("got %d regions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRegion_IsCode(t *testing.T) {
	cases := map[Region]bool{
		BankCode:   true,
		BankName:   false,
		BranchCode: true,
		BranchName: false,
	}
	for r, want := range cases {
		if got := r.IsCode(); got != want {
			t.Errorf("%s.IsCode(): got %v, want %v", r, got, want)
		}
	}
}

func TestRegion_DefaultLanguage(t *testing.T) {
	if got := BankCode.DefaultLanguage(); got != "eng" {
		t.Errorf("code default language: got %q", got)
	}
	if got := BranchName.DefaultLanguage(); got != "jpn" {
		t.Errorf("name default language: got %q", got)
	}
}

func TestRegion_String(t *testing.T) {
	if got := BranchCode.String(); got != "BranchCode" {
		t.Errorf("got %q", got)
	}
	if got := Region(99).String(); got != "Unknown" {
		t.Errorf("got %q", got)
	}
}
