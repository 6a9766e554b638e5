package i18n

import "testing"

func TestT(t *testing.T) {
	SetLanguage(RU)
	defer SetLanguage(RU)

	if got := T("tray_quit"); got != "Выход" {
		t.Errorf("T(tray_quit) = %q", got)
	}

	SetLanguage(EN)
	if got := T("tray_quit"); got != "Quit" {
		t.Errorf("T(tray_quit) = %q", got)
	}

	// Unknown keys fall back to the key itself.
	if got := T("no_such_key"); got != "no_such_key" {
		t.Errorf("T(no_such_key) = %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Language
		wantOK bool
	}{
		{"ru", RU, true},
		{"RU", RU, true},
		{"en", EN, true},
		{"", "", false},
		{"de", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Parse(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTablesCoverSameKeys(t *testing.T) {
	for key := range translations[RU] {
		if _, ok := translations[EN][key]; !ok {
			t.Errorf("key %q missing from EN table", key)
		}
	}
	for key := range translations[EN] {
		if _, ok := translations[RU][key]; !ok {
			t.Errorf("key %q missing from RU table", key)
		}
	}
}
