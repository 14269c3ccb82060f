package locales

import "testing"

func TestLocalize(t *testing.T) {
	tests := []struct {
		name string
		lang string
		id   string
		want string
	}{
		{"english", "en", "MenuActions", "Actions"},
		{"french", "fr", "MenuSystem", "Système"},
		{"french output label", "fr", "OutputLabel", "Dernière action"},
		{"unknown language falls back", "xx", "MenuActions", "Actions"},
		{"unknown id passes through", "en", "NoSuchMessage", "NoSuchMessage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := NewLocalizer(tt.lang)
			if got := loc.T(tt.id); got != tt.want {
				t.Errorf("T(%q) in %s = %q, want %q", tt.id, tt.lang, got, tt.want)
			}
		})
	}
}
