package classify

import "testing"

func TestCategorizeKnownExtensions(t *testing.T) {
	for _, category := range Categories() {
		for _, ext := range category.Extensions {
			if got := Categorize(ext); got != category.Name {
				t.Errorf("Categorize(%q) = %q, want %q", ext, got, category.Name)
			}
		}
	}
}

func TestCategorizeFallback(t *testing.T) {
	for _, ext := range []string{".xyz", ".exe", ".iso", "."} {
		if got := Categorize(ext); got != Fallback {
			t.Errorf("Categorize(%q) = %q, want %q", ext, got, Fallback)
		}
	}
}

func TestCategorizeDeclaredOrder(t *testing.T) {
	categories := Categories()
	want := []string{"images", "documents", "videos", "audio", "archives", "code"}
	if len(categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(categories))
	}
	for i, name := range want {
		if categories[i].Name != name {
			t.Errorf("category %d = %q, want %q", i, categories[i].Name, name)
		}
	}
}

func TestExtensionOf(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"photo.jpg", ".jpg"},
		{"photo.JPG", ".jpg"},
		{"archive.tar.gz", ".gz"},
		{"README", ""},
		{".gitignore", ""},
		{".config.json", ".json"},
		{"trailing.", "."},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExtensionOf(tc.name); got != tc.want {
			t.Errorf("ExtensionOf(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCategorizeCaseInsensitiveViaExtraction(t *testing.T) {
	upper := Categorize(ExtensionOf("PHOTO.JPG"))
	lower := Categorize(ExtensionOf("photo.jpg"))
	if upper != lower || upper != "images" {
		t.Fatalf("expected identical classification for case variants, got %q and %q", upper, lower)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("images"); got != "Images" {
		t.Fatalf("DisplayName(images) = %q", got)
	}
	if got := DisplayName(Fallback); got != "Outros" {
		t.Fatalf("DisplayName(fallback) = %q", got)
	}
}
