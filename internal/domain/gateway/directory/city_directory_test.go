package directory

import (
	"strings"
	"testing"
)

func TestNewStaticCityDirectoryDeduplicates(t *testing.T) {
	d := NewStaticCityDirectory([]string{"Tokyo, JP", "Oslo, NO", "Tokyo, JP", "Lima, PE", "Oslo, NO"})

	want := []string{"Tokyo, JP", "Oslo, NO", "Lima, PE"}
	got := d.All()
	if len(got) != len(want) || d.Len() != len(want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	d := NewStaticCityDirectory([]string{"Tokyo, JP"})
	entries := d.All()
	entries[0] = "Mutated"
	if d.All()[0] != "Tokyo, JP" {
		t.Fatal("mutating the result of All changed the directory")
	}
}

func TestDefaultCityDirectory(t *testing.T) {
	d := NewDefaultCityDirectory()
	if d.Len() < 150 || d.Len() > 300 {
		t.Errorf("default directory has %d entries, want 150-300", d.Len())
	}
	if d.Len() != len(worldCities) {
		t.Errorf("built-in list has duplicates: %d unique of %d", d.Len(), len(worldCities))
	}
	for _, entry := range d.All() {
		parts := strings.SplitN(entry, ", ", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			t.Errorf("entry %q is not in \"City, Region\" form", entry)
		}
	}
}
