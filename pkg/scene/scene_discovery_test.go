package scene

import (
	"errors"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"dragon_gold", "Dragon Gold"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	expected := []string{"default", "random", "textures", "golden"}
	names := ListScenes()
	if len(names) != len(expected) {
		t.Fatalf("Expected %d scenes, got %v", len(expected), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected scene %d to be %q, got %q", i, name, names[i])
		}
	}

	infos := ListSceneInfo()
	if len(infos) != len(expected) {
		t.Fatalf("Expected %d scene infos, got %d", len(expected), len(infos))
	}
	if infos[0].DisplayName != "Default" {
		t.Errorf("Expected display name Default, got %q", infos[0].DisplayName)
	}
}

func TestNewSceneByName(t *testing.T) {
	for _, name := range ListScenes() {
		t.Run(name, func(t *testing.T) {
			s, err := NewScene(name, Options{})
			if err != nil {
				t.Fatalf("NewScene(%q) failed: %v", name, err)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Scene has no shapes")
			}
			if err := s.GetSamplingConfig().Validate(); err != nil {
				t.Errorf("Scene sampling config invalid: %v", err)
			}
		})
	}
}

func TestNewSceneUnknown(t *testing.T) {
	_, err := NewScene("cornell-box", Options{})
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
