package scene

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScene is returned by NewScene for a name no built-in scene answers to
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by NewScene
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type sceneEntry struct {
	info  SceneInfo
	build func(Options) *Scene
}

// builtInScenes is ordered as scenes are listed
var builtInScenes = []sceneEntry{
	{
		info:  SceneInfo{ID: "default", Description: "Mirror, green and blue spheres on a grey ground"},
		build: NewDefaultScene,
	},
	{
		info:  SceneInfo{ID: "random", Description: "Grid of random small spheres around three large ones"},
		build: NewRandomScene,
	},
	{
		info:  SceneInfo{ID: "textures", Description: "Checkered ground, image-mapped globe, glass and metal"},
		build: NewTextureScene,
	},
	{
		info:  SceneInfo{ID: "golden", Description: "Single diffuse sphere used for regression renders"},
		build: NewGoldenScene,
	},
}

// NewScene builds the built-in scene called name
func NewScene(name string, opts Options) (*Scene, error) {
	for _, entry := range builtInScenes {
		if entry.info.ID == name {
			return entry.build(opts), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(ListScenes(), ", "))
}

// ListScenes returns the names of every built-in scene
func ListScenes() []string {
	names := make([]string, 0, len(builtInScenes))
	for _, entry := range builtInScenes {
		names = append(names, entry.info.ID)
	}
	return names
}

// ListSceneInfo returns metadata for every built-in scene
func ListSceneInfo() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtInScenes))
	for _, entry := range builtInScenes {
		info := entry.info
		info.DisplayName = titleCase(info.ID)
		infos = append(infos, info)
	}
	return infos
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
