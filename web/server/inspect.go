package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	UV           [2]float64             `json:"uv"`
	Properties   map[string]interface{} `json:"properties"`
}

func vec3Array(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material, hit *material.HitRecord) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		albedo := m.Albedo.Evaluate(hit.UV, hit.Point)
		properties["albedo"] = vec3Array(albedo)
		properties["color"] = hexColor(albedo)
		properties["texture"] = textureType(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vec3Array(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

func textureType(source material.ColorSource) string {
	switch t := source.(type) {
	case *material.SolidColor:
		return "solid"
	case *material.Checkers:
		return "checkers"
	case *material.ImageTexture:
		if t.Failed() {
			return "image (missing)"
		}
		return "image"
	default:
		return "unknown"
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vec3Array(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties
	default:
		return "unknown", properties
	}
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Shape     geometry.Shape // The shape that was hit
}

// inspectPixel casts a ray through the center of image pixel (x, y), row 0
// at the top, and returns the first object hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	config := sceneObj.GetSamplingConfig()
	s := (float64(pixelX) + 0.5) / float64(config.Width)
	t := (float64(config.Height-1-pixelY) + 0.5) / float64(config.Height)

	// Fixed seed so repeated inspections of a pixel agree
	ray := sceneObj.Camera.GetRay(s, t, core.NewSeededSampler(0))

	// Scan shapes directly so the hit shape itself is known
	var result InspectResult
	closest := math.Inf(1)
	for _, shape := range sceneObj.World.Shapes() {
		if hit, ok := shape.Hit(ray, renderer.ShadowAcneEpsilon, closest); ok {
			closest = hit.T
			result = InspectResult{Hit: true, HitRecord: hit, Shape: shape}
		}
	}
	return result
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := scene.NewScene(req.Scene, scene.Options{Sampling: req.samplingOverrides()})
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	config := sceneObj.GetSamplingConfig()

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= config.Width || pixelY < 0 || pixelY >= config.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material, result.HitRecord)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	response := InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vec3Array(result.HitRecord.Point),
		Normal:       vec3Array(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		FrontFace:    result.HitRecord.FrontFace,
		UV:           [2]float64{result.HitRecord.UV.X, result.HitRecord.UV.Y},
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}

	writeJSON(w, http.StatusOK, response)
}
