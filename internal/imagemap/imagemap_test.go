package imagemap_test

import (
	"testing"

	"github.com/kategengler/api-v2/internal/imagemap"

	"github.com/stretchr/testify/assert"
)

func TestDerive_KeepsSizedImages(t *testing.T) {
	icon := map[string]string{
		"image_34":      "https://a.example.com/t/34.png",
		"image_132":     "https://a.example.com/t/132.png",
		"image_default": "true",
		"color":         "#ff0000",
	}

	images := imagemap.Derive(icon)

	assert.Equal(t, map[string]string{
		"image_34":  "https://a.example.com/t/34.png",
		"image_132": "https://a.example.com/t/132.png",
	}, images)
}

func TestDerive_EmptyInput(t *testing.T) {
	assert.Empty(t, imagemap.Derive(nil))
	assert.NotNil(t, imagemap.Derive(nil))
	assert.Empty(t, imagemap.Derive(map[string]string{}))
}
