// Package imagemap derives a team's icon image map from the raw icon payload
// returned by an external identity provider.
package imagemap

import "strings"

const keyPrefix = "image_"

// Derive keeps only the sized image entries of an icon payload: keys with the
// "image_" prefix and a non-empty URL. Flag entries such as "image_default"
// carry no URL and are dropped. The result is never nil.
func Derive(icon map[string]string) map[string]string {
	images := make(map[string]string)
	for key, url := range icon {
		if !strings.HasPrefix(key, keyPrefix) {
			continue
		}
		if !strings.HasPrefix(url, "http") {
			continue
		}
		images[key] = url
	}
	return images
}
