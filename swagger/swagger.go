// Package swagger serves the API reference page and its OpenAPI document.
package swagger

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:generate cp ../api/openapi.yaml swagger-ui/openapi.yaml

//go:embed swagger-ui/*
var content embed.FS

func GetHandler() (http.Handler, error) {
	subFS, err := fs.Sub(content, "swagger-ui")
	if err != nil {
		return nil, err
	}

	return http.FileServer(http.FS(subFS)), nil
}
