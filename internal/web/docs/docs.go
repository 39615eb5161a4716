// Package docs registers the OpenAPI description of the students API with swag,
// which is what gin-swagger serves as doc.json.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openAPI string

type document struct{}

func (document) ReadDoc() string {
	return openAPI
}

func init() {
	swag.Register(swag.Name, document{})
}
