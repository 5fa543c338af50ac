package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.yaml.in/yaml/v3"
)

// apiDocs is the OpenAPI document served under /swagger.
type apiDocs struct {
	spec []byte
	page []byte
}

var docs *apiDocs

var swaggerPage = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}} {{.Version}} - API Docs</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/swagger/spec',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`))

// SetSwaggerSpec parses the OpenAPI YAML and renders the UI page titled
// after its info block. It returns the document title.
func SetSwaggerSpec(spec []byte) (string, error) {
	var doc struct {
		Info struct {
			Title   string `yaml:"title"`
			Version string `yaml:"version"`
		} `yaml:"info"`
	}
	if err := yaml.Unmarshal(spec, &doc); err != nil {
		return "", fmt.Errorf("parse openapi spec: %w", err)
	}
	if doc.Info.Title == "" {
		return "", fmt.Errorf("openapi spec has no info.title")
	}

	var page bytes.Buffer
	err := swaggerPage.Execute(&page, struct{ Title, Version string }{doc.Info.Title, doc.Info.Version})
	if err != nil {
		return "", fmt.Errorf("render swagger page: %w", err)
	}
	docs = &apiDocs{spec: spec, page: page.Bytes()}
	return doc.Info.Title, nil
}

// SwaggerSpec serves the raw OpenAPI YAML.
func SwaggerSpec(c *gin.Context) {
	if docs == nil {
		c.String(http.StatusNotFound, "OpenAPI spec not loaded")
		return
	}
	c.Data(http.StatusOK, "application/x-yaml", docs.spec)
}

// SwaggerUI serves the Swagger UI page that loads /swagger/spec.
func SwaggerUI(c *gin.Context) {
	if docs == nil {
		c.String(http.StatusNotFound, "OpenAPI spec not loaded")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", docs.page)
}
