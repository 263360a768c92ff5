package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers the OpenAPI description of the hotel API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>hotel-service — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "hotel-service", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Hotel": {
        "type": "object",
        "properties": {
          "id": {"type":"string"},
          "name": {"type":"string"},
          "location": {"type":"string"},
          "price": {"type":"number","minimum":50},
          "rooms": {"type":"integer","minimum":1},
          "createdAt": {"type":"string","format":"date-time"},
          "updatedAt": {"type":"string","format":"date-time"}
        }
      },
      "NewHotel": {
        "type": "object",
        "required": ["name","location","price","rooms"],
        "properties": {
          "name": {"type":"string"},
          "location": {"type":"string"},
          "price": {"type":"number","minimum":50},
          "rooms": {"type":"integer","minimum":1}
        }
      },
      "Message": { "type": "object", "properties": { "message": {"type":"string"} } }
    }
  },
  "paths": {
    "/api/hotels": {
      "post": {
        "summary": "Create a hotel",
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/NewHotel"} } } },
        "responses": { "201": { "description": "Hotel successfully added!" }, "400": { "description": "validation failed; errors keyed by field" } }
      },
      "get": {
        "summary": "List all hotels",
        "responses": { "200": { "description": "array of hotels", "content": { "application/json": { "schema": {"type":"array","items":{"$ref":"#/components/schemas/Hotel"}} } } } }
      }
    },
    "/api/hotels/{id}": {
      "get": {
        "summary": "Get a hotel",
        "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}],
        "responses": { "200": { "description": "hotel" }, "404": { "description": "Hotel not found" } }
      },
      "delete": {
        "summary": "Delete a hotel",
        "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}],
        "responses": { "200": { "description": "Hotel deleted successfully" }, "404": { "description": "Hotel not found" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`
