// Package docs registers the OpenAPI document served at /swagger.
//
// The paths section is produced from the handler annotations by
// `swag init -g cmd/server/main.go -o docs`, which overwrites this file.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}",
        "contact": {"name": "Rentals API Support"},
        "license": {"name": "Apache 2.0", "url": "http://www.apache.org/licenses/LICENSE-2.0.html"}
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "tags": [
        {"name": "clients", "description": "Guests who book properties"},
        {"name": "properties", "description": "Rental units"},
        {"name": "reservations", "description": "Stays and their lifecycle"},
        {"name": "payments", "description": "Payments with transaction references and audit history"},
        {"name": "valuations", "description": "Guest reviews of a stay"},
        {"name": "system", "description": "Liveness and build information"}
    ],
    "paths": {}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Rentals Backend API",
	Description:      "Vacation rental reservations: clients, properties, reservations, payments and valuations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
