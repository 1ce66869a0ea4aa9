// Package docs registers the OpenAPI description of the catalog API served under /swagger/.
// Regenerate from the handler annotations with go generate ./api/...
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.StatusResponse"}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.StatusResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/metrics/catalog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Product counts by lifecycle status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/repo.Metrics"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "description": "Text filters are case-insensitive substring matches combined with AND. Malformed paging or sorting input falls back to defaults.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Search, sort and paginate products",
                "parameters": [
                    {"type": "string", "description": "Name contains", "name": "name", "in": "query"},
                    {"type": "string", "description": "Product number contains", "name": "productNumber", "in": "query"},
                    {"type": "string", "description": "Color contains", "name": "color", "in": "query"},
                    {"type": "string", "description": "Product line contains", "name": "productLine", "in": "query"},
                    {"type": "string", "description": "Class contains", "name": "class", "in": "query"},
                    {"type": "string", "description": "Style contains", "name": "style", "in": "query"},
                    {"type": "string", "description": "Size contains", "name": "size", "in": "query"},
                    {"type": "integer", "description": "1-based page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 25)", "name": "limit", "in": "query"},
                    {
                        "enum": ["ProductID", "Name", "ProductNumber", "Color", "ListPrice", "Size", "Weight", "SellStartDate"],
                        "type": "string", "description": "Sort column", "name": "sortBy", "in": "query"
                    },
                    {"enum": ["asc", "desc"], "type": "string", "description": "Sort direction", "name": "sortDir", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/search.Result"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/search": {
            "get": {
                "description": "Text filters are case-insensitive substring matches combined with AND. Malformed paging or sorting input falls back to defaults.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Search, sort and paginate products",
                "parameters": [
                    {"type": "string", "description": "Name contains", "name": "name", "in": "query"},
                    {"type": "string", "description": "Product number contains", "name": "productNumber", "in": "query"},
                    {"type": "string", "description": "Color contains", "name": "color", "in": "query"},
                    {"type": "string", "description": "Product line contains", "name": "productLine", "in": "query"},
                    {"type": "string", "description": "Class contains", "name": "class", "in": "query"},
                    {"type": "string", "description": "Style contains", "name": "style", "in": "query"},
                    {"type": "string", "description": "Size contains", "name": "size", "in": "query"},
                    {"type": "integer", "description": "1-based page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 25)", "name": "limit", "in": "query"},
                    {
                        "enum": ["ProductID", "Name", "ProductNumber", "Color", "ListPrice", "Size", "Weight", "SellStartDate"],
                        "type": "string", "description": "Sort column", "name": "sortBy", "in": "query"
                    },
                    {"enum": ["asc", "desc"], "type": "string", "description": "Sort direction", "name": "sortDir", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/search.Result"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by ID",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Product"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/inventory": {
            "get": {
                "description": "Rows are ordered by location, shelf and bin. Unknown products have no rows.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Inventory of a product",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ProductInventory"}}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/price-history": {
            "get": {
                "description": "Most recent StartDate first. Unknown products have no rows.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List price history of a product",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ProductListPriceHistory"}}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.StatusResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "repo.Metrics": {
            "type": "object",
            "properties": {
                "active_products": {"type": "integer"},
                "discontinued_products": {"type": "integer"},
                "ended_products": {"type": "integer"},
                "total_products": {"type": "integer"}
            }
        },
        "models.Product": {
            "type": "object",
            "properties": {
                "ProductID": {"type": "integer"},
                "Name": {"type": "string"},
                "ProductNumber": {"type": "string"},
                "MakeFlag": {"type": "boolean"},
                "FinishedGoodsFlag": {"type": "boolean"},
                "Color": {"type": "string"},
                "SafetyStockLevel": {"type": "integer"},
                "ReorderPoint": {"type": "integer"},
                "StandardCost": {"type": "number"},
                "ListPrice": {"type": "number"},
                "Size": {"type": "string"},
                "SizeUnitMeasureCode": {"type": "string"},
                "WeightUnitMeasureCode": {"type": "string"},
                "Weight": {"type": "number"},
                "DaysToManufacture": {"type": "integer"},
                "ProductLine": {"type": "string"},
                "Class": {"type": "string"},
                "Style": {"type": "string"},
                "ProductSubcategoryID": {"type": "integer"},
                "ProductModelID": {"type": "integer"},
                "SellStartDate": {"type": "string"},
                "SellEndDate": {"type": "string"},
                "DiscontinuedDate": {"type": "string"},
                "rowguid": {"type": "string"},
                "ModifiedDate": {"type": "string"}
            }
        },
        "models.ProductInventory": {
            "type": "object",
            "properties": {
                "ProductID": {"type": "integer"},
                "LocationID": {"type": "integer"},
                "Shelf": {"type": "string"},
                "Bin": {"type": "integer"},
                "Quantity": {"type": "integer"},
                "rowguid": {"type": "string"},
                "ModifiedDate": {"type": "string"}
            }
        },
        "models.ProductListPriceHistory": {
            "type": "object",
            "properties": {
                "ProductID": {"type": "integer"},
                "StartDate": {"type": "string"},
                "EndDate": {"type": "string"},
                "ListPrice": {"type": "number"},
                "ModifiedDate": {"type": "string"}
            }
        },
        "search.Result": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}},
                "totalCount": {"type": "integer"},
                "currentPage": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Product Catalog API",
	Description:      "Read-only REST API for searching and browsing the product catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
