package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Storefront API Documentation",
        "title": "Storefront API",
        "version": "1.0"
    },
    "host": "localhost:3000",
    "basePath": "/api",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/products": {
            "get": {
                "tags": ["Products"],
                "summary": "List products",
                "description": "Returns the full product catalog",
                "responses": {
                    "200": {
                        "description": "Product list with count"
                    }
                }
            },
            "post": {
                "tags": ["Products"],
                "summary": "Create product",
                "description": "Adds a product to the catalog and assigns the next id",
                "responses": {
                    "201": {
                        "description": "Created product"
                    },
                    "400": {
                        "description": "Invalid request body"
                    },
                    "500": {
                        "description": "Persistence failure"
                    }
                }
            }
        },
        "/api/products/search": {
            "get": {
                "tags": ["Products"],
                "summary": "Search products",
                "description": "Case-insensitive substring match across name, description and category; without q the full catalog is returned",
                "parameters": [
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string",
                        "description": "Free-text search query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Matching products with count"
                    }
                }
            }
        },
        "/api/product/{id}": {
            "get": {
                "tags": ["Products"],
                "summary": "Get product",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Product record"},
                    "404": {"description": "Product not found"}
                }
            },
            "put": {
                "tags": ["Products"],
                "summary": "Update product",
                "description": "Overlays the provided fields; the id never changes",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Updated product"},
                    "404": {"description": "Product not found"},
                    "500": {"description": "Persistence failure"}
                }
            },
            "delete": {
                "tags": ["Products"],
                "summary": "Delete product",
                "description": "Removes the product and returns the removed record",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted product"},
                    "404": {"description": "Product not found"},
                    "500": {"description": "Persistence failure"}
                }
            }
        },
        "/api/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "User list with count"}
                }
            }
        },
        "/api/user/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "User record"},
                    "404": {"description": "User not found"}
                }
            }
        },
        "/api/orders": {
            "get": {
                "tags": ["Orders"],
                "summary": "List orders",
                "responses": {
                    "200": {"description": "Order list with count"}
                }
            },
            "post": {
                "tags": ["Orders"],
                "summary": "Create order",
                "description": "Validates every item against the catalog; unknown products or insufficient stock reject the whole order",
                "responses": {
                    "201": {"description": "Created order"},
                    "400": {"description": "Unknown product or insufficient stock"},
                    "500": {"description": "Persistence failure"}
                }
            }
        },
        "/api/cart/{userId}/add": {
            "post": {
                "tags": ["Cart"],
                "summary": "Add to cart",
                "description": "Adds a product to the user's in-memory cart; repeated adds accumulate the quantity",
                "parameters": [
                    {"name": "userId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Updated cart"}
                }
            }
        },
        "/api/cart/{userId}": {
            "get": {
                "tags": ["Cart"],
                "summary": "Get cart",
                "parameters": [
                    {"name": "userId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Cart contents, possibly empty"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Storefront API",
	Description:      "Storefront API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
