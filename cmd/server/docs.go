package main

// @title Milliyetciler Archive API
// @version 1.0
// @description Digital magazine archive: magazines, issues, articles, authors, faceted search and per-user favorite lists.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /

// @tag.name Auth
// @tag.description Session endpoints

// @tag.name Lists
// @tag.description Favorite list endpoints

// @tag.name Users
// @tag.description User management endpoints

// @tag.name Content
// @tag.description Magazine, issue, article and author endpoints

// @tag.name Search
// @tag.description Faceted search endpoints

// @tag.name Health
// @tag.description Health check endpoints
