package main

import (
	_ "github.com/x17green/realest-sub003/docs"
	"github.com/x17green/realest-sub003/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Property Marketplace API
// @version         1.0
// @description     Real estate listings, search, inquiries and moderation backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
