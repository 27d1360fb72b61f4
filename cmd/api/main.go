package main

import (
	_ "gemtrade_backoffice/docs"
	"gemtrade_backoffice/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gem Trade Back Office API
// @version         1.0
// @description     Payment settlement and profit computation for the jewelry trading back office, backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
