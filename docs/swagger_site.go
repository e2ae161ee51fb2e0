package docs

// @title           WTL Site API
// @version         1.0
// @description     City cab landing pages, cab search results and the reservation hand-off to the invoice page. The JSON api mirrors the search and reserve pages.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /
