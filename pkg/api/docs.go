// Package api provides the read-only REST API over stored OrderScope results.
// @title OrderScope API
// @version 1.0
// @description REST API for querying liquidations checked for frontrunning or backrunning oracle price updates
// @contact.name API Support
// @contact.url https://github.com/goran-ethernal/OrderScope
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @basePath /api/v1
// @schemes http https
package api
