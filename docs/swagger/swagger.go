// Package docs Curation Microservice API.
//
// Content and social-graph aggregation service: creators register
// places, curate ordered routes of places inside districts, and any
// user can like a place or a route. Every listing is returned with
// batched like aggregates (count + viewer-liked flag).
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: X-User-ID
//	     in: header
//
// swagger:meta
package docs
