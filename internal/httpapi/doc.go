// Package httpapi wires the HTTP surface of the todo service.
// It keeps handlers thin; every endpoint is a fixed-status stub and the
// interesting behavior lives in the documentation explorer.
//
//	@title			Todo API
//	@version		0.1.0
//	@description	Instructional todo service with generated OpenAPI documentation.
//	@BasePath		/
package httpapi

//go:generate swag init -g internal/httpapi/doc.go -o docs --parseInternal
