// Package server holds the HTTP server configuration shared by the start
// command and the feature handlers (listen port and API key).
package server
