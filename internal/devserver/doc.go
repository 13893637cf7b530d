// Package devserver hosts a jay app over HTTP for development.
//
// It serves rendered pages (GET /page?route=/x), a websocket stream
// (/stream) where each connection owns an isolated app context and
// drives it with navigate/rerender/expose/key messages, Prometheus
// metrics (/metrics) and a health endpoint.
package devserver
