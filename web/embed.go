package web

import (
	"embed"
	"net/http"
)

//go:embed index.html styles.css app.js
var content embed.FS

// FS serves the embedded browser client.
func FS() http.FileSystem {
	return http.FS(content)
}
