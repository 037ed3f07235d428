// Package web embeds the page templates, static assets and page copy.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html static content/*.md
var files embed.FS

// Templates holds the HTML page templates
func Templates() fs.FS {
	return mustSub("templates")
}

// Static holds the stylesheet and script served under /static/
func Static() fs.FS {
	return mustSub("static")
}

// Content holds the markdown page sections
func Content() fs.FS {
	return mustSub("content")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
