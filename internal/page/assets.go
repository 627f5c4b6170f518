package page

import (
	"embed"
	"io/fs"
)

//go:embed assets/templates/*.tmpl assets/static/*
var assets embed.FS

func staticFS() fs.FS {
	sub, err := fs.Sub(assets, "assets/static")
	if err != nil {
		panic(err)
	}
	return sub
}
