package web

import "embed"

// FS holds the static assets served under /static, including the icon stylesheet.
//
//go:embed static/*
var FS embed.FS
