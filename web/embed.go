package web

import "embed"

// FS holds the static assets compiled into the binary. It is served when
// STATIC_DIR is set to "embed".
//
//go:embed static/*
var FS embed.FS
