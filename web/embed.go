// Package web carries the embedded HTML templates and static assets of the
// chat front-end.
package web

import "embed"

//go:embed templates/* static/*
var FS embed.FS
