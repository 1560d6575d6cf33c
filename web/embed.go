package web

import "embed"

// TemplatesFS contém os templates HTML das páginas
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS contém os arquivos estáticos (css/js)
//
//go:embed static/*
var StaticFS embed.FS
