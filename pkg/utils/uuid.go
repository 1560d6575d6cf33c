package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateViewerID gera o identificador anônimo gravado no cookie do visitante
func GenerateViewerID() (string, error) {
	return gonanoid.Generate(characters, 21)
}
