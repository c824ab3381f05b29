package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RunIDLength keeps run IDs short enough to read out loud but wide enough
// to make collisions irrelevant for a run history.
const RunIDLength = 12

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, RunIDLength)
}
