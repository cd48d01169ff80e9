package migrate

import "encoding/base64"

// placeholderB64 is a 70 byte 1x1 RGBA PNG, the smallest asset the game
// engine accepts in place of a texture it cannot find.
const placeholderB64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

var placeholderPNG = func() []byte {
	b, err := base64.StdEncoding.DecodeString(placeholderB64)
	if err != nil {
		panic("placeholder asset is corrupt: " + err.Error())
	}
	return b
}()

// PlaceholderPNG returns the fixed placeholder asset written for absent
// sources. Callers get a copy and may keep or mutate it freely.
func PlaceholderPNG() []byte {
	out := make([]byte, len(placeholderPNG))
	copy(out, placeholderPNG)
	return out
}
