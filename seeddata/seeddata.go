package seeddata

import _ "embed"

//go:embed favorites.json
var FavoritesJSON []byte
