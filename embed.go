package polarity

import "embed"

// dataFS holds the built-in lexicons, stop word lists and sentence
// segmentation parameters.
//
//go:embed data
var dataFS embed.FS
