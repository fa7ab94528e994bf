package assets

import (
	"embed"

	"github.com/benbjohnson/hashfs"
)

//go:embed css/*.css
var FS embed.FS

var HashFS = hashfs.NewFS(FS)

// Path returns the content-hashed URL of an embedded asset.
func Path(name string) string {
	return "/assets/" + HashFS.HashName(name)
}
