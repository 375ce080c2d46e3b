package workout

import (
	"github.com/lucasb-eyer/go-colorful"
)

// newColor generates the display colour of a freshly created sub-block.
var newColor = func() string {
	return colorful.HappyColor().Hex()
}
