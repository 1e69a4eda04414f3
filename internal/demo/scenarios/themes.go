package scenarios

import (
	_ "embed"

	"github.com/zhubert/wachat/internal/demo"
)

//go:embed themes.yaml
var themesYAML []byte

// Themes shows the dark purple palette, the appearance modal and the help list.
var Themes = demo.MustParse(themesYAML)
