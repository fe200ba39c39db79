package display

import (
	"fmt"
	"io"

	"github.com/backmassage/stampmatch/internal/term"
)

const banner = `     _                                _       _
 ___| |_ __ _ _ __ ___  _ __  _ __ ___   __ _| |_ ___| |__
/ __| __/ _` + "`" + ` | '_ ` + "`" + ` _ \| '_ \| '_ ` + "`" + ` _ \ / _` + "`" + ` | __/ __| '_ \
\__ \ || (_| | | | | | | |_) | | | | | | (_| | || (__| | | |
|___/\__\__,_|_| |_| |_| .__/|_| |_| |_|\__,_|\__\___|_| |_|
                       |_|
`

// PrintBanner writes the ASCII art banner to w; magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Paint(term.Magenta, banner))
}
