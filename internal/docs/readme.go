// Package docs regenerates README.md from the live command registry so the
// documented command list never drifts from the code.
package docs

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/keshon/tgclick/pkg/cmd"
)

// UpdateReadme renders the registry's command list into README.md.tmpl and
// writes the result to README.md in the working directory.
func UpdateReadme(reg *cmd.Registry) error {
	var buf bytes.Buffer
	for _, c := range reg.All() {
		names := make([]string, 0, len(c.Names))
		for _, n := range c.Names {
			names = append(names, "/"+n)
		}
		fmt.Fprintf(&buf, "- **%s** — %s\n", strings.Join(names, ", "), c.Description)
	}

	tmpl, err := template.ParseFiles("README.md.tmpl")
	if err != nil {
		return err
	}

	f, err := os.Create("README.md")
	if err != nil {
		return err
	}
	defer f.Close()

	data := struct {
		CommandSections string
	}{
		CommandSections: buf.String(),
	}
	return tmpl.Execute(f, data)
}
