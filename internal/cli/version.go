package cli

import (
	"io"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-downloader-cli/internal/constant"
	"github.com/ytget/yt-downloader-cli/internal/ui"
)

func newVersionCmd(deps *Dependencies) *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version and build metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			short := lo.Must(cmd.Flags().GetBool("short"))
			return printVersion(cmd.OutOrStdout(), deps.Settings.IsColored(), short)
		},
	}
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version")
	return versionCmd
}

const versionTemplate = `{{ accent "▇▇▇" }} {{ accent .App }}

  {{ faint "Version" }}      {{ .Version }}
  {{ faint "Git Commit" }}   {{ .Revision }}
  {{ faint "Build Date" }}   {{ .BuiltAt }}
  {{ faint "Platform" }}     {{ .OS }}/{{ .Arch }}
`

func printVersion(w io.Writer, colored, short bool) error {
	if short {
		_, err := io.WriteString(w, constant.Version+"\n")
		return err
	}

	versionInfo := struct {
		App      string
		Version  string
		Revision string
		BuiltAt  string
		OS       string
		Arch     string
	}{
		App:      constant.App,
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  lo.Ternary(strings.TrimSpace(constant.BuiltAt) == "", "unknown", strings.TrimSpace(constant.BuiltAt)),
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
	}

	accent, faint := func(s string) string { return s }, func(s string) string { return s }
	if colored {
		accent, faint = ui.Bold(ui.AccentColor), ui.Fg(ui.FaintColor)
	}

	t, err := template.New("version").Funcs(map[string]any{
		"accent": accent,
		"faint":  faint,
	}).Parse(versionTemplate)
	if err != nil {
		return err
	}
	return t.Execute(w, versionInfo)
}
