package main

import (
	"errors"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/chrimaho/mdtk/internal/config"
	"github.com/chrimaho/mdtk/internal/ui"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to config file",
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	return config.Load(cmd.String("config"))
}

func errorCode(err error) string {
	var oopsErr oops.OopsError
	if errors.As(err, &oopsErr) {
		code, _ := oopsErr.Code().(string)
		return code
	}

	return ""
}

// reportCondition handles the no-op conditions of the transformer: a missing
// or non-markdown input, a document with no tab sections, or an absent
// section name. These end the command with a notice and a zero exit status;
// everything else stays an error.
func reportCondition(report *ui.Report, err error) bool {
	switch errorCode(err) {
	case "FILE_NOT_FOUND", "NOT_MARKDOWN", "NO_SECTIONS", "SECTION_ABSENT":
		report.Warnf("%s", err.Error())
		return true
	default:
		return false
	}
}

func usageError(usage string, requiredArgs, got int) error {
	return oops.
		Code("INVALID_ARGS").
		Hint("Usage: " + usage).
		Errorf("expected %d argument(s), got %d", requiredArgs, got)
}
