package commands

import (
	"fmt"

	"github.com/kova98/karmakaze/enums"
	"github.com/kova98/karmakaze/envelope"
	"github.com/kova98/karmakaze/formatters"
	"github.com/spf13/cobra"
)

var cursorCmd = &cobra.Command{
	Use:   "cursor [file]",
	Short: "Print the pagination cursors and kind of a listing",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCursor,
}

var fieldsCmd = &cobra.Command{
	Use:   "fields <kind>",
	Short: "List the public field names of an entity kind",
	Args:  cobra.ExactArgs(1),
	RunE:  runFields,
}

func init() {
	rootCmd.AddCommand(cursorCmd)
	rootCmd.AddCommand(fieldsCmd)
}

func runCursor(cmd *cobra.Command, args []string) error {
	r, err := newRun()
	if err != nil {
		return err
	}

	payload, err := readPayload(cmd, args, 0)
	if err != nil {
		return err
	}

	out := map[string]any{
		"kind":   string(envelope.Kind(payload)),
		"after":  nil,
		"before": nil,
	}
	if after, ok := envelope.After(payload); ok {
		out["after"] = after
	}
	if before, ok := envelope.Before(payload); ok {
		out["before"] = before
	}
	return r.write(cmd, out)
}

func runFields(cmd *cobra.Command, args []string) error {
	entity, err := enums.ParseEntity(args[0])
	if err != nil {
		return err
	}
	for _, name := range formatters.Fields(entity) {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
