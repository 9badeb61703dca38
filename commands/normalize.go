package commands

import (
	"github.com/kova98/karmakaze/enums"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <kind> [file]",
	Short: "Print normalised records for a raw payload",
	Long: `Unwraps a raw API payload of the given kind and prints it as records
with renamed fields. Kinds: comments, post, posts, subreddit, subreddits,
user, users, wiki_page. Reads stdin when no file is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNormalize,
}

var objectifyCmd = &cobra.Command{
	Use:   "objectify <kind> [file]",
	Short: "Print the objectified tree for a raw payload",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runObjectify,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(objectifyCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	return runStage(cmd, args, func(r *run, entity enums.Entity, payload any) (any, error) {
		return r.pipeline.Normalize(entity, payload)
	})
}

func runObjectify(cmd *cobra.Command, args []string) error {
	return runStage(cmd, args, func(r *run, entity enums.Entity, payload any) (any, error) {
		return r.pipeline.Objectify(entity, payload)
	})
}

type stage func(r *run, entity enums.Entity, payload any) (any, error)

func runStage(cmd *cobra.Command, args []string, fn stage) error {
	entity, err := enums.ParseEntity(args[0])
	if err != nil {
		return err
	}

	r, err := newRun()
	if err != nil {
		return err
	}

	payload, err := readPayload(cmd, args, 1)
	if err != nil {
		return err
	}

	out, err := fn(r, entity, payload)
	if err != nil {
		return err
	}
	return r.write(cmd, out)
}
