package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"slidecraft/internal/app"
	"slidecraft/pkg/config"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the presentation assistant a question",
	Long:  `Ask for advice on structuring, wording, or delivering a presentation.`,
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return errors.New("please provide a question")
	}

	ctx := cmd.Context()

	service, err := app.BuildService(ctx, config.Load())
	if err != nil {
		return err
	}

	answer, err := app.NewPipeline(service).Ask(ctx, question)
	if err != nil {
		return err
	}

	fmt.Println(answer)
	return nil
}
