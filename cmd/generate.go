package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"slidecraft/internal/app"
	"slidecraft/internal/content"
	"slidecraft/internal/export"
	"slidecraft/internal/slides"
	"slidecraft/pkg/config"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	slideStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	bulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2)
	faintStyle  = lipgloss.NewStyle().Faint(true).PaddingLeft(2)
)

var (
	generateTopic   string
	generateRefFile string
	generateRefURL  string
	generateExport  string
	generateOutput  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a slide deck",
	Long: `Generate a slide deck from a topic. Reference material can be supplied
from a text or CSV file, or fetched from a URL. With no --topic the command
runs an interactive prompt.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateTopic, "topic", "t", "", "Presentation topic")
	generateCmd.Flags().StringVar(&generateRefFile, "ref-file", "", "Reference material file (.txt or .csv)")
	generateCmd.Flags().StringVar(&generateRefURL, "ref-url", "", "URL to fetch reference material from")
	generateCmd.Flags().StringVarP(&generateExport, "export", "e", "", "Export format after generation (pptx or pdf)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Override export output directory")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	topic := generateTopic
	if topic == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("What is your presentation about?").
					Value(&topic),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	var format export.Format
	if generateExport != "" {
		var err error
		format, err = export.ParseFormat(generateExport)
		if err != nil {
			return err
		}
	}

	referenceText, err := loadReference(ctx)
	if err != nil {
		return err
	}

	cfg := config.Load()
	if generateOutput != "" {
		cfg.Export.OutputDir = generateOutput
	}

	service, err := app.BuildService(ctx, cfg)
	if err != nil {
		return err
	}
	pipeline := app.NewPipeline(service)

	var deck *slides.Deck
	var genErr error
	if err := spinner.New().
		Title("Generating deck...").
		Action(func() {
			deck, genErr = pipeline.Generate(ctx, app.GenerateRequest{
				Topic:         topic,
				ReferenceText: referenceText,
			})
		}).
		Run(); err != nil {
		return err
	}
	if genErr != nil {
		return genErr
	}

	printDeck(deck)

	if format != "" {
		result, err := pipeline.Export(ctx, deck, format)
		if err != nil {
			return err
		}
		fmt.Printf("\nExported to %s\n", result.LocalPath)
		if result.RemoteURL != "" {
			fmt.Printf("Uploaded to %s\n", result.RemoteURL)
		}
	}

	return nil
}

func loadReference(ctx context.Context) (string, error) {
	switch {
	case generateRefFile != "":
		text, err := content.FromFile(generateRefFile)
		if err != nil {
			return "", fmt.Errorf("load reference file: %w", err)
		}
		return text, nil
	case generateRefURL != "":
		text, err := content.NewURLFetcher().Fetch(ctx, generateRefURL)
		if err != nil {
			return "", fmt.Errorf("fetch reference url: %w", err)
		}
		return text, nil
	}
	return "", nil
}

func printDeck(deck *slides.Deck) {
	fmt.Println(titleStyle.Render(deck.Topic))
	for _, slide := range deck.Slides {
		fmt.Println(slideStyle.Render(fmt.Sprintf("%d. %s (%s)", slide.ID, slide.Title, slide.Type)))
		for _, bullet := range slide.Bullets {
			fmt.Println(bulletStyle.Render("• " + bullet))
		}
		if slide.Image != "" {
			fmt.Println(faintStyle.Render(slide.Image))
		}
		fmt.Println()
	}
}
