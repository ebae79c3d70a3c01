package docchat

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docportal/docchat/pkg/embedder"
	"github.com/docportal/docchat/pkg/llm"
	"github.com/docportal/docchat/pkg/logger"
	"github.com/docportal/docchat/pkg/models"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Resolve and print the configured provider models",
	Long: `Resolves credentials and configuration and constructs both client
handles as a dry run, printing the effective provider and model selection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New(viper.GetString("log.level"), viper.GetString("log.format"))

		loader, err := models.NewLoader(log)
		if err != nil {
			return err
		}

		emb, err := loader.LoadEmbeddings()
		if err != nil {
			return err
		}
		defer emb.Close()
		if g, ok := emb.(*embedder.GoogleEmbedder); ok {
			fmt.Printf("embeddings: google %s (%d dimensions)\n", g.Model(), g.Dimensions())
		}

		chat, err := loader.LoadLLM()
		if err != nil {
			return err
		}
		defer chat.Close()
		if c, ok := chat.(*llm.GroqClient); ok {
			fmt.Printf("llm: groq %s (temperature %g)\n", c.Model(), c.Temperature())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
