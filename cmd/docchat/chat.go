package docchat

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docportal/docchat/pkg/llm"
	"github.com/docportal/docchat/pkg/logger"
	"github.com/docportal/docchat/pkg/models"
)

var chatCmd = &cobra.Command{
	Use:   "chat [prompt]",
	Short: "Send a one-shot prompt to the configured LLM",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New(viper.GetString("log.level"), viper.GetString("log.format"))

		loader, err := models.NewLoader(log)
		if err != nil {
			return err
		}

		client, err := loader.LoadLLM()
		if err != nil {
			return err
		}
		defer client.Close()

		resp, err := client.Chat(cmd.Context(), []llm.Message{
			llm.NewUserMessage(strings.Join(args, " ")),
		})
		if err != nil {
			return err
		}

		fmt.Println(resp.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
