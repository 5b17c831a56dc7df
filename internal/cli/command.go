package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/linguist/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linguist [text]",
		Short: "Text translator with history and voice input",
		Long: `linguist translates text with the Google Cloud Translation API and keeps
a local history of everything it translated.

Input can be typed or spoken; spoken input is recorded from the microphone
and transcribed with OpenAI Whisper or Google Gemini.

Examples:
  linguist                          # Launch the desktop GUI (default)
  linguist --tui                    # Launch the terminal UI
  linguist "Good morning"           # Translate en -> es on the command line
  linguist Good morning             # Unquoted words are joined with spaces
  linguist --from auto --to de Hola # Detect the source language
  linguist --history                # Show the translation history
  linguist --export history.yaml    # Export the history as YAML
  linguist --export deck.apkg       # Export the history as Anki flashcards`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

// InputText joins the positional arguments into the text to translate
func InputText(args []string) string {
	return strings.Join(args, " ")
}

// DefaultDBPath returns the default location of the history database
func DefaultDBPath() string {
	return filepath.Join(internal.StateDir(), "linguist.db")
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.linguist.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.From, "from", "f", flags.From, "Source language code (use 'auto' to detect)")
	cmd.Flags().StringVarP(&flags.To, "to", "t", flags.To, "Target language code")
	cmd.Flags().StringVar(&flags.DBPath, "db", DefaultDBPath(), "History database file")
	cmd.Flags().BoolVar(&flags.TUIMode, "tui", false, "Launch the terminal UI instead of the desktop GUI")
	cmd.Flags().BoolVar(&flags.Dark, "dark", false, "Start in dark mode")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&flags.ShowHistory, "history", false, "Print the translation history")
	cmd.Flags().StringVar(&flags.ExportFile, "export", "", "Export the translation history (.json, .yaml, or Anki .csv/.apkg)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the history database and start with an empty history")
	cmd.Flags().BoolVar(&flags.ListLanguages, "list-languages", false, "List the supported languages")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List the OpenAI transcription models for the current API key")

	// Speech flags
	cmd.Flags().StringVar(&flags.SpeechProvider, "speech-provider", flags.SpeechProvider, "Speech transcription provider: openai, gemini or auto")
	cmd.Flags().IntVar(&flags.RecordSeconds, "record-seconds", flags.RecordSeconds, "Seconds of audio recorded per voice input")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.from", cmd.Flags().Lookup("from"))
	viper.BindPFlag("translate.to", cmd.Flags().Lookup("to"))
	viper.BindPFlag("storage.db", cmd.Flags().Lookup("db"))
	viper.BindPFlag("ui.dark", cmd.Flags().Lookup("dark"))
	viper.BindPFlag("speech.provider", cmd.Flags().Lookup("speech-provider"))
	viper.BindPFlag("speech.record_seconds", cmd.Flags().Lookup("record-seconds"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".linguist" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".linguist")
	}

	// Environment variables
	viper.SetEnvPrefix("LINGUIST")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetAPIKey retrieves the Google Cloud Translation API key from environment or config
func GetAPIKey() string {
	for _, env := range []string{"LINGUIST_API_KEY", "GOOGLE_TRANSLATE_API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}

	return viper.GetString("translate.api_key")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("speech.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("speech.gemini_key")
}
