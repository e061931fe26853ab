package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/contextlens/internal/audio"
	"github.com/abhisek/contextlens/internal/llm"
	"github.com/spf13/cobra"
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>...",
	Short: "Synthesize text to speech",
	Long: "Synthesizes the given text with the configured speech provider and plays " +
		"it through the system audio player, or writes a WAV file with --output.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		voice, _ := cmd.Flags().GetString("voice")
		output, _ := cmd.Flags().GetString("output")

		cfg, ok := resolveLLMConfig()
		if !ok {
			return fmt.Errorf("no LLM API key found (set GEMINI_API_KEY)")
		}

		ctx := cmd.Context()
		speech, err := llm.NewSpeechProvider(ctx, cfg)
		if err != nil {
			if errors.Is(err, llm.ErrSpeechUnsupported) {
				return fmt.Errorf("provider %q does not support speech; use gemini", cfg.Provider)
			}
			return fmt.Errorf("speech provider: %w", err)
		}

		text := strings.Join(args, " ")
		a, err := speech.Synthesize(ctx, text, voice)
		if err != nil {
			return fmt.Errorf("synthesize: %w", err)
		}

		wav, err := audio.EncodeWAV(a.PCM, a.SampleRate)
		if err != nil {
			return fmt.Errorf("encode audio: %w", err)
		}

		if output != "" {
			if err := os.WriteFile(output, wav, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Printf("Audio written to %s\n", output)
			return nil
		}

		if !audio.Available() {
			return fmt.Errorf("no audio player found (afplay, aplay, or ffplay); use --output to save a WAV file")
		}

		player := audio.NewPlayer()
		done, err := player.Play(wav)
		if err != nil {
			return fmt.Errorf("play audio: %w", err)
		}
		select {
		case err := <-done:
			return err
		case <-time.After(10 * time.Minute):
			player.Stop()
			return fmt.Errorf("playback timed out")
		}
	},
}

func init() {
	speakCmd.Flags().StringP("voice", "v", "", "Prebuilt voice name (default: Puck)")
	speakCmd.Flags().StringP("output", "o", "", "Write a WAV file instead of playing")
}
