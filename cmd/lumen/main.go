package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lumenhq/lumen/internal/profile"
	"github.com/lumenhq/lumen/server"
	"github.com/lumenhq/lumen/store"
	"github.com/lumenhq/lumen/store/db"
)

const greetingBanner = `Lumen - study your documents, keep your streak.`

var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "Document study companion with daily quizzes and streak tracking",
	Run: func(_ *cobra.Command, _ []string) {
		instanceProfile := &profile.Profile{
			Mode:             viper.GetString("mode"),
			Addr:             viper.GetString("addr"),
			Port:             viper.GetInt("port"),
			Data:             viper.GetString("data"),
			Driver:           viper.GetString("driver"),
			DSN:              viper.GetString("dsn"),
			AIAPIKey:         viper.GetString("ai-api-key"),
			AIBaseURL:        viper.GetString("ai-base-url"),
			AIEmbeddingModel: viper.GetString("ai-embedding-model"),
			AIChatModel:      viper.GetString("ai-chat-model"),
			Version:          version,
		}
		if err := instanceProfile.Validate(); err != nil {
			slog.Error("invalid configuration", "error", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		dbDriver, err := db.NewDBDriver(instanceProfile)
		if err != nil {
			slog.Error("failed to create db driver", "error", err)
			os.Exit(1)
		}
		storeInstance := store.New(dbDriver, instanceProfile)

		s, err := server.NewServer(ctx, instanceProfile, storeInstance)
		if err != nil {
			slog.Error("failed to create server", "error", err)
			os.Exit(1)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			slog.Info("shutting down")
			s.Shutdown(ctx)
			cancel()
		}()

		printGreetings(instanceProfile)

		if err := s.Start(ctx); err != nil {
			slog.Error("failed to start server", "error", err)
			cancel()
		}

		<-ctx.Done()
	},
}

var version = "0.1.0"

func init() {
	viper.SetDefault("mode", "dev")
	viper.SetDefault("addr", "")
	viper.SetDefault("port", 8081)
	viper.SetDefault("data", "")
	viper.SetDefault("driver", "sqlite")
	viper.SetDefault("ai-base-url", "https://api.openai.com/v1")
	viper.SetDefault("ai-embedding-model", "text-embedding-3-small")
	viper.SetDefault("ai-chat-model", "gpt-4o-mini")

	rootCmd.PersistentFlags().String("mode", "dev", `mode of the server, can be "prod" or "dev"`)
	rootCmd.PersistentFlags().String("addr", "", "address of the server")
	rootCmd.PersistentFlags().Int("port", 8081, "port of the server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", "database driver")
	rootCmd.PersistentFlags().String("dsn", "", "database source name")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("lumen")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func printGreetings(p *profile.Profile) {
	fmt.Println(greetingBanner)
	fmt.Printf("version %s, mode %s, port %d, data %s\n", p.Version, p.Mode, p.Port, p.Data)
	if p.IsAIEnabled() {
		fmt.Println("AI chat: enabled")
	} else {
		fmt.Println("AI chat: disabled (set LUMEN_AI_API_KEY to enable)")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
