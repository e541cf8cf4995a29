package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vectap/internal/adapter/logger"
	"vectap/internal/adapter/notify"
	"vectap/internal/adapter/platform"
	"vectap/internal/adapter/probe"
	"vectap/internal/adapter/runner"
	"vectap/internal/app"
	"vectap/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "vectap",
	Short: "Local Qdrant container and notification companion",
	Long: `Vectap manages the local Qdrant vector-database container an editor
extension depends on, and dispatches desktop or push notifications on
the extension's behalf.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/vectap/config.yaml)")
	rootCmd.PersistentFlags().String("container-name", "", "managed container name")
	rootCmd.PersistentFlags().Int("port", 0, "fixed host port for Qdrant")
	rootCmd.PersistentFlags().String("data-dir", "", "explicit storage directory override")
	rootCmd.PersistentFlags().String("workspace", "", "workspace directory scoping the default storage location")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("qdrant.container_name", rootCmd.PersistentFlags().Lookup("container-name"))
	_ = viper.BindPFlag("qdrant.port", rootCmd.PersistentFlags().Lookup("port"))
	_ = viper.BindPFlag("qdrant.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("qdrant.workspace", rootCmd.PersistentFlags().Lookup("workspace"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/vectap")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("VECTAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// wiring holds the assembled application services shared by the commands.
type wiring struct {
	cfg      *config.Config
	manager  *app.Manager
	notifier *app.Notifier
}

// buildWiring assembles adapters and services from the resolved config.
func buildWiring() (*wiring, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level)

	plat, err := platform.New()
	if err != nil {
		return nil, err
	}

	run := runner.New(log)

	manager := app.NewManager(app.Identity{
		Name:    cfg.Qdrant.ContainerName,
		Port:    cfg.Qdrant.Port,
		DataDir: plat.ResolveDataDir(cfg.Qdrant.DataDir, cfg.Qdrant.Workspace),
		Image:   cfg.Qdrant.Image,
	}, cfg.Qdrant.Runtime, run, probe.New(), log)

	notifier := app.NewNotifier(
		notify.NewSystemNotifier(run),
		notify.NewPushSender(),
		log,
		cfg.Notify.Endpoint,
		cfg.Notify.Topic,
	)

	return &wiring{cfg: cfg, manager: manager, notifier: notifier}, nil
}
