package worker

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"inqboard/internal/application/triage"
	"inqboard/internal/application/workflow"
	"inqboard/internal/infrastructure/analysis"
	"inqboard/internal/infrastructure/config"
	"inqboard/internal/infrastructure/database"
	"inqboard/internal/infrastructure/diagnostics"
	"inqboard/internal/infrastructure/repository"
	"inqboard/internal/infrastructure/scheduler"
	"inqboard/internal/infrastructure/telegram"
	"inqboard/internal/infrastructure/vault"
	sharedDB "inqboard/internal/shared/db"
	"inqboard/internal/shared/logger"
)

var (
	env  string
	once bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Start the triage worker",
		Long:  `Start the background worker that analyzes registered inquiries and queues them for admin approval.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&once, "once", false, "Run a single pipeline pass and exit")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting triage worker", "environment", env, "once", once)

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	gormDB := database.Get()
	inquiryRepo := repository.NewInquiryRepository(gormDB)
	logRepo := repository.NewProcessLogRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	serverRepo := repository.NewServerRepository(gormDB)

	txManager := sharedDB.NewTransactionManager(gormDB)
	wfEngine := workflow.NewEngine(inquiryRepo, logRepo, txManager, log)

	credentialVault := vault.New(cfg.Vault.Key)
	sshRunner := diagnostics.NewSSHRunner(
		time.Duration(cfg.Diagnostics.ConnectTimeoutSeconds)*time.Second,
		time.Duration(cfg.Diagnostics.ProbeTimeoutSeconds)*time.Second,
	)
	collector := diagnostics.NewCollector(sshRunner, credentialVault, log)

	analyzer, err := analysis.NewClient(&cfg.Analysis, log)
	if err != nil {
		logger.Fatal("failed to create analysis client", "error", err)
	}

	notifier := telegram.NewNotifier(cfg.Telegram, log)
	lock := triage.NewRunLock(cfg.Triage.LockFile)

	w := triage.NewWorker(
		inquiryRepo, logRepo, commentRepo, serverRepo,
		wfEngine, txManager, collector, analyzer, notifier,
		lock, cfg.Triage, log,
	)

	if once {
		return w.RunOnce(cmd.Context())
	}

	schedMgr, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		logger.Fatal("failed to create scheduler", "error", err)
	}

	interval := time.Duration(cfg.Triage.IntervalSeconds) * time.Second
	if err := schedMgr.RegisterTriageJob(w, interval); err != nil {
		logger.Fatal("failed to register triage job", "error", err)
	}
	schedMgr.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down worker")
	if err := schedMgr.Stop(); err != nil {
		return fmt.Errorf("failed to stop scheduler: %w", err)
	}

	log.Infow("worker exited")
	return nil
}
