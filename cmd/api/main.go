package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "campus_security_backend/docs"
	"campus_security_backend/internal/adapter/handler"
	"campus_security_backend/internal/core/service"
)

const shutdownTimeout = 10 * time.Second

// @title Campus Web Access Security API
// @version 1.0
// @description Manages web filtering policies, network device inventory and security alerts for the campus security dashboard.
// @host localhost:8001
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "campus-security",
	Short: "Campus web access security management API",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the store to the demo data set",
	Long:  "Deletes every policy, device and alert, then inserts the demo data set.",
	RunE:  runSeed,
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.AddCommand(serveCmd, seedCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	seeder := a.Seeder()
	scheduler, err := service.NewDemoScheduler(seeder, a.cfg.Demo.ResetCron)
	if err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := handler.NewRouter(handler.Handlers{
		Policies:  handler.NewPolicyHandler(service.NewPolicyService(a.repos.Policies, a.clock, a.ids)),
		Devices:   handler.NewDeviceHandler(service.NewDeviceService(a.repos.Devices, a.clock, a.ids)),
		Alerts:    handler.NewAlertHandler(service.NewAlertService(a.repos.Alerts, a.clock, a.ids)),
		Dashboard: handler.NewDashboardHandler(service.NewStatsService(a.repos), a.store, a.cfg.Dashboard.StreamInterval),
		Seeder:    seeder,
		Scheduler: scheduler,
	}, a.cfg.Server.CORSOrigins)

	srv := &http.Server{
		Addr:    a.cfg.Server.Addr(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s...", srv.Addr)
		log.Println("Swagger documentation available at /swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runSeed(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Seeder().Initialize(cmd.Context())
}
