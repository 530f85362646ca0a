package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/simaogato/wealthflow-wallet/internal/adapter/repository/memory"
	"github.com/simaogato/wealthflow-wallet/internal/config"
	"github.com/simaogato/wealthflow-wallet/internal/domain"
	"github.com/simaogato/wealthflow-wallet/internal/usecase/dashboard"
	"github.com/simaogato/wealthflow-wallet/internal/usecase/keypad"
	"github.com/simaogato/wealthflow-wallet/internal/usecase/seeder"
	"github.com/simaogato/wealthflow-wallet/internal/usecase/support"
	"github.com/simaogato/wealthflow-wallet/internal/usecase/transfer"
)

// options are the command line settings of one demo run
type options struct {
	keys       []string // Keypad keys: "0"-"9", ".", "delete"
	search     string   // Support agent name filter
	addName    string   // Beneficiary to add and send to
	showKeypad bool
}

// Usage: wallet [-search name] [-add name] [-keypad] [key ...]
// Each argument is a keypad key; the typed amount is sent to the configured default
// beneficiary, or to the one added with -add. Without keys "1 0 0" is typed.
func main() {
	var opts options
	flag.StringVar(&opts.search, "search", "", "filter support agents by name")
	flag.StringVar(&opts.addName, "add", "", "add a beneficiary and send to it")
	flag.BoolVar(&opts.showKeypad, "keypad", false, "print the keypad layout")
	flag.Parse()
	opts.keys = flag.Args()

	// 1. Load configuration
	config.LoadEnv()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Initialize Repositories (in memory)
	beneficiaryRepo := memory.NewBeneficiaryRepository()
	activityRepo := memory.NewActivityRepository()
	agentRepo := memory.NewSupportAgentRepository()

	fixtureSeeder := seeder.NewFixtureSeeder(beneficiaryRepo, activityRepo, agentRepo)
	if err := fixtureSeeder.Seed(ctx); err != nil {
		log.Fatalf("Failed to seed fixtures: %v", err)
	}
	log.Println("Fixtures seeded successfully")

	// 3. Initialize Services (Use Cases)
	generator := transfer.NewGenerator(transfer.NewRandomSource(cfg.RandomSeed), transfer.SystemClock)
	transferService := transfer.NewTransferService(beneficiaryRepo, generator, cfg.TransferLatency)
	dashboardService := dashboard.NewDashboardService(activityRepo, cfg.AvailableBalance, cfg.LoginLatency)
	supportService := support.NewSupportService(agentRepo)

	if err := run(ctx, cfg, opts, dashboardService, supportService, transferService); err != nil {
		msg, code := exitStatus(err)
		if code == 0 {
			fmt.Println(msg)
			return
		}
		log.Println(msg)
		os.Exit(code)
	}
}

// exitStatus maps a run error to the line reported to the user and the process exit code.
// Interrupting the demo while a transfer is pending is not a failure.
func exitStatus(err error) (string, int) {
	switch {
	case err == nil:
		return "", 0
	case transfer.IsCancelled(err):
		return "transfer cancelled", 0
	case errors.Is(err, transfer.ErrNothingToSend):
		return fmt.Sprintf("Nothing to send: %v", err), 2
	default:
		return fmt.Sprintf("Wallet demo failed: %v", err), 1
	}
}

func run(
	ctx context.Context,
	cfg config.Config,
	opts options,
	dashboardService *dashboard.DashboardService,
	supportService *support.SupportService,
	transferService *transfer.TransferService,
) error {
	home, err := dashboardService.SignIn(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Total Balance %s\n", home.FormattedBalance)
	for _, line := range home.RecentActivity {
		fmt.Printf("  %-22s %-16s %10s\n", line.Title, line.Timestamp, line.Amount)
	}

	online, err := supportService.Online(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d support agents online\n", len(online))

	if opts.search != "" {
		agents, err := supportService.Search(ctx, opts.search)
		if err != nil {
			return err
		}
		for _, agent := range agents {
			status := "offline"
			if agent.Online {
				status = "online"
			}
			fmt.Printf("  %-16s %-20s %s\n", agent.Name, agent.Role, status)
		}
	}

	entry := keypad.NewEntry(cfg.AvailableBalance, cfg.DefaultBeneficiaryID)
	recipientID := cfg.DefaultBeneficiaryID
	if opts.addName != "" {
		added, err := transferService.AddBeneficiary(ctx, opts.addName, "avatar")
		if err != nil {
			return err
		}
		recipientID = added.ID
	}
	if err := transferService.SelectBeneficiary(ctx, entry, recipientID); err != nil {
		return err
	}

	if opts.showKeypad {
		for _, row := range keypad.Layout() {
			fmt.Printf("  %s\n", strings.Join(row, "  "))
		}
	}

	keys := opts.keys
	if len(keys) == 0 {
		keys = []string{"1", "0", "0"}
	}
	for _, key := range keys {
		entry.Press(key)
		fmt.Printf("[%-6s] $%s\n", key, entry.Display())
	}
	fmt.Println(home.AvailableBalanceLabel)
	fmt.Println(entry.SendLabel())

	outcome, err := transferService.Send(ctx, entry)
	if err != nil {
		return err
	}

	printOutcome(outcome)
	return nil
}

func printOutcome(outcome *domain.TransferOutcome) {
	fmt.Println(outcome.Title())
	fmt.Println(outcome.FormattedAmount())
	fmt.Printf("Beneficiary     %s\n", outcome.Beneficiary.Name)
	fmt.Printf("Transaction ID  %s\n", outcome.TransactionID)
	fmt.Printf("Date & Time     %s\n", outcome.Timestamp)
	if outcome.FailureReason != "" {
		fmt.Printf("Failure Reason  %s\n", outcome.FailureReason)
	}
}
