package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"riskmonitor/config"
	"riskmonitor/internal/domain/repository"
	"riskmonitor/internal/domain/service"
	logs "riskmonitor/internal/infra/log"
	"riskmonitor/internal/infra/persistence/redis"
	"riskmonitor/internal/infra/pubsub"
	"riskmonitor/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - export: Write the alert collection to a JSON file
// - import: Normalise a JSON file and replace the alert collection with it
// - check:  Report malformed or invalid stored records

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)

	exportOut := exportCmd.String("out", "alerts.json", "Output file, - for stdout")
	importIn := importCmd.String("in", "", "Input JSON file")
	importDryRun := importCmd.Bool("dry-run", false, "Report what would be imported without writing")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := alertctlFlags{
		Export: exportFlags{cmd: exportCmd, out: exportOut},
		Import: importFlags{cmd: importCmd, in: importIn, dryRun: importDryRun},
		Check:  checkFlags{cmd: checkCmd},
	}

	if err := runSubcommand(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type alertctlFlags struct {
	Export exportFlags
	Import importFlags
	Check  checkFlags
}

type exportFlags struct {
	cmd *flag.FlagSet
	out *string
}

type importFlags struct {
	cmd    *flag.FlagSet
	in     *string
	dryRun *bool
}

type checkFlags struct {
	cmd *flag.FlagSet
}

func runSubcommand(flags *alertctlFlags) error {
	switch os.Args[1] {
	case "export":
		return handleExport(flags)
	case "import":
		return handleImport(flags)
	case "check":
		return handleCheck(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleExport(flags *alertctlFlags) error {
	if err := flags.Export.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse export flags")
	}

	return withStores(func(ctx context.Context, stores storeSet) error {
		out := os.Stdout
		if *flags.Export.out != "-" {
			f, err := os.Create(*flags.Export.out)
			if err != nil {
				return errors.Wrap(err, "failed to create output file")
			}
			defer f.Close()
			out = f
		}

		count, err := exportAlerts(ctx, stores.Alerts, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d alerts\n", count)

		return nil
	})
}

func handleImport(flags *alertctlFlags) error {
	if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse import flags")
	}

	if *flags.Import.in == "" {
		return errors.New("-in flag is required for import command")
	}

	data, err := os.ReadFile(*flags.Import.in)
	if err != nil {
		return errors.Wrap(err, "failed to read input file")
	}

	return withStores(func(ctx context.Context, stores storeSet) error {
		importer := newImporter(stores.Config)
		report, err := importer.Import(ctx, stores.Alerts, data, *flags.Import.dryRun)
		if err != nil {
			return err
		}

		printReport(os.Stdout, report)
		if *flags.Import.dryRun {
			fmt.Println("Dry run, nothing written")
		}

		return nil
	})
}

func handleCheck(flags *alertctlFlags) error {
	if err := flags.Check.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse check flags")
	}

	return withStores(func(ctx context.Context, stores storeSet) error {
		report, err := newImporter(stores.Config).Check(ctx, stores.KV)
		if err != nil {
			return err
		}

		printReport(os.Stdout, report)
		if len(report.Problems) > 0 {
			return errors.Errorf("%d invalid records", len(report.Problems))
		}

		return nil
	})
}

// storeSet is the part of the application graph the commands need
type storeSet struct {
	fx.In

	Config *config.Config
	KV     repository.KeyValueStore
	Alerts repository.AlertStore
}

// withStores builds the configured store the same way the server does, so
// writes are announced to running instances.
func withStores(run func(ctx context.Context, stores storeSet) error) error {
	var stores storeSet

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			redis.New,
			func() service.InstanceID { return service.InstanceID("alertctl-" + uuid.NewString()) },
			pubsub.NewHub,
			pubsub.NewChangeTransport,
		),
		storage.Module,
		fx.Populate(&stores),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build storage")
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start storage")
	}
	defer func() { _ = app.Stop(ctx) }()

	return run(ctx, stores)
}

func printUsage() {
	fmt.Println("Usage: alertctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  export    Write the alert collection to a JSON file")
	fmt.Println("  import    Validate, normalise and store alerts from a JSON file")
	fmt.Println("  check     Report malformed or invalid stored records")
	fmt.Println("")
	fmt.Println("Use 'alertctl <command> -h' for more information about a command.")
}
