// account-client is a small administrative CLI for the Account REST
// API. It talks to a running server through the adapter package.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/account-service/internal/adapter"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `Usage: account-client [-s server-url] <command> [arguments]

Commands:
  health                          check service liveness
  info                            print service name and version
  list [-name N] [-email E]       list accounts, optionally filtered
  get <id>                        fetch one account
  create -name N -email E -address A [-phone P] [-date YYYY-MM-DD]
  update <id> -name N -email E -address A [-phone P] [-date YYYY-MM-DD]
  delete <id>                     remove one account
`

func main() {
	printBuildInfo()

	log := logger.NewLogger("account-client")

	serverURL := flag.String("s", "http://localhost:8080", "base URL of the account service")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	client := adapter.NewHTTPAccountsClient(adapter.HTTPClientConfig{BaseURL: *serverURL}, log)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, client, flag.Arg(0), flag.Args()[1:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(ctx context.Context, client adapter.AccountsClient, command string, args []string) error {
	switch command {
	case "health":
		if err := client.Health(ctx); err != nil {
			return err
		}
		fmt.Println("OK")
		return nil

	case "info":
		info, err := client.ServiceInfo(ctx)
		if err != nil {
			return err
		}
		return printJSON(info)

	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		name := fs.String("name", "", "filter by exact name")
		email := fs.String("email", "", "filter by exact email")
		if err := fs.Parse(args); err != nil {
			return err
		}

		accounts, err := client.List(ctx, models.AccountFilter{Name: *name, Email: *email})
		if err != nil {
			return err
		}
		return printJSON(accounts)

	case "get":
		id, err := idArg(args)
		if err != nil {
			return err
		}

		account, err := client.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(account)

	case "create":
		account, err := parseAccountFlags("create", args)
		if err != nil {
			return err
		}

		created, err := client.Create(ctx, account)
		if err != nil {
			return err
		}
		return printJSON(created)

	case "update":
		id, err := idArg(args)
		if err != nil {
			return err
		}

		account, err := parseAccountFlags("update", args[1:])
		if err != nil {
			return err
		}
		account.ID = id

		updated, err := client.Update(ctx, account)
		if err != nil {
			return err
		}
		return printJSON(updated)

	case "delete":
		id, err := idArg(args)
		if err != nil {
			return err
		}

		if err = client.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("account %d deleted\n", id)
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func idArg(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing account id argument")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account id %q: %w", args[0], err)
	}

	return id, nil
}

func parseAccountFlags(command string, args []string) (models.Account, error) {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	name := fs.String("name", "", "account holder name")
	email := fs.String("email", "", "account email")
	address := fs.String("address", "", "account address")
	phone := fs.String("phone", "", "account phone number")
	date := fs.String("date", "", "join date in YYYY-MM-DD format")
	if err := fs.Parse(args); err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Name:        *name,
		Email:       *email,
		Address:     *address,
		PhoneNumber: *phone,
	}

	if *date != "" {
		parsed, err := time.Parse(models.DateLayout, *date)
		if err != nil {
			return models.Account{}, fmt.Errorf("invalid join date %q: %w", *date, err)
		}
		account.DateJoined = models.DateOf(parsed)
	}

	return account, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
