package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/MKhiriev/enpass-cli/internal/config"
	"github.com/MKhiriev/enpass-cli/internal/crypto"
	"github.com/MKhiriev/enpass-cli/internal/logger"
	"github.com/MKhiriev/enpass-cli/internal/output"
	"github.com/MKhiriev/enpass-cli/internal/service"
	"github.com/MKhiriev/enpass-cli/internal/store"
	"github.com/MKhiriev/enpass-cli/internal/tui"
	"github.com/MKhiriev/enpass-cli/internal/utils"
	"github.com/MKhiriev/enpass-cli/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		logger.NewLogger("enpass-cli", "").Fatal().Err(err).Msg("error getting configs")
	}

	command := flag.Arg(0)
	if command == "" {
		command = "export"
	}

	log := logger.NewLogger("enpass-cli", cfg.App.LogLevel)
	if command == "browse" {
		// Browse renders over the whole terminal; stderr log lines would
		// tear the UI.
		log = logger.NewTUILogger("enpass-cli", cfg.App.LogLevel)
	} else {
		printBuildInfo(log)
	}

	if cfg.Vault.Password == "" {
		cfg.Vault.Password, err = promptPassword()
		if err != nil {
			log.Fatal().Err(err).Msg("read master password")
		}
	}

	ctx := context.Background()

	version := models.FormatV5
	if cfg.Vault.FormatV6 {
		version = models.FormatV6
	}

	reader, err := store.OpenVault(ctx, cfg.Vault, version, log.GetChildLogger("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("open vault")
	}
	defer reader.Close()

	cipher := crypto.NewVaultCipherService()

	policy := service.PolicyAbort
	if cfg.Export.SkipErrors {
		policy = service.PolicySkip
	}

	var trace service.TraceFunc
	if cfg.App.LogLevel == "trace" {
		trace = func(uuid string, plaintextLen int) {
			log.Trace().Str("uuid", uuid).Int("plaintext_len", plaintextLen).Msg("card decrypted")
		}
	}

	exporter := service.NewExportService(reader, cipher, policy, trace, log.GetChildLogger("service"))

	filter := models.CardFilter{
		Category:       cfg.Export.Category,
		IncludeTrashed: cfg.Export.IncludeTrashed,
		IncludeDeleted: cfg.Export.IncludeDeleted,
	}

	switch command {
	case "export":
		err = runExport(ctx, exporter, version, filter, cfg.Export.OutputPath, log)
	case "browse":
		err = runBrowse(ctx, exporter, version, filter, log)
	case "copy":
		err = runCopy(ctx, exporter, version, filter, flag.Arg(1), log)
	default:
		err = fmt.Errorf("unknown command %q (want export, browse, or copy)", command)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func runExport(ctx context.Context, exporter *service.ExportService, version models.FormatVersion, filter models.CardFilter, outputPath string, log *logger.Logger) error {
	out := os.Stdout
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	summary, err := exporter.Run(ctx, version, filter, output.NewJSONLinesWriter(out))
	if err != nil {
		return err
	}

	log.Info().Int("exported", summary.Exported).Int("failed", summary.Failed).Msg("export finished")
	return nil
}

func runBrowse(ctx context.Context, exporter *service.ExportService, version models.FormatVersion, filter models.CardFilter, log *logger.Logger) error {
	sink := &output.CollectSink{}
	if _, err := exporter.Run(ctx, version, filter, sink); err != nil {
		return err
	}

	return tui.Browse(sink.Cards, log.GetChildLogger("tui"))
}

func runCopy(ctx context.Context, exporter *service.ExportService, version models.FormatVersion, filter models.CardFilter, query string, log *logger.Logger) error {
	if query == "" {
		return errors.New("copy needs a card uuid or title")
	}

	sink := &output.CollectSink{}
	if _, err := exporter.Run(ctx, version, filter, sink); err != nil {
		return err
	}

	card, err := findCard(sink.Cards, query)
	if err != nil {
		return err
	}

	password, ok := utils.FindPassword(utils.ExtractFields(card.Data))
	if !ok {
		return fmt.Errorf("card %q has no password field", card.Title)
	}

	if err = clipboard.WriteAll(password); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	log.Info().Str("uuid", card.UUID).Str("title", card.Title).Msg("password copied to clipboard")
	return nil
}

// findCard matches by uuid first, then by case-insensitive title. An
// ambiguous title is an error rather than a silent first-match.
func findCard(cards []models.Card, query string) (models.Card, error) {
	if normalized, ok := utils.NormalizeUUID(query); ok {
		for _, card := range cards {
			if cardUUID, valid := utils.NormalizeUUID(card.UUID); valid && cardUUID == normalized {
				return card, nil
			}
		}
		return models.Card{}, fmt.Errorf("no card with uuid %s", normalized)
	}

	var matches []models.Card
	for _, card := range cards {
		if strings.EqualFold(card.Title, query) {
			matches = append(matches, card)
		}
	}

	switch len(matches) {
	case 0:
		return models.Card{}, fmt.Errorf("no card titled %q", query)
	case 1:
		return matches[0], nil
	default:
		return models.Card{}, fmt.Errorf("%d cards titled %q, use the uuid instead", len(matches), query)
	}
}

func promptPassword() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("master password not set and stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, "Master password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}

	return string(password), nil
}

func printBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Info().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Msg("enpass-cli")
}
