package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	billingapp "theater-billing/internal/billing/application"
	billing "theater-billing/internal/billing/domain"
	"theater-billing/internal/billing/infrastructure/file"
	billinginterfaces "theater-billing/internal/billing/interfaces"
)

type config struct {
	playsPath    string
	invoicesPath string
	format       string
	outDir       string
	verbose      bool
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.playsPath, "plays", filepath.FromSlash("testdata/plays.yaml"), "play catalog file (.yaml, .yml or .json)")
	flag.StringVar(&cfg.invoicesPath, "invoices", filepath.FromSlash("testdata/invoices.json"), "invoices file, or - to read one JSON invoice from stdin")
	flag.StringVar(&cfg.format, "format", billinginterfaces.FormatText, "output format: text, html, json, pdf, xlsx")
	flag.StringVar(&cfg.outDir, "out", "", "directory for rendered statements (required for pdf and xlsx)")
	flag.BoolVar(&cfg.verbose, "v", false, "log statement generation to stderr")
	flag.Parse()

	if err := run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "statement:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer) error {
	if _, ok := billinginterfaces.ContentType(cfg.format); !ok {
		return fmt.Errorf("unsupported format %q", cfg.format)
	}
	binary := cfg.format == billinginterfaces.FormatPDF || cfg.format == billinginterfaces.FormatXLSX
	if binary && cfg.outDir == "" {
		return errors.New("-out is required for " + cfg.format)
	}

	invoices, err := readInvoices(cfg.invoicesPath, stdin)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	catalog, err := file.NewCatalogFile(cfg.playsPath)
	if err != nil {
		return err
	}
	service, err := billingapp.NewStatementService(catalog, logger)
	if err != nil {
		return err
	}

	for i, invoice := range invoices {
		data, err := service.Generate(ctx, invoice)
		if err != nil {
			return fmt.Errorf("invoice %d (%s): %w", i, invoice.Customer, err)
		}
		out, err := billinginterfaces.Render(cfg.format, data)
		if err != nil {
			return err
		}
		if cfg.outDir == "" {
			if _, err := stdout.Write(out); err != nil {
				return err
			}
			continue
		}
		path := filepath.Join(cfg.outDir, statementFileName(i, invoice.Customer, cfg.format))
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(stdout, path)
	}
	return nil
}

func readInvoices(path string, stdin io.Reader) ([]billing.Invoice, error) {
	if path == "-" {
		invoice, err := file.ReadInvoice(stdin)
		if err != nil {
			return nil, err
		}
		return []billing.Invoice{invoice}, nil
	}
	return file.LoadInvoices(path)
}

func statementFileName(index int, customer, format string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, customer)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "customer"
	}
	ext := format
	if format == billinginterfaces.FormatText {
		ext = "txt"
	}
	return fmt.Sprintf("statement-%03d-%s.%s", index+1, slug, ext)
}
