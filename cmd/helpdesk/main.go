// File path: cmd/helpdesk/main.go
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sanara-labs/helpdesk/internal/api"
	"github.com/sanara-labs/helpdesk/internal/auth"
	"github.com/sanara-labs/helpdesk/internal/chat"
	"github.com/sanara-labs/helpdesk/internal/common"
	"github.com/sanara-labs/helpdesk/internal/kb"
	"github.com/sanara-labs/helpdesk/internal/ledger"
	"github.com/sanara-labs/helpdesk/internal/llm"
	"github.com/sanara-labs/helpdesk/internal/memory"
	"github.com/sanara-labs/helpdesk/internal/sqlite"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("helpdesk: .env file not loaded", "error", err)
	} else {
		logger.Info("helpdesk: environment loaded from .env")
	}

	addr := flag.String("addr", ":8080", "listen address")
	sectionsPath := flag.String("sections", defaultSectionsPath(), "path to the section store file")
	dbPath := flag.String("db", defaultDBPath(), "path to the SQLite database")
	rosterCSV := flag.String("roster", "", "optional roster CSV to import at startup (emp_id,full_name,department)")
	ledgerCSV := flag.String("ledger", "", "optional leave ledger CSV to import at startup")
	seed := flag.Bool("seed", true, "seed the default section content when the store is empty")
	providerTimeout := flag.String("provider-timeout", "", "timeout for a single external provider call (e.g. 15s)")
	flag.Parse()

	logger.Info("helpdesk: startup initiated", "addr", *addr, "sections", *sectionsPath, "db", *dbPath)

	sections, err := memory.NewStore(*sectionsPath)
	if err != nil {
		logger.Error("helpdesk: section store init failed", "error", err)
		fmt.Println("section store error:", err)
		os.Exit(1)
	}
	if *seed {
		if err := sections.Seed(ctx, kb.DefaultSections()); err != nil {
			logger.Error("helpdesk: section seed failed", "error", err)
			fmt.Println("section seed error:", err)
			os.Exit(1)
		}
	}

	db, err := sqlite.Open(*dbPath)
	if err != nil {
		logger.Error("helpdesk: sqlite init failed", "error", err)
		fmt.Println("sqlite error:", err)
		os.Exit(1)
	}
	defer db.Close()

	if trimmed := strings.TrimSpace(*rosterCSV); trimmed != "" {
		count, err := importRoster(ctx, db, trimmed)
		if err != nil {
			logger.Error("helpdesk: roster import failed", "path", trimmed, "error", err)
			fmt.Println("roster import error:", err)
			os.Exit(1)
		}
		logger.Info("helpdesk: roster imported", "rows", count)
	}

	leaveLedger := ledger.NewService(db)
	if trimmed := strings.TrimSpace(*ledgerCSV); trimmed != "" {
		file, err := os.Open(trimmed)
		if err != nil {
			logger.Error("helpdesk: ledger file open failed", "path", trimmed, "error", err)
			fmt.Println("ledger import error:", err)
			os.Exit(1)
		}
		count, err := leaveLedger.ImportCSV(ctx, file)
		file.Close()
		if err != nil {
			logger.Error("helpdesk: ledger import failed", "path", trimmed, "error", err)
			fmt.Println("ledger import error:", err)
			os.Exit(1)
		}
		logger.Info("helpdesk: leave ledger imported", "rows", count)
	}

	provider := llm.NewProvider()
	logger.Info("helpdesk: llm provider ready", "provider", provider.Name())

	chatOpts := []chat.Option{chat.WithProvider(provider), chat.WithLedger(leaveLedger)}
	if trimmed := strings.TrimSpace(*providerTimeout); trimmed != "" {
		dur, err := time.ParseDuration(trimmed)
		if err != nil {
			logger.Error("helpdesk: invalid provider timeout", "value", trimmed, "error", err)
			fmt.Println("provider timeout error:", err)
			os.Exit(1)
		}
		chatOpts = append(chatOpts, chat.WithProviderTimeout(dur))
	}
	chatSvc := chat.NewService(sections, chatOpts...)
	authSvc := auth.NewService(db)

	server, err := api.NewServer(sections, chatSvc, authSvc)
	if err != nil {
		logger.Error("helpdesk: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("helpdesk: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("helpdesk: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultSectionsPath() string {
	return filepath.Join("data", "sections.jsonl")
}

func defaultDBPath() string {
	return filepath.Join("data", "helpdesk.db")
}

// importRoster loads employee rows from a CSV with an emp_id, full_name,
// department header.
func importRoster(ctx context.Context, db *sqlite.Store, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open roster: %w", err)
	}
	defer file.Close()
	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("parse roster csv: %w", err)
	}
	if len(records) < 2 {
		return 0, nil
	}
	index := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		index[strings.ToLower(strings.TrimSpace(header))] = i
	}
	empCol, ok := index["emp_id"]
	if !ok {
		return 0, fmt.Errorf("roster csv missing emp_id column")
	}
	imported := 0
	for _, row := range records[1:] {
		if empCol >= len(row) {
			continue
		}
		emp := sqlite.Employee{EmpID: strings.TrimSpace(row[empCol])}
		if emp.EmpID == "" {
			continue
		}
		if i, ok := index["full_name"]; ok && i < len(row) {
			emp.FullName = strings.TrimSpace(row[i])
		}
		if i, ok := index["department"]; ok && i < len(row) {
			emp.Department = strings.TrimSpace(row[i])
		}
		if err := db.InsertEmployee(ctx, emp); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
