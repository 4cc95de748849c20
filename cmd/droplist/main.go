package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/combo"
	"droplist/internal/config"
	"droplist/internal/domain"
	"droplist/internal/eventbus"
	"droplist/internal/registry"
	"droplist/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a .droplist.toml config")
	flag.StringVar(&configPath, "c", "", "Path to a .droplist.toml config (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("droplist.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg := loadConfig(configPath)

	bus := eventbus.New()
	reg := registry.New()

	opts := combo.Options{
		Multiple:                 cfg.Multiple,
		Search:                   cfg.Search,
		Clearable:                cfg.Clearable,
		HighlightFirstItemOnOpen: cfg.HighlightFirst,
		MoveFocusOnTab:           cfg.MoveFocusOnTab,
		RTL:                      cfg.RTL,
		A11y: combo.A11yMessages{
			OnAdd: func(item domain.Item, selected []domain.Item) string {
				return fmt.Sprintf("%s has been selected.", item.String())
			},
			OnRemove: func(item domain.Item, selected []domain.Item) string {
				return fmt.Sprintf("%s has been removed.", item.String())
			},
		},
	}
	if cfg.Fuzzy {
		opts.Filter = fuzzyFilter
	}

	engine := combo.NewController(bus, opts, cfg.DomainItems())
	model := ui.NewModel(bus, reg, engine, cfg.Placeholder)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetHelpOps(ui.NewHelpOps(p))

	// Timer-driven events (announcement clears) originate off the
	// program goroutine; forward them in as messages.
	unsub := bus.Subscribe(eventbus.EventAnnouncement, func(e eventbus.DomainEvent) {
		go p.Send(ui.EventMsg{Event: e})
	})
	defer unsub()

	log.Printf("Starting droplist demo (multiple=%v search=%v fuzzy=%v)", cfg.Multiple, cfg.Search, cfg.Fuzzy)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		path = ".droplist.toml"
	}
	if _, err := os.Stat(path); err == nil {
		if cfg, err := config.LoadFromPath(path); err == nil {
			log.Printf("Loaded config from %s", path)
			return cfg
		} else {
			log.Printf("Error loading config %s: %v", path, err)
		}
	}
	return config.DefaultConfig()
}

// fuzzyFilter ranks candidates by edit distance to the query, keeping
// substring matches first and near misses (distance <= 2) after them.
func fuzzyFilter(candidates []domain.Item, query string) []domain.Item {
	if query == "" {
		return candidates
	}
	q := strings.ToLower(query)

	type ranked struct {
		item domain.Item
		rank int
	}
	var kept []ranked
	for _, it := range candidates {
		label := strings.ToLower(it.String())
		switch {
		case strings.Contains(label, q):
			kept = append(kept, ranked{it, 0})
		case levenshtein.ComputeDistance(q, label) <= 2:
			kept = append(kept, ranked{it, levenshtein.ComputeDistance(q, label)})
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].rank < kept[j].rank })

	out := make([]domain.Item, len(kept))
	for i, r := range kept {
		out[i] = r.item
	}
	return out
}
