package pricing

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

// fileConfig is the YAML shape of a rate configuration file:
//
//	rates:
//	  - pattern: "Machine 1"
//	    hourly_rate: 5000
//	  - pattern: "Machine 2"
//	    match: contains
//	    hourly_rate: 3500
//	billable:
//	  - Running
//	  - Setup
type fileConfig struct {
	Rates    []RateEntry `yaml:"rates"`
	Billable []string    `yaml:"billable"`
}

// FileProvider implements RateProvider backed by a YAML configuration file.
// The file is read once and held until Refresh is called.
type FileProvider struct {
	path string

	mu       sync.RWMutex
	card     RateCard
	billable BillableSet
	loaded   bool
}

// NewFileProvider creates a rate provider reading from the given YAML file.
// The file is validated on first load; load errors surface on GetRateCard.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// GetRateCard returns the rate card from the configuration file
func (p *FileProvider) GetRateCard(ctx context.Context) (RateCard, error) {
	if err := p.ensureLoaded(); err != nil {
		return RateCard{}, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.card, nil
}

// GetBillableSet returns the billable filter from the configuration file
func (p *FileProvider) GetBillableSet(ctx context.Context) (BillableSet, error) {
	if err := p.ensureLoaded(); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.billable, nil
}

// Refresh re-reads the configuration file
func (p *FileProvider) Refresh(ctx context.Context) error {
	return p.load()
}

// GetProviderName returns the name of this rate provider
func (p *FileProvider) GetProviderName() string {
	return "file"
}

func (p *FileProvider) ensureLoaded() error {
	p.mu.RLock()
	loaded := p.loaded
	p.mu.RUnlock()
	if loaded {
		return nil
	}
	return p.load()
}

func (p *FileProvider) load() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrRateConfigUnavailable, p.path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrRateConfigUnavailable, p.path, err)
	}

	card := RateCard{Entries: cfg.Rates}
	billable := BillableSet(cfg.Billable)

	warnings, err := Validate(card, billable)
	if err != nil {
		return fmt.Errorf("%w: validating %s: %v", ErrRateConfigUnavailable, p.path, err)
	}
	for _, w := range warnings {
		util.LogWarn(fmt.Sprintf("Rate config %s: %s", p.path, w))
	}

	p.mu.Lock()
	p.card = card
	p.billable = billable
	p.loaded = true
	p.mu.Unlock()

	util.LogDebug(fmt.Sprintf("Loaded rate config from %s: %d rate entries, %d billable activities",
		p.path, len(card.Entries), len(billable)))

	return nil
}
