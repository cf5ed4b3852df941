package store

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/calnav/pkg/calendar"
)

const keyMode = "mode"

// Prefs remembers UI preferences between sessions. Only the view mode is
// stored; dates are never persisted.
type Prefs struct {
	d        *diskv.Diskv
	basePath string
}

// OpenPrefs opens (creating lazily) a preference store rooted at path. A
// leading ~ is expanded to the home directory.
func OpenPrefs(path string) (*Prefs, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store: prefs path is empty")
	}
	basePath, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("store: expand prefs path: %w", err)
	}
	return &Prefs{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024,
		}),
		basePath: basePath,
	}, nil
}

// BasePath returns the directory backing the store.
func (p *Prefs) BasePath() string { return p.basePath }

// Mode returns the stored view mode, if any.
func (p *Prefs) Mode() (calendar.Mode, bool) {
	if !p.d.Has(keyMode) {
		return calendar.ModeMonth, false
	}
	val, err := p.d.Read(keyMode)
	if err != nil {
		return calendar.ModeMonth, false
	}
	mode, err := calendar.ParseMode(string(val))
	if err != nil {
		return calendar.ModeMonth, false
	}
	return mode, true
}

// SetMode stores m as the preferred view mode.
func (p *Prefs) SetMode(m calendar.Mode) error {
	if err := p.d.Write(keyMode, []byte(m.String())); err != nil {
		return fmt.Errorf("store: write %s: %w", keyMode, err)
	}
	return nil
}
