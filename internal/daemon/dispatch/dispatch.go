// Package dispatch maps command names to browser operations and enforces the
// boundary contract: handlers receive an ordered argument list and return an
// ordered result tuple, and no failure ever propagates to the transport.
// Reportable failures are logged and the command returns void (or an empty
// sequence, for list commands).
package dispatch

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/stagecraft/catalogd/browser"
	"github.com/stagecraft/catalogd/config"
	"github.com/stagecraft/catalogd/errors"
)

// Handler executes one command against the browser.
type Handler func(args []interface{}) ([]interface{}, error)

// Table routes command names to handlers.
type Table struct {
	browser *browser.Browser
	logger  *logrus.Entry

	mu       sync.Mutex
	defaults config.DefaultsConfig

	handlers map[string]Handler
}

// New builds the command table for the given browser.
func New(b *browser.Browser, defaults config.DefaultsConfig, logger *logrus.Entry) *Table {
	t := &Table{
		browser:  b,
		logger:   logger,
		defaults: defaults,
	}

	t.handlers = map[string]Handler{
		"browser/load":                    t.load,
		"browser/load_instrument":         t.loadInstrument,
		"browser/load_drum_kit":           t.loadDrumKit,
		"browser/load_audio_effect":       t.loadAudioEffect,
		"browser/load_midi_effect":        t.loadMidiEffect,
		"browser/load_default_instrument": t.loadDefaultInstrument,
		"browser/load_default_drum_kit":   t.loadDefaultDrumKit,
		"browser/preview":                 t.preview,
		"browser/stop_preview":            t.stopPreview,
		"browser/search":                  t.search,
		"browser/list_categories":         t.listCategories,
		"browser/list_children":           t.listChildren,
		"browser/hotswap_start":           t.hotswapStart,
		"browser/hotswap_load":            t.hotswapLoad,
	}

	return t
}

// SetDefaults swaps the curated preference lists, e.g. on config reload.
func (t *Table) SetDefaults(defaults config.DefaultsConfig) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.defaults = defaults
}

func (t *Table) getDefaults() config.DefaultsConfig {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.defaults
}

// Commands returns the registered command names.
func (t *Table) Commands() []string {
	names := make([]string, 0, len(t.handlers))
	for name := range t.handlers {
		names = append(names, name)
	}
	return names
}

// Dispatch runs a command. The returned tuple is nil for void outcomes;
// list commands return an empty non-nil tuple for zero results. Failures
// never escape: expected misses are logged as warnings, host and internal
// failures as errors, and the command returns void either way.
func (t *Table) Dispatch(command string, args []interface{}) (result []interface{}) {
	defer func() {
		if r := recover(); r != nil {
			// A host call blew up mid-walk. The dispatcher must survive it.
			t.logger.WithField("command", command).
				WithField("panic", r).
				Error("Command handler panicked")
			result = nil
		}
	}()

	handler, ok := t.handlers[command]
	if !ok {
		t.logger.WithField("command", command).Warn("Unknown command")
		return nil
	}

	result, err := handler(args)
	if err != nil {
		t.logFailure(command, err)
		return nil
	}
	return result
}

// logFailure maps error codes to log severity. Lookup misses are a normal
// outcome of best-effort commands; only genuine host or internal failures
// rate an error entry.
func (t *Table) logFailure(command string, err error) {
	entry := t.logger.WithField("command", command)
	switch errors.GetCode(err) {
	case errors.ErrCodeHostOperation, errors.ErrCodeInternal:
		entry.WithError(err).Error("Command failed")
	default:
		entry.WithError(err).Warn("Command not applicable")
	}
}
