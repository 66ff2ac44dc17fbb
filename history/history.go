// Package history remembers recently generated palettes.
package history

import (
	"sort"
	"time"

	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/filesystem"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var cacher = gache.New[map[string]*SavedPalette](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func get() (map[string]*SavedPalette, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}

	if expired || cached == nil {
		return make(map[string]*SavedPalette), nil
	}

	return cached, nil
}

// Get returns saved palettes, most recent first.
func Get() ([]*SavedPalette, error) {
	saved, err := get()
	if err != nil {
		return nil, err
	}

	palettes := lo.Values(saved)
	sort.Slice(palettes, func(i, j int) bool {
		return palettes[i].SavedAt.After(palettes[j].SavedAt)
	})

	return palettes, nil
}

// Save records a palette. Saving the same colors again only refreshes the
// record and bumps its count. The oldest records beyond history.limit are dropped.
// Nothing is saved when history.save_on_generate is off.
func Save(palette []colorspace.PaletteColor, baseHue float64, rule string, now time.Time) error {
	if !viper.GetBool(key.HistorySaveOnGenerate) || len(palette) == 0 {
		return nil
	}

	saved, err := get()
	if err != nil {
		return err
	}

	record := newSavedPalette(palette, baseHue, rule, now)
	if existing, ok := saved[record.encode()]; ok {
		record.Count += existing.Count
	}

	saved[record.encode()] = record
	trim(saved, viper.GetInt(key.HistoryLimit))

	return cacher.Set(saved)
}

func trim(saved map[string]*SavedPalette, limit int) {
	if limit <= 0 || len(saved) <= limit {
		return
	}

	records := lo.Values(saved)
	sort.Slice(records, func(i, j int) bool {
		return records[i].SavedAt.Before(records[j].SavedAt)
	})

	for _, r := range records[:len(records)-limit] {
		delete(saved, r.encode())
	}
}

// Remove deletes a record.
func Remove(palette *SavedPalette) error {
	saved, err := get()
	if err != nil {
		return err
	}

	delete(saved, palette.encode())
	return cacher.Set(saved)
}

// Clear forgets every palette.
func Clear() error {
	return cacher.Set(make(map[string]*SavedPalette))
}
