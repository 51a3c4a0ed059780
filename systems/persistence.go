package systems

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/quasilyte/gdata"

	"github.com/automoto/smoothtick/loop"
	"github.com/automoto/smoothtick/scene"
)

// SavedSettings represents the loop settings stored on disk.
type SavedSettings struct {
	TickRate    float64  `json:"tickRate"`
	RenderCapMs int64    `json:"renderCapMs"`
	Interpolate bool     `json:"interpolate"`
	Groups      []string `json:"groups"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "smoothtick",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads saved loop settings from disk. Returns nil without error
// when nothing is saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves loop settings to disk.
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings captures the driver's current configuration and saves
// it.
func SaveCurrentSettings(d *loop.Driver) {
	saved := &SavedSettings{
		TickRate:    d.TickRate(),
		RenderCapMs: d.RenderCap().Milliseconds(),
		Interpolate: d.Interpolate(),
		Groups:      d.Groups().Names(),
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings applies loaded settings to the driver. Invalid values
// are logged and skipped so a stale save never breaks startup.
func ApplySavedSettings(d *loop.Driver, saved *SavedSettings) {
	if saved == nil {
		return
	}

	if err := d.SetTickRate(saved.TickRate); err != nil {
		log.Printf("Warning: Ignoring saved tick rate: %v", err)
	} else {
		SetTickRate(saved.TickRate)
	}
	d.SetRenderCap(time.Duration(saved.RenderCapMs) * time.Millisecond)
	d.SetInterpolate(saved.Interpolate)

	if len(saved.Groups) > 0 {
		groups, err := scene.ParseGroups(saved.Groups)
		if err != nil {
			log.Printf("Warning: Ignoring saved groups %q: %v",
				strings.Join(saved.Groups, ","), err)
			return
		}
		d.SetGroups(groups)
	}
}
