package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/magiconair/properties"
)

var (
	panelDir    = "."                   // Directory holding panel.properties
	environment *properties.Properties // Loaded panel preferences
)

// GetWindowTitle returns the configured window title.
func GetWindowTitle() string {
	return getProperty("PANEL_TITLE", "Menu Button Panel")
}

// GetLocale returns the configured UI locale tag, defaulting to "en".
func GetLocale() string {
	return getProperty("PANEL_LOCALE", "en")
}

// GetLatestKnownVersion returns the most recent release version recorded in
// the preferences, or "" when none is recorded.
func GetLatestKnownVersion() string {
	return getProperty("PANEL_LATEST_VERSION", "")
}

func getProperty(key, fallback string) string {
	if environment == nil {
		return fallback
	}
	value, ok := environment.Get(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

// InitEnv loads panel.properties from the panel directory, creating a
// commented template file on first run.
func InitEnv() {
	props := properties.NewProperties()
	envFilePath := filepath.Join(panelDir, "panel.properties")
	if _, err := os.Stat(envFilePath); os.IsNotExist(err) {
		props.Set("PANEL_LOCALE", "en")
		file, err := os.Create(envFilePath)
		if err != nil {
			log.Fatalf("Failed to create panel.properties file: %v", err)
		}
		defer file.Close()
		if _, err := props.Write(file, properties.UTF8); err != nil {
			log.Fatalf("Failed to write panel.properties file: %v", err)
		}
		rawString := `# Panel preferences. (remove the leading # to uncomment)

# Window title shown on the panel
#PANEL_TITLE=Menu Button Panel

# Most recent release version; an update banner is shown when it is newer
# than this build
#PANEL_LATEST_VERSION=1.2.0`

		if _, err := file.WriteString(rawString); err != nil {
			log.Fatalf("Failed to write comment to panel.properties file: %v", err)
		}
	}

	// Load the properties into the global variable environment
	environment = properties.NewProperties()
	content, err := os.ReadFile(envFilePath)
	if err != nil {
		log.Fatalf("Failed to read panel.properties file: %v", err)
	}
	if err := environment.Load(content, properties.UTF8); err != nil {
		log.Fatalf("Failed to load panel.properties file: %v", err)
	}

	log.Printf("Loaded properties from %s:", envFilePath)
	for _, key := range environment.Keys() {
		value, _ := environment.Get(key)
		log.Printf("  %s = %s", key, value)
	}
}
