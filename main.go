package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/blinkratio/internal/config"
	"github.com/ytget/blinkratio/internal/favorites"
	"github.com/ytget/blinkratio/internal/reference"
	"github.com/ytget/blinkratio/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.blinkratio"
	AppName = "BlinkRatio"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	// Log version information
	fmt.Printf("BlinkRatio v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// The embedded catalog is validated at start-up
	catalog := reference.MustLoad()

	// Apply neon theme built from the catalog palette
	myApp.Settings().SetTheme(ui.NewNeonTheme(catalog))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	store := favorites.NewStore(config.NewPreferencesStorage(myApp))
	fmt.Printf("Loaded %d favorites\n", store.Len())

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, settings, store, catalog)
	defer rootUI.Close()
	rootUI.ShowOnboardingIfNeeded()

	// Show and run
	myWindow.ShowAndRun()
}
