package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/alexflint/go-arg"

	"github.com/thatboisuss/ytmp3/internal/config"
	"github.com/thatboisuss/ytmp3/internal/download"
	"github.com/thatboisuss/ytmp3/internal/history"
	"github.com/thatboisuss/ytmp3/internal/metadata"
	"github.com/thatboisuss/ytmp3/internal/preview"
	"github.com/thatboisuss/ytmp3/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.thatboisuss.ytmp3"
	AppName = "ytmp3"

	WindowWidth  = 800
	WindowHeight = 600
)

type appArgs struct {
	Endpoint string `arg:"--endpoint" help:"metadata endpoint override"`
	Lang     string `arg:"--lang" help:"interface language (en, ru, pt)"`
	Dark     bool   `arg:"--dark" help:"start with the dark theme"`
}

func (appArgs) Version() string {
	return fmt.Sprintf("%s v%s", AppName, version)
}

func main() {
	var args appArgs
	arg.MustParse(&args)

	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	variant := theme.VariantLight
	if args.Dark {
		variant = theme.VariantDark
	}
	myApp.Settings().SetTheme(ui.NewAppTheme(variant))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	if args.Lang != "" {
		settings.SetLanguage(args.Lang)
	}
	endpoint := settings.GetMetadataEndpoint()
	if args.Endpoint != "" {
		endpoint = args.Endpoint
	}

	fetcher := metadata.NewService(endpoint)
	coordinator := preview.NewCoordinator(fetcher)
	store := history.NewStore()
	downloadSvc := download.NewService(store)
	defer downloadSvc.Close()

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, coordinator, downloadSvc, store)
	rootUI.SetDarkTheme(args.Dark)

	// Show and run
	myWindow.ShowAndRun()
}
