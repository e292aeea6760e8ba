package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/dixieflatline76/Lumen/config"
	"github.com/dixieflatline76/Lumen/pkg/command"
	"github.com/dixieflatline76/Lumen/pkg/cv"
	"github.com/dixieflatline76/Lumen/pkg/session"
	"github.com/dixieflatline76/Lumen/ui"
	"github.com/dixieflatline76/Lumen/util/log"
)

func main() {
	ok, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single instance lock: %v", err)
	}
	if !ok {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	log.Printf("%s %s starting", config.AppName, config.AppVersion)

	var dec session.Decoder = session.FileDecoder{}
	var opts []command.Option
	if cv.Available() {
		log.Println("Using OpenCV backend")
		dec = cv.Decoder{}
		opts = append(opts, command.WithMoments(cv.Moments))
	}

	a := app.NewWithID(config.AppID)
	ui.NewLumenApp(a, dec, command.NewDispatcher(opts...)).Run()
}
