// snsweb serves a status page over a directory of sns WES analysis outputs
package main

import (
	"embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	snsclasses "github.com/NYU-Molecular-Pathology/sns-classes"
	_ "github.com/NYU-Molecular-Pathology/sns-classes/buildinfo/printbuildinfo"
)

//go:embed templates
var embeddedTemplates embed.FS

var global *Global

func main() {
	errs := make(chan error, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig,
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGUSR1,
	)

	var root, configPath string
	var port int
	flag.StringVar(&root, "root", "", "Path under which the sns analysis output directories sit.")
	flag.StringVar(&configPath, "config", "", "Path to an sns.yml config file. The embedded default index is used if empty.")
	flag.IntVar(&port, "port", 9019, "Port for HTTP server")
	flag.Parse()

	if root == "" {
		flag.PrintDefaults()
		return
	}

	cfg := snsclasses.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = snsclasses.LoadConfig(configPath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	global = &Global{
		Site:   "sns status",
		Root:   root,
		Config: cfg,
		log:    log.New(os.Stderr, log.Prefix(), log.Ldate|log.Ltime),
	}

	entries, err := DiscoverAnalyses(root)
	if err != nil {
		log.Fatalln(err)
	}
	global.SetAnalyses(entries)
	global.log.Println("Discovered", len(entries), "analyses under", root)

	go func() {
		global.log.Println("Starting HTTP server on port", port)

		routing, err := router(global)
		if err != nil {
			errs <- err
			return
		}

		if err := http.ListenAndServe(fmt.Sprintf(`:%d`, port), routing); err != nil {
			errs <- err
			return
		}
	}()

Outer:
	for {
		select {
		case sigl := <-sig:
			if sigl == syscall.SIGUSR1 {
				SigStatus()
				continue
			}

			global.log.Printf("\nExit: %s\n", sigl.String())

			break Outer

		case err := <-errs:
			if err == nil {
				global.log.Println("Finished")
				break Outer
			}

			global.log.Println("Exiting due to error", err)
			os.Exit(1)
		}
	}
}

func SigStatus() {
	global.log.Println("There are", runtime.NumGoroutine(), "goroutines running")
}
