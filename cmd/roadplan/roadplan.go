// Command roadplan synthesizes road network geometry from a gesture
// plan file: it smooths gesture polylines into centerlines, detects
// intersections between road footprints, trims lane paths, and writes
// the resulting prototypes as JSON. Optionally it saves the plan to a
// SQLite store, renders a PNG snapshot, or serves an HTML preview.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/roadplan/internal/road"
	"github.com/banshee-data/roadplan/internal/road/monitor"
	"github.com/banshee-data/roadplan/internal/store"
)

var (
	planFile = flag.String("plan", "", "Path to the gesture plan JSON file (required)")
	outFile  = flag.String("out", "", "Write prototype JSON to this file (default: stdout)")
	pngFile  = flag.String("png", "", "Write a PNG snapshot of the network to this file")
	dbFile   = flag.String("db", "", "SQLite database to save the plan and snapshot into")
	saveName = flag.String("save", "", "Name to save the plan under in the database")
	listen   = flag.String("listen", "", "Serve the HTML network preview on this address (e.g. :8080)")
)

func main() {
	flag.Parse()

	if *planFile == "" {
		fmt.Fprintln(os.Stderr, "roadplan: -plan is required")
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*planFile)
	if err != nil {
		log.Fatalf("read plan file: %v", err)
	}
	plan := road.NewPlan()
	if err := json.Unmarshal(data, plan); err != nil {
		log.Fatalf("decode plan file: %v", err)
	}

	prototypes := road.CalculatePrototypes(plan)
	log.Printf("synthesized %d prototypes from %d gestures", len(prototypes), plan.Len())

	encoded, err := road.EncodePrototypes(prototypes)
	if err != nil {
		log.Fatalf("encode prototypes: %v", err)
	}
	if *outFile == "" {
		fmt.Println(string(encoded))
	} else if err := os.WriteFile(*outFile, encoded, 0644); err != nil {
		log.Fatalf("write output file: %v", err)
	}

	if *pngFile != "" {
		if err := monitor.SaveNetworkPlot(prototypes, *pngFile); err != nil {
			log.Fatalf("write network plot: %v", err)
		}
		log.Printf("wrote network plot to %s", *pngFile)
	}

	if *dbFile != "" {
		if *saveName == "" {
			log.Fatal("-save is required when -db is given")
		}
		db, err := store.Open(*dbFile)
		if err != nil {
			log.Fatalf("open plan store: %v", err)
		}
		defer db.Close()

		planID, err := db.SavePlan(*saveName, plan)
		if err != nil {
			log.Fatalf("save plan: %v", err)
		}
		if _, err := db.SaveSnapshot(planID, prototypes); err != nil {
			log.Fatalf("save prototype snapshot: %v", err)
		}
		log.Printf("saved plan %q (id %d) with prototype snapshot", *saveName, planID)
	}

	if *listen != "" {
		ws := monitor.NewWebServer(func() []road.Prototype { return prototypes })
		if err := ws.ListenAndServe(*listen); err != nil {
			log.Fatalf("preview server: %v", err)
		}
	}
}
