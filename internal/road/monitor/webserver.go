// Package monitor provides debugging views of a synthesized road
// network: an HTML scatter preview served over HTTP and a PNG plotter
// for offline snapshots.
package monitor

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/roadplan/internal/road"
)

// PrototypeSource supplies the current synthesized network. The web
// server calls it on every request so an edited plan shows up without a
// restart.
type PrototypeSource func() []road.Prototype

// WebServer serves debug views of a road network.
type WebServer struct {
	source PrototypeSource
}

// NewWebServer creates a debug server over the given prototype source.
func NewWebServer(source PrototypeSource) *WebServer {
	return &WebServer{source: source}
}

// Routes returns the HTTP handler for all monitor endpoints.
func (ws *WebServer) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/network", ws.handleNetworkChart)
	mux.HandleFunc("/prototypes.json", ws.handlePrototypesJSON)
	return mux
}

// ListenAndServe blocks serving the monitor endpoints on addr.
func (ws *WebServer) ListenAndServe(addr string) error {
	log.Printf("monitor: road network preview listening on %s", addr)
	return http.ListenAndServe(addr, ws.Routes())
}

// handleNetworkChart renders a quick scatter plot (HTML) of the lane
// paths and intersection outlines using go-echarts. Debugging-only: no
// auth, no styling contract.
func (ws *WebServer) handleNetworkChart(w http.ResponseWriter, r *http.Request) {
	prototypes := ws.source()

	var laneData, intersectionData []opts.ScatterData
	minXY, maxXY := 0.0, 1.0
	extend := func(x, y float64) {
		if x < minXY {
			minXY = x
		}
		if y < minXY {
			minXY = y
		}
		if x > maxXY {
			maxXY = x
		}
		if y > maxXY {
			maxXY = y
		}
	}
	for _, strip := range road.RenderStrips(prototypes) {
		for _, pt := range strip.Spine {
			extend(pt.X, pt.Y)
			if strip.Closed {
				intersectionData = append(intersectionData, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
			} else {
				laneData = append(laneData, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
			}
		}
	}

	// Square axis ranges with a little padding so edge geometry stays
	// visible.
	pad := (maxXY - minXY) * 0.05
	lo, hi := minXY-pad, maxXY+pad

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Road Network Preview",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Road Network",
			Subtitle: fmt.Sprintf("prototypes=%d lanes=%d intersection points=%d", len(prototypes), len(laneData), len(intersectionData)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: lo, Max: hi, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: lo, Max: hi, Name: "Y", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("lanes", laneData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	scatter.AddSeries("intersections", intersectionData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}))

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		http.Error(w, fmt.Sprintf("failed to render chart: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// handlePrototypesJSON serves the raw prototype encoding.
func (ws *WebServer) handlePrototypesJSON(w http.ResponseWriter, r *http.Request) {
	data, err := road.EncodePrototypes(ws.source())
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to encode prototypes: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
