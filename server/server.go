package server

import (
	"context"
	"errors"
	stdlog "log"
	"log/slog"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/fasthttp/router"
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/royalcat/rastermap/geograph"
	"github.com/royalcat/rastermap/mapdb"
	"github.com/royalcat/rastermap/mapmodel"
	"github.com/royalcat/rastermap/raster"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("github.com/royalcat/rastermap/server")

const MaxBodySize = 4 * 1000 * 1000 // 4MB

var tileName = regexp.MustCompile(`^d\d+_x\d+_y\d+\.png$`)

func Run(ctx context.Context, address, tilesDir string, db *mapdb.MapDB) error {
	log := slog.Default().With("component", "server")

	s, err := newServer(db, tilesDir)
	if err != nil {
		return err
	}

	server := &fasthttp.Server{
		ReadTimeout:        time.Second,
		MaxRequestBodySize: MaxBodySize,
		Handler:            s.router().Handler,
	}

	go func() {
		log.Info("Server listening", "address", address, "tiles", tilesDir)
		if err := server.ListenAndServe(address); err != nil && err != http.ErrServerClosed {
			stdlog.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return server.ShutdownWithContext(shutdownCtx)
}

type server struct {
	db       *mapdb.MapDB
	tilesDir string

	metricRequests    metric.Int64Counter
	metricTilesPlaced metric.Int64Counter
}

func newServer(db *mapdb.MapDB, tilesDir string) (*server, error) {
	metricRequests, err := meter.Int64Counter("http_request_total")
	if err != nil {
		return nil, err
	}
	metricTilesPlaced, err := meter.Int64Counter("raster_tiles_total")
	if err != nil {
		return nil, err
	}
	tilesDir, err = filepath.Abs(tilesDir)
	if err != nil {
		return nil, err
	}
	return &server{
		db:                db,
		tilesDir:          tilesDir,
		metricRequests:    metricRequests,
		metricTilesPlaced: metricTilesPlaced,
	}, nil
}

func (s *server) router() *router.Router {
	r := router.New()
	r.GET("/raster", s.count("raster", s.RasterHandler))
	r.GET("/closest", s.count("closest", s.ClosestHandler))
	r.POST("/closest", s.count("closest_multi", s.ClosestMultiHandler))
	r.GET("/distance", s.count("distance", s.DistanceHandler))
	r.GET("/adjacent/{id}", s.count("adjacent", s.AdjacentHandler))
	r.GET("/search", s.count("search", s.SearchHandler))
	r.GET("/autocomplete", s.count("autocomplete", s.AutocompleteHandler))
	r.GET("/tiles/{name}", s.count("tiles", s.TileHandler))
	r.Handle(http.MethodGet, "/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))
	return r
}

func (s *server) count(endpoint string, h fasthttp.RequestHandler) fasthttp.RequestHandler {
	attrs := metric.WithAttributes(attribute.String("endpoint", endpoint))
	return func(ctx *fasthttp.RequestCtx) {
		s.metricRequests.Add(ctx, 1, attrs)
		h(ctx)
	}
}

func (s *server) RasterHandler(ctx *fasthttp.RequestCtx) {
	var box raster.Box
	var width float64
	for _, arg := range []struct {
		name string
		dst  *float64
	}{
		{"ullon", &box.ULLon},
		{"ullat", &box.ULLat},
		{"lrlon", &box.LRLon},
		{"lrlat", &box.LRLat},
		{"w", &width},
	} {
		v, ok := floatArg(ctx, arg.name)
		if !ok {
			badRequest(ctx, "invalid or missing "+arg.name)
			return
		}
		*arg.dst = v
	}

	res := s.db.Raster(box, width)
	if res.Success {
		s.metricTilesPlaced.Add(ctx, int64((res.MaxX-res.MinX+1)*(res.MaxY-res.MinY+1)))
	}
	writeJSON(ctx, mapmodel.FromRaster(res))
}

func (s *server) ClosestHandler(ctx *fasthttp.RequestCtx) {
	lon, ok := floatArg(ctx, "lon")
	if !ok {
		badRequest(ctx, "invalid or missing lon")
		return
	}
	lat, ok := floatArg(ctx, "lat")
	if !ok {
		badRequest(ctx, "invalid or missing lat")
		return
	}

	id, err := s.db.Closest(lon, lat)
	switch {
	case errors.Is(err, geograph.ErrEmptyGraph):
		ctx.Response.SetStatusCode(http.StatusNoContent)
		return
	case err != nil:
		badRequest(ctx, err.Error())
		return
	}

	p, err := s.db.Graph().Point(id)
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, mapmodel.Vertex{ID: p.ID, Lon: p.Lon, Lat: p.Lat})
}

var coordsPool = sync.Pool{
	New: func() any {
		return &[][2]float64{}
	},
}

// ClosestMultiHandler resolves a body of [lon, lat] pairs in one request.
func (s *server) ClosestMultiHandler(ctx *fasthttp.RequestCtx) {
	coords := coordsPool.Get().(*[][2]float64)
	defer coordsPool.Put(coords)

	if err := unmarshalCoords(ctx.Request.Body(), coords); err != nil {
		badRequest(ctx, "failed to parse request: "+err.Error())
		return
	}

	g := s.db.Graph()
	res := make(mapmodel.VertexList, 0, len(*coords))
	for _, c := range *coords {
		id, err := g.Closest(c[0], c[1])
		switch {
		case errors.Is(err, geograph.ErrEmptyGraph):
			ctx.Response.SetStatusCode(http.StatusNoContent)
			return
		case err != nil:
			badRequest(ctx, err.Error())
			return
		}
		p, err := g.Point(id)
		if err != nil {
			ctx.Response.SetStatusCode(http.StatusInternalServerError)
			return
		}
		res = append(res, mapmodel.Vertex{ID: p.ID, Lon: p.Lon, Lat: p.Lat})
	}
	writeJSON(ctx, res)
}

func (s *server) DistanceHandler(ctx *fasthttp.RequestCtx) {
	from, ok := intArg(ctx, "from")
	if !ok {
		badRequest(ctx, "invalid or missing from")
		return
	}
	to, ok := intArg(ctx, "to")
	if !ok {
		badRequest(ctx, "invalid or missing to")
		return
	}

	g := s.db.Graph()
	miles, err := g.Distance(from, to)
	if err != nil {
		notFound(ctx, err)
		return
	}
	bearing, err := g.Bearing(from, to)
	if err != nil {
		notFound(ctx, err)
		return
	}
	writeJSON(ctx, mapmodel.Distance{Miles: miles, Bearing: bearing})
}

func (s *server) AdjacentHandler(ctx *fasthttp.RequestCtx) {
	idS, _ := ctx.UserValue("id").(string)
	id, err := strconv.ParseInt(idS, 10, 64)
	if err != nil {
		badRequest(ctx, "invalid id")
		return
	}

	adj, err := s.db.Graph().Adjacent(id)
	if err != nil {
		notFound(ctx, err)
		return
	}
	if adj == nil {
		adj = []int64{}
	}
	writeJSON(ctx, mapmodel.IDList(adj))
}

func (s *server) SearchHandler(ctx *fasthttp.RequestCtx) {
	term := string(ctx.QueryArgs().Peek("term"))
	writeJSON(ctx, mapmodel.FromLocations(s.db.LookupByName(term)))
}

func (s *server) AutocompleteHandler(ctx *fasthttp.RequestCtx) {
	term := string(ctx.QueryArgs().Peek("term"))
	writeJSON(ctx, mapmodel.Names(s.db.LookupByPrefix(term)))
}

func (s *server) TileHandler(ctx *fasthttp.RequestCtx) {
	name, _ := ctx.UserValue("name").(string)
	if !tileName.MatchString(name) {
		badRequest(ctx, "invalid tile name")
		return
	}
	fasthttp.ServeFile(ctx, filepath.Join(s.tilesDir, name))
}

func floatArg(ctx *fasthttp.RequestCtx, name string) (float64, bool) {
	v := ctx.QueryArgs().Peek(name)
	if len(v) == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(v), 64)
	return f, err == nil
}

func intArg(ctx *fasthttp.RequestCtx, name string) (int64, bool) {
	v := ctx.QueryArgs().Peek(name)
	if len(v) == 0 {
		return 0, false
	}
	i, err := strconv.ParseInt(string(v), 10, 64)
	return i, err == nil
}

func badRequest(ctx *fasthttp.RequestCtx, msg string) {
	ctx.Response.SetStatusCode(http.StatusBadRequest)
	ctx.Response.SetBodyString(msg)
}

func notFound(ctx *fasthttp.RequestCtx, err error) {
	if errors.Is(err, geograph.ErrNotFound) {
		ctx.Response.SetStatusCode(http.StatusNotFound)
		ctx.Response.SetBodyString(err.Error())
		return
	}
	ctx.Response.SetStatusCode(http.StatusInternalServerError)
}

func writeJSON(ctx *fasthttp.RequestCtx, v easyjson.Marshaler) {
	w := jwriter.Writer{}
	v.MarshalEasyJSON(&w)
	if w.Error != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		ctx.Response.SetBodyString("failed to marshal response")
		return
	}

	ctx.Response.SetStatusCode(http.StatusOK)
	ctx.SetContentType("application/json")
	w.DumpTo(ctx)
}
