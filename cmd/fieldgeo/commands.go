package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gridiron-sim/fieldgeo/internal/geo"
	"github.com/gridiron-sim/fieldgeo/internal/logging"
	"github.com/gridiron-sim/fieldgeo/pkg/field"
)

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	ctx = logging.ContextWithAttrs(ctx, slog.String("command", cmd))
	switch cmd {
	case "info":
		return a.info()
	case "locate":
		return a.locate(ctx, args)
	case "validate":
		return a.validate(ctx, args)
	case "transform":
		return a.transform(ctx, args)
	case "position":
		return a.position(ctx, args)
	case "path":
		return a.path(ctx, args)
	case "georef":
		return a.georef(args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) info() error {
	return a.writeJSON(struct {
		*field.Field
		Area        float32 `json:"area"`
		PlayingArea float32 `json:"playingArea"`
		WKT         string  `json:"wkt"`
	}{
		Field:       a.field,
		Area:        a.field.Area(),
		PlayingArea: a.field.PlayingArea(),
		WKT:         a.field.Polygon().AsText(),
	})
}

func (a *app) locate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: locate needs at least one coordinate", errUsage)
	}
	coords, err := parseCoordinates(args)
	if err != nil {
		return err
	}
	if len(coords) == 1 {
		return a.writeJSON(a.locator.Locate(ctx, coords[0]))
	}
	reports := make([]any, len(coords))
	for i, c := range coords {
		reports[i] = a.locator.Locate(ctx, c)
	}
	return a.writeJSON(reports)
}

func (a *app) validate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: validate needs one coordinate", errUsage)
	}
	c, err := geo.ParseCoordinate(args[0])
	if err != nil {
		return err
	}
	if err := a.locator.Validate(ctx, c); err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, "ok")
	return err
}

func (a *app) transform(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: transform needs an operation and a coordinate", errUsage)
	}
	c, err := geo.ParseCoordinate(args[1])
	if err != nil {
		return err
	}
	out, err := a.locator.Transform(ctx, args[0], c)
	if err != nil {
		return err
	}
	return a.writeJSON(out)
}

func (a *app) position(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: position needs a yard line and an x", errUsage)
	}
	yl, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return fmt.Errorf("invalid yard line %q: %w", args[0], err)
	}
	x, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return fmt.Errorf("invalid x %q: %w", args[1], err)
	}
	c := field.FieldPositionToCoordinate(uint8(yl), float32(x))
	if !c.IsValid() {
		a.logger.WarnContext(ctx, "Yard line maps off the field", "yardLine", yl, "coordinate", c.String())
	}
	return a.writeJSON(struct {
		Coordinate    field.Coordinate `json:"coordinate"`
		FieldPosition string           `json:"fieldPosition"`
	}{c, field.FieldPosition(c)})
}

func (a *app) path(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: path needs a JSON array of points", errUsage)
	}
	coords, err := geo.ParsePath(args[0])
	if err != nil {
		return err
	}
	return a.writeJSON(a.locator.Trace(ctx, coords))
}

func (a *app) georef(args []string) error {
	if len(args) != 3 && len(args) != 4 {
		return fmt.Errorf("%w: georef needs lon lat bearing [x,y]", errUsage)
	}
	var vals [3]float64
	for i := range vals {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", args[i], err)
		}
		vals[i] = v
	}
	g, err := geo.NewGeoref(vals[0], vals[1], vals[2])
	if err != nil {
		return err
	}
	if len(args) == 3 {
		return a.writeJSON(struct {
			Outline [][2]float64 `json:"outline"`
		}{g.Outline(a.field)})
	}
	c, err := geo.ParseCoordinate(args[3])
	if err != nil {
		return err
	}
	lon, lat := g.ToLonLat(c)
	return a.writeJSON(struct {
		Coordinate field.Coordinate `json:"coordinate"`
		Longitude  float64          `json:"longitude"`
		Latitude   float64          `json:"latitude"`
	}{c, lon, lat})
}

func parseCoordinates(args []string) ([]field.Coordinate, error) {
	coords := make([]field.Coordinate, len(args))
	for i, arg := range args {
		c, err := geo.ParseCoordinate(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q): %w", i+1, arg, err)
		}
		coords[i] = c
	}
	return coords, nil
}
